package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"products-api/internal/model"
	"products-api/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Response messages returned to clients.
const (
	msgCreated       = "Product added successfully!"
	msgUpdated       = "Product updated successfully!"
	msgDeleted       = "Product deleted successfully!"
	msgCreateFailed  = "Error adding product."
	msgFetchFailed   = "Error fetching product."
	msgUpdateFailed  = "Error updating product."
	msgDeleteFailed  = "Error deleting product."
	msgListFailed    = "Error fetching products."
	productIDURLName = "id"
)

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	service service.ProductService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.ProductService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// Create handles POST /products requests.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	product, err := h.service.Create(r.Context(), req)
	if err != nil {
		writeDomainError(w, r, err, msgCreateFailed, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, model.ProductResponse{Message: msgCreated, Product: product})
}

// GetByID handles GET /products/{id} requests.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}

	product, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, err, msgFetchFailed, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Update handles PUT /products/{id} requests.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}

	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	product, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		writeDomainError(w, r, err, msgUpdateFailed, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.ProductResponse{Message: msgUpdated, Product: product})
}

// Delete handles DELETE /products/{id} requests.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeDomainError(w, r, err, msgDeleteFailed, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.MessageResponse{Message: msgDeleted})
}

// List handles GET /products requests with pagination and search.
// Unparseable page or limit values are treated as absent.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	params := model.ListParams{
		Page:   queryInt(query.Get("page")),
		Limit:  queryInt(query.Get("limit")),
		Search: query.Get("search"),
	}

	page, err := h.service.List(r.Context(), params)
	if err != nil {
		writeDomainError(w, r, err, msgListFailed, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, page)
}

// productID parses the {id} URL parameter, writing a 400 on failure.
func (h *ProductHandler) productID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, productIDURLName), 10, 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrInvalidID.Code, model.ErrInvalidID.Message, h.logger)
		return 0, false
	}
	return id, true
}

// decode reads a ProductRequest body, writing a 400 on malformed JSON.
func (h *ProductHandler) decode(w http.ResponseWriter, r *http.Request) (*model.ProductRequest, bool) {
	var req model.ProductRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrInvalidJSON.Code, model.ErrInvalidJSON.Message, h.logger)
		return nil, false
	}
	return &req, true
}

func queryInt(value string) int {
	if value == "" {
		return 0
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return n
}
