package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ProductRequest is the payload for creating or updating a product.
// Fields stay raw until validated so that type mismatches can be reported
// instead of failing the whole decode.
type ProductRequest struct {
	Name        json.RawMessage `json:"name,omitempty"`
	Price       json.RawMessage `json:"price,omitempty"`
	Description json.RawMessage `json:"description,omitempty"`
	Category    json.RawMessage `json:"category,omitempty"`
}

// field is a named raw JSON value taken from a ProductRequest.
type field struct {
	name string
	raw  json.RawMessage
}

func (f field) value() []byte {
	return bytes.TrimSpace(f.raw)
}

// absent is true when the field was omitted or explicitly null.
func (f field) absent() bool {
	v := f.value()
	return len(v) == 0 || bytes.Equal(v, []byte("null"))
}

// blank is true when the field is absent or an empty string.
func (f field) blank() bool {
	return f.absent() || bytes.Equal(f.value(), []byte(`""`))
}

func (f field) isString() bool {
	v := f.value()
	return len(v) > 0 && v[0] == '"'
}

// check is a single predicate over a field.
type check func(f field) error

func present(f field) error {
	if f.blank() {
		return NewValidationError(ErrCodeMissingField, fmt.Sprintf("missing required field: %s", f.name))
	}
	return nil
}

func stringTyped(f field) error {
	if !f.isString() {
		return NewValidationError(ErrCodeWrongType, fmt.Sprintf("%s must be a string", f.name))
	}
	return nil
}

func nonNegativeNumber(f field) error {
	_, err := parsePrice(f)
	return err
}

// run applies checks to each field in order, one check at a time across all
// fields, so every presence failure is reported before any type failure.
func run(fields []field, checks ...check) error {
	for _, c := range checks {
		for _, f := range fields {
			if err := c(f); err != nil {
				return err
			}
		}
	}
	return nil
}

func decodeString(f field) (string, error) {
	var s string
	if err := json.Unmarshal(f.value(), &s); err != nil {
		return "", NewValidationError(ErrCodeWrongType, fmt.Sprintf("%s must be a string", f.name))
	}
	return s, nil
}

// parsePrice accepts a JSON number or a string holding a number.
func parsePrice(f field) (float64, error) {
	invalid := NewValidationError(ErrCodeInvalidPrice, "price must be a valid non-negative number")

	var price float64
	if f.isString() {
		s, err := decodeString(f)
		if err != nil {
			return 0, invalid
		}
		price, err = strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0, invalid
		}
	} else if err := json.Unmarshal(f.value(), &price); err != nil {
		return 0, invalid
	}

	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return 0, invalid
	}
	return price, nil
}

func (r *ProductRequest) fields() (name, price, description, category field) {
	return field{"name", r.Name},
		field{"price", r.Price},
		field{"description", r.Description},
		field{"category", r.Category}
}

// ValidateCreate checks a create payload: presence of name, price and
// category, then string types, then the price. An absent description
// falls back to DefaultDescription.
func (r *ProductRequest) ValidateCreate() (*NewProduct, error) {
	name, price, description, category := r.fields()

	if err := run([]field{name, price, category}, present); err != nil {
		return nil, err
	}
	if err := run([]field{name, category}, stringTyped); err != nil {
		return nil, err
	}
	if err := run([]field{price}, nonNegativeNumber); err != nil {
		return nil, err
	}

	p := &NewProduct{Description: DefaultDescription}
	p.Name, _ = decodeString(name)
	p.Category, _ = decodeString(category)
	p.Price, _ = parsePrice(price)

	if !description.absent() {
		d, err := decodeString(description)
		if err != nil {
			return nil, err
		}
		p.Description = d
	}

	return p, nil
}

// ValidateUpdate checks only the fields that were provided. Absent or null
// fields are left nil in the result.
func (r *ProductRequest) ValidateUpdate() (*ProductUpdate, error) {
	name, price, description, category := r.fields()
	u := &ProductUpdate{}

	for _, f := range []field{name, category} {
		if f.absent() {
			continue
		}
		if err := run([]field{f}, stringTyped, present); err != nil {
			return nil, err
		}
		s, err := decodeString(f)
		if err != nil {
			return nil, err
		}
		if f.name == "name" {
			u.Name = &s
		} else {
			u.Category = &s
		}
	}

	if !price.absent() {
		p, err := parsePrice(price)
		if err != nil {
			return nil, err
		}
		u.Price = &p
	}

	if !description.absent() {
		d, err := decodeString(description)
		if err != nil {
			return nil, err
		}
		u.Description = &d
	}

	return u, nil
}
