package types

import "github.com/go-playground/validator/v10"

// PageRequest asks for the article best matching a free-text query.
type PageRequest struct {
	Query       string `json:"query" validate:"required"`
	RequestedBy string `json:"requested_by" validate:"required"`
}

// RandomRequest asks for one to ten random articles. Count is the raw,
// unparsed text the user typed; nil means it was omitted.
type RandomRequest struct {
	Count       *string `json:"count,omitempty"`
	RequestedBy string  `json:"requested_by" validate:"required"`
}

// OptionsRequest asks for search candidates for a query.
type OptionsRequest struct {
	Query       string `json:"query" validate:"required"`
	RequestedBy string `json:"requested_by" validate:"required"`
}

// Validate validates the PageRequest using the validator.
func (r *PageRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the RandomRequest using the validator.
func (r *RandomRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the OptionsRequest using the validator.
func (r *OptionsRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
