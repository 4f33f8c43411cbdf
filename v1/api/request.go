package api

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/resguardo/inventory-query/v1/plan"
)

// MaxQuestionLength bounds the question text in characters.
const MaxQuestionLength = 3000

type queryRequest struct {
	Q     string `json:"q" validate:"required,max=3000"`
	Page  *int   `json:"page" validate:"omitempty,min=1"`
	Limit *int   `json:"limit" validate:"omitempty,min=1"`
}

// FieldError describes one rejected request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// pagination resolves the request's page, defaulting and clamping the limit.
func (r queryRequest) pagination(cfg Config) plan.Pagination {
	page := plan.Pagination{Page: 1, Limit: cfg.DefaultLimit}
	if r.Page != nil {
		page.Page = *r.Page
	}
	if r.Limit != nil {
		page.Limit = *r.Limit
	}
	if cfg.MaxLimit > 0 && page.Limit > cfg.MaxLimit {
		page.Limit = cfg.MaxLimit
	}
	return page
}

// validate trims the question and checks the request shape.
func (r *queryRequest) validate(v *validator.Validate) []FieldError {
	r.Q = strings.TrimSpace(r.Q)
	err := v.Struct(r)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "body", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "min":
		return "must be at least " + fe.Param()
	}
	return "is invalid"
}
