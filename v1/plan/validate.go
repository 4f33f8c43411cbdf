package plan

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/resguardo/inventory-query/v1/vocabulary"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid plan")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks p against the plan shape. maxLimit bounds the page size.
func Validate(p *Plan, maxLimit int) error {
	if p == nil {
		return fmt.Errorf("%w: plan is nil", ErrInvalid)
	}

	if err := validate.Struct(p); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(describe(verrs), "; "))
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	if maxLimit > 0 && p.Pagination.Limit > maxLimit {
		return fmt.Errorf("%w: pagination.limit %d exceeds %d", ErrInvalid, p.Pagination.Limit, maxLimit)
	}

	f := p.Filters
	if f.Brand != nil && len(f.Brands) > 0 {
		return fmt.Errorf("%w: filters.brand and filters.brands are mutually exclusive", ErrInvalid)
	}

	switch {
	case p.Intent == IntentMissing && p.Missing == nil:
		return fmt.Errorf("%w: missing is required for intent missing", ErrInvalid)
	case p.Intent != IntentMissing && p.Missing != nil:
		return fmt.Errorf("%w: missing is only allowed for intent missing", ErrInvalid)
	case p.Intent == IntentGroupCount && p.GroupBy == nil:
		return fmt.Errorf("%w: groupBy is required for intent group_count", ErrInvalid)
	case p.Intent != IntentGroupCount && p.GroupBy != nil:
		return fmt.Errorf("%w: groupBy is only allowed for intent group_count", ErrInvalid)
	}

	if p.Missing != nil {
		target, ok := vocabulary.Missing(p.Missing.Field)
		if !ok || target.Kind != p.Missing.Kind {
			return fmt.Errorf("%w: missing.kind %q does not match field %q", ErrInvalid, p.Missing.Kind, p.Missing.Field)
		}
	}

	return nil
}

// describe renders validator errors with JSON field paths, e.g. "filters.status: oneof".
func describe(verrs validator.ValidationErrors) []string {
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		ns := fe.Namespace()
		if i := strings.IndexByte(ns, '.'); i >= 0 {
			ns = ns[i+1:]
		}
		msg := ns + ": " + fe.Tag()
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}
		out = append(out, msg)
	}
	return out
}
