// Package validate checks caller-supplied arguments before a request is built.
//
// It wraps a single go-playground validator instance with the custom tags the
// client needs and flattens validator failures into an
// [apierrors.ValidationError].
package validate

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/Oxtaly/porkbun-wrapper/internal/apierrors"
)

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())

	val.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		switch name {
		case "-":
			return ""
		case "":
			return fld.Name
		}
		return name
	})

	// Registration only fails on an empty tag or nil func.
	_ = val.RegisterValidation("segment", isSegment)
	_ = val.RegisterValidation("absurl", isAbsoluteURL)

	return val
}

// isSegment reports whether a value can be placed verbatim in a URL path segment.
func isSegment(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		if strings.ContainsRune("/?#%", r) || unicode.IsSpace(r) || unicode.IsControl(r) {
			return false
		}
	}
	return true
}

func isAbsoluteURL(fl validator.FieldLevel) bool {
	u, err := url.Parse(fl.Field().String())
	if err != nil {
		return false
	}
	return u.IsAbs() && u.Host != ""
}

// Item is one unit of validation passed to Check.
type Item interface {
	check() []string
}

type param struct {
	name  string
	value any
	tag   string
}

// Param validates a single named argument against a validator tag.
func Param(name string, value any, tag string) Item {
	return param{name: name, value: value, tag: tag}
}

func (p param) check() []string {
	return describe(v.Var(p.value, p.tag), p.name)
}

type structItem struct {
	s any
}

// Struct validates every tagged field of s.
func Struct(s any) Item {
	return structItem{s: s}
}

func (s structItem) check() []string {
	return describe(v.Struct(s.s), "")
}

// Check runs every item and returns an *apierrors.ValidationError listing all
// failures, or nil.
func Check(items ...Item) error {
	var msgs []string
	for _, it := range items {
		msgs = append(msgs, it.check()...)
	}
	if len(msgs) == 0 {
		return nil
	}
	return apierrors.NewValidationError(msgs...)
}

func describe(err error, name string) []string {
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return []string{invalid.Error()}
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		if name != "" {
			// Var errors only carry the element index for dive failures.
			field = name + field
		}
		msgs = append(msgs, message(field, fe))
	}
	return msgs
}

func message(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		if k := fe.Kind(); k == reflect.Slice || k == reflect.Array {
			return fmt.Sprintf("%s must contain at least %s element(s)", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "number":
		return field + " must contain only digits"
	case "ip":
		return field + " must be an IP address"
	case "absurl":
		return field + " must be an absolute URL"
	case "segment":
		return field + " must not contain '/', '?', '#', '%' or whitespace"
	}
	return fmt.Sprintf("%s failed the %q check", field, fe.Tag())
}
