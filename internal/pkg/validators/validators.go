// Package validators holds custom go-playground/validator rules shared by the
// domain entities, plus the error formatting they all use.
package validators

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrValidation is wrapped by every error ValidateStruct returns for invalid input
var ErrValidation = errors.New("validation failed")

// Tags registered by New
const (
	SlugTag          = "slug"
	ImageLocationTag = "imagelocation"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// SlugValidation accepts lowercase alphanumeric words joined by single dashes.
func SlugValidation(fl validator.FieldLevel) bool {
	return slugPattern.MatchString(fl.Field().String())
}

// ImageLocationValidation accepts absolute http(s) URLs and site paths starting with "/".
func ImageLocationValidation(fl validator.FieldLevel) bool {
	return IsImageLocation(fl.Field().String())
}

// IsImageLocation reports whether s can be used as an image src on the site
func IsImageLocation(s string) bool {
	if s == "" {
		return false
	}
	if strings.HasPrefix(s, "/") && !strings.HasPrefix(s, "//") {
		return true
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// New returns a validator with the custom rules registered
func New() (*validator.Validate, error) {
	validate := validator.New()

	if err := validate.RegisterValidation(SlugTag, SlugValidation); err != nil {
		return nil, fmt.Errorf("failed to register custom validator: %w", err)
	}
	if err := validate.RegisterValidation(ImageLocationTag, ImageLocationValidation); err != nil {
		return nil, fmt.Errorf("failed to register custom validator: %w", err)
	}

	return validate, nil
}

// ValidateStruct runs New().Struct(s) and flattens field errors into
// "Field: X, Tag: Y" messages.
func ValidateStruct(s interface{}) error {
	validate, err := New()
	if err != nil {
		return err
	}

	err = validate.Struct(s)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("%w: %v", ErrValidation, messages)
		}
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	return nil
}
