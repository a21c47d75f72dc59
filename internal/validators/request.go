// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/go-review-market/models"
	"github.com/go-playground/validator/v10"
)

// RequestValidator implements the Validator interface for the request
// bodies accepted by the HTTP API. Rules live in the `validate` struct tags
// of the models package and are evaluated by go-playground/validator.
// Failed fields are reported by their JSON names (e.g. "email", "rating").
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator constructs a RequestValidator and returns it as the
// Validator interface.
func NewRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)

	return &RequestValidator{validate: v}
}

// Validate dispatches validation based on the dynamic type of obj. Both value
// and pointer forms of each supported request are accepted.
//
// Supported types:
//   - models.SignupRequest, models.LoginRequest
//   - models.CreateItemRequest
//   - models.CreateReviewRequest, models.UpdateReviewRequest
//   - models.CreateCommentRequest, models.UpdateCommentRequest
//
// Returns ErrUnsupportedType for anything else, and an error wrapping
// ErrInvalidField for the first rule that fails.
func (v *RequestValidator) Validate(ctx context.Context, obj any) error {
	switch value := obj.(type) {
	case models.SignupRequest, *models.SignupRequest,
		models.LoginRequest, *models.LoginRequest,
		models.CreateItemRequest, *models.CreateItemRequest,
		models.CreateReviewRequest, *models.CreateReviewRequest,
		models.UpdateReviewRequest, *models.UpdateReviewRequest,
		models.CreateCommentRequest, *models.CreateCommentRequest,
		models.UpdateCommentRequest, *models.UpdateCommentRequest:
		return translate(v.validate.StructCtx(ctx, value))
	default:
		return ErrUnsupportedType
	}
}

// translate turns validator errors into a single ErrInvalidField error
// naming the first failed field and rule.
func translate(err error) error {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return err
	}

	fe := validationErrors[0]
	return fmt.Errorf("%w: %s", ErrInvalidField, describe(fe))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed on the '%s' rule", fe.Field(), fe.Tag())
	}
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}
