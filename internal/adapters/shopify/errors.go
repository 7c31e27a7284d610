package shopify

import (
	"errors"
	"fmt"
	"strings"

	"shopify-reconciler/internal/adapters/shopify/dto"
)

// NotFoundError reports that a remote resource (variant, location) does not
// exist. It is the only error the reconciler treats as terminal-per-row
// without suspecting the transport.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	key := strings.TrimSpace(e.Key)
	if key == "" {
		return fmt.Sprintf("shopify %s not found", e.Resource)
	}
	return fmt.Sprintf("shopify %s not found: %s", e.Resource, key)
}

func IsNotFound(err error) bool {
	var typed *NotFoundError
	return errors.As(err, &typed)
}

type UserErrorDetail struct {
	Field   string
	Message string
}

// UserErrorsError carries the field-scoped userErrors a mutation returned in
// an otherwise-successful response: the API accepted the call and rejected
// its semantics.
type UserErrorsError struct {
	Action string
	Errors []UserErrorDetail
}

func (e *UserErrorsError) Error() string {
	if e == nil {
		return "shopify user errors"
	}
	parts := make([]string, 0, len(e.Errors))
	for _, detail := range e.Errors {
		field := strings.TrimSpace(detail.Field)
		message := strings.TrimSpace(detail.Message)
		if field == "" {
			parts = append(parts, message)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", field, message))
	}
	if len(parts) == 0 {
		return fmt.Sprintf("shopify %s failed with user errors", e.Action)
	}
	return fmt.Sprintf("shopify %s failed: %s", e.Action, strings.Join(parts, "; "))
}

func AsUserErrors(err error) (*UserErrorsError, bool) {
	var typed *UserErrorsError
	if errors.As(err, &typed) {
		return typed, true
	}
	return nil, false
}

func userErrorsToError(action string, errs []dto.ShopifyUserError) error {
	if len(errs) == 0 {
		return nil
	}
	details := make([]UserErrorDetail, 0, len(errs))
	for _, e := range errs {
		msg := strings.TrimSpace(e.Message)
		if msg == "" {
			continue
		}
		details = append(details, UserErrorDetail{
			Field:   strings.Join(e.Field, "."),
			Message: msg,
		})
	}
	if len(details) == 0 {
		return nil
	}
	return &UserErrorsError{Action: action, Errors: details}
}
