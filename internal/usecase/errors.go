package usecase

import (
	"errors"
	"fmt"

	"github.com/xavierca1/ligue-leads/internal/entity"
)

const (
	CodeValidation = "VALIDATION_ERROR"
	CodeNotFound   = "NOT_FOUND"
	CodeDuplicate  = "DUPLICATE_RESOURCE"
	CodeUnexpected = "UNEXPECTED"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// DomainError is the single failure value crossing the usecase boundary.
// Callers branch on Code; Fields carries per-field detail for
// VALIDATION_ERROR so the caller can display it.
type DomainError struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  []ValidationError `json:"fields,omitempty"`
}

func (e *DomainError) Error() string {
	return e.Message
}

func AsDomainError(err error) (*DomainError, bool) {
	var de *DomainError
	ok := errors.As(err, &de)
	return de, ok
}

func NewValidationFailed(fields []ValidationError) *DomainError {
	msg := "validation failed: "
	for i, f := range fields {
		if i > 0 {
			msg += ", "
		}
		msg += f.Field + " (" + f.Message + ")"
	}
	return &DomainError{Code: CodeValidation, Message: msg, Fields: fields}
}

func NewNotFound(what string) *DomainError {
	return &DomainError{Code: CodeNotFound, Message: what + " not found"}
}

func NewDuplicatePhone(phone string) *DomainError {
	return &DomainError{
		Code:    CodeDuplicate,
		Message: fmt.Sprintf("A lead with phone %q already exists.", phone),
	}
}

func NewDuplicateCategory() *DomainError {
	return &DomainError{
		Code:    CodeDuplicate,
		Message: "Category with this name or slug already exists",
	}
}

func NewUnexpected(err error) *DomainError {
	return &DomainError{Code: CodeUnexpected, Message: "unexpected error: " + err.Error()}
}

// translateLeadError maps repository sentinels onto domain errors. The
// storage layer is the backstop for the phone uniqueness race, so a
// unique-violation surfacing here still becomes DUPLICATE_RESOURCE.
func translateLeadError(err error, phone string) *DomainError {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		return NewNotFound("lead")
	case errors.Is(err, entity.ErrDuplicatePhone):
		return NewDuplicatePhone(phone)
	default:
		return NewUnexpected(err)
	}
}

func translateCategoryError(err error) *DomainError {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		return NewNotFound("category")
	case errors.Is(err, entity.ErrDuplicateCategory):
		return NewDuplicateCategory()
	default:
		return NewUnexpected(err)
	}
}
