package entity

import "errors"

// Sentinels returned by the repositories. The usecase layer translates
// them into DomainError values once, at the boundary.
var (
	ErrNotFound          = errors.New("record not found")
	ErrDuplicatePhone    = errors.New("phone already in use by another lead")
	ErrDuplicateCategory = errors.New("category name or slug already exists")
)
