package entity

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UnknownCategory stands in for a category that was deleted while leads
// still reference it. Readers tolerate the dangling reference.
func UnknownCategory(id string) *Category {
	return &Category{ID: id, Name: "Unknown Category"}
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// GenerateSlug derives a URL-safe slug from a category name.
func GenerateSlug(name string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}

func NewCategory(name, slug string) *Category {
	if slug == "" {
		slug = GenerateSlug(name)
	}
	now := time.Now()
	return &Category{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(name),
		Slug:      strings.ToLower(strings.TrimSpace(slug)),
		CreatedAt: now,
		UpdatedAt: now,
	}
}
