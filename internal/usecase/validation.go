package usecase

import (
	"net/mail"
	"net/url"
	"strings"

	"github.com/xavierca1/ligue-leads/internal/entity"
)

func ValidateCreateLeadInput(input CreateLeadInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Category) == "" {
		errors = append(errors, ValidationError{"category", "is required"})
	}

	if len(input.Name) > 200 {
		errors = append(errors, ValidationError{"name", "must not exceed 200 characters"})
	}

	if len(input.ContactPerson) > 100 {
		errors = append(errors, ValidationError{"contactPerson", "must not exceed 100 characters"})
	}

	if strings.TrimSpace(input.Phone) == "" {
		errors = append(errors, ValidationError{"phone", "is required"})
	}

	if input.Email != "" && !isValidEmail(input.Email) {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	if input.Rating < 0 || input.Rating > 5 {
		errors = append(errors, ValidationError{"rating", "must be between 0 and 5"})
	}

	if input.ReviewCount < 0 {
		errors = append(errors, ValidationError{"reviewCount", "cannot be negative"})
	}

	if input.GoogleMapsURL != "" && !isValidURL(input.GoogleMapsURL) {
		errors = append(errors, ValidationError{"googleMapsUrl", "must be a valid URL"})
	}

	if input.Status != "" {
		if _, ok := entity.ParseLeadStatus(input.Status); !ok {
			errors = append(errors, ValidationError{"status", "is not a supported status"})
		}
	}

	if input.Source != "" {
		if _, ok := entity.ParseLeadSource(input.Source); !ok {
			errors = append(errors, ValidationError{"source", "is not a supported source"})
		}
	}

	if input.Priority != "" {
		if _, ok := entity.ParsePriority(input.Priority); !ok {
			errors = append(errors, ValidationError{"priority", "is not a supported priority"})
		}
	}

	return errors
}

func ValidateUpdateLeadInput(input UpdateLeadInput) []ValidationError {
	var errors []ValidationError

	if input.Category != nil && strings.TrimSpace(*input.Category) == "" {
		errors = append(errors, ValidationError{"category", "is required"})
	}

	if input.Name != nil && len(*input.Name) > 200 {
		errors = append(errors, ValidationError{"name", "must not exceed 200 characters"})
	}

	if input.ContactPerson != nil && len(*input.ContactPerson) > 100 {
		errors = append(errors, ValidationError{"contactPerson", "must not exceed 100 characters"})
	}

	if input.Phone != nil && strings.TrimSpace(*input.Phone) == "" {
		errors = append(errors, ValidationError{"phone", "is required"})
	}

	if input.Email != nil && *input.Email != "" && !isValidEmail(*input.Email) {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	if input.Rating != nil && (*input.Rating < 0 || *input.Rating > 5) {
		errors = append(errors, ValidationError{"rating", "must be between 0 and 5"})
	}

	if input.ReviewCount != nil && *input.ReviewCount < 0 {
		errors = append(errors, ValidationError{"reviewCount", "cannot be negative"})
	}

	if input.GoogleMapsURL != nil && *input.GoogleMapsURL != "" && !isValidURL(*input.GoogleMapsURL) {
		errors = append(errors, ValidationError{"googleMapsUrl", "must be a valid URL"})
	}

	if input.Status != nil {
		if _, ok := entity.ParseLeadStatus(*input.Status); !ok {
			errors = append(errors, ValidationError{"status", "is not a supported status"})
		}
	}

	if input.Source != nil {
		if _, ok := entity.ParseLeadSource(*input.Source); !ok {
			errors = append(errors, ValidationError{"source", "is not a supported source"})
		}
	}

	if input.Priority != nil {
		if _, ok := entity.ParsePriority(*input.Priority); !ok {
			errors = append(errors, ValidationError{"priority", "is not a supported priority"})
		}
	}

	return errors
}

func ValidateCategoryInput(input CategoryInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	} else if len(input.Name) > 100 {
		errors = append(errors, ValidationError{"name", "must not exceed 100 characters"})
	}

	if len(input.Slug) > 100 {
		errors = append(errors, ValidationError{"slug", "must not exceed 100 characters"})
	}

	return errors
}

func ValidateUpdateCategoryInput(input UpdateCategoryInput) []ValidationError {
	var errors []ValidationError

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			errors = append(errors, ValidationError{"name", "is required"})
		} else if len(*input.Name) > 100 {
			errors = append(errors, ValidationError{"name", "must not exceed 100 characters"})
		}
	}

	if input.Slug != nil {
		if strings.TrimSpace(*input.Slug) == "" {
			errors = append(errors, ValidationError{"slug", "is required"})
		} else if len(*input.Slug) > 100 {
			errors = append(errors, ValidationError{"slug", "must not exceed 100 characters"})
		}
	}

	return errors
}

func isValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

func isValidURL(raw string) bool {
	u, err := url.ParseRequestURI(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}
