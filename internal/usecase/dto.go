package usecase

import "github.com/xavierca1/ligue-leads/internal/entity"

type AddressInput struct {
	Street     string   `json:"street"`
	City       string   `json:"city"`
	State      string   `json:"state"`
	PostalCode string   `json:"postalCode"`
	Country    string   `json:"country"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
}

func (a AddressInput) toEntity() entity.Address {
	return entity.Address{
		Street:     a.Street,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
		Latitude:   a.Latitude,
		Longitude:  a.Longitude,
	}
}

// CreateLeadInput carries the full lead form. Enumerations arrive as raw
// strings and are validated before anything touches the store; empty values
// take the documented defaults.
type CreateLeadInput struct {
	Category      string       `json:"category"`
	Name          string       `json:"name"`
	ContactPerson string       `json:"contactPerson"`
	Phone         string       `json:"phone"`
	Email         string       `json:"email"`
	Rating        float64      `json:"rating"`
	ReviewCount   int          `json:"reviewCount"`
	GoogleMapsURL string       `json:"googleMapsUrl"`
	Address       AddressInput `json:"address"`
	Status        string       `json:"status"`
	Source        string       `json:"source"`
	Tags          []string     `json:"tags"`
	Notes         string       `json:"notes"`
	Priority      string       `json:"priority"`
}

// UpdateLeadInput is a partial update; nil means "leave the field alone".
type UpdateLeadInput struct {
	Category      *string       `json:"category"`
	Name          *string       `json:"name"`
	ContactPerson *string       `json:"contactPerson"`
	Phone         *string       `json:"phone"`
	Email         *string       `json:"email"`
	Rating        *float64      `json:"rating"`
	ReviewCount   *int          `json:"reviewCount"`
	GoogleMapsURL *string       `json:"googleMapsUrl"`
	Address       *AddressInput `json:"address"`
	Status        *string       `json:"status"`
	Source        *string       `json:"source"`
	Tags          *[]string     `json:"tags"`
	Notes         *string       `json:"notes"`
	Priority      *string       `json:"priority"`
}

type BulkStatusUpdateInput struct {
	LeadIDs []string `json:"leadIds"`
	Status  string   `json:"status"`
}

type CategoryInput struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type UpdateCategoryInput struct {
	Name *string `json:"name"`
	Slug *string `json:"slug"`
}

type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

type LeadPage struct {
	Data       []*entity.Lead `json:"data"`
	Pagination Pagination     `json:"pagination"`
}

type CategoryStat struct {
	CategoryID   string  `json:"categoryId"`
	CategoryName string  `json:"categoryName"`
	Count        int     `json:"count"`
	AvgRating    float64 `json:"avgRating"`
}

type DashboardStats struct {
	TotalLeads    int                       `json:"totalLeads"`
	ActiveLeads   int                       `json:"activeLeads"`
	StatusCounts  map[entity.LeadStatus]int `json:"statusCounts"`
	CategoryStats []CategoryStat            `json:"categoryStats"`
}
