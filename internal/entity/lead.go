package entity

import (
	"strings"
	"time"
)

type LeadStatus string

const (
	StatusLeadGenerated LeadStatus = "lead_generated"
	StatusContacted     LeadStatus = "contacted"
	StatusToSend        LeadStatus = "to_send"
	StatusDeclined      LeadStatus = "declined"
	StatusProposed      LeadStatus = "proposed"
)

// LeadStatuses returns every pipeline status. The dashboard histogram
// zero-fills from this list, so it must stay complete.
func LeadStatuses() []LeadStatus {
	return []LeadStatus{
		StatusLeadGenerated,
		StatusContacted,
		StatusToSend,
		StatusDeclined,
		StatusProposed,
	}
}

func ParseLeadStatus(s string) (LeadStatus, bool) {
	switch LeadStatus(s) {
	case StatusLeadGenerated, StatusContacted, StatusToSend, StatusDeclined, StatusProposed:
		return LeadStatus(s), true
	}
	return "", false
}

// Human renders the status for note text, e.g. "lead generated".
func (s LeadStatus) Human() string {
	return strings.ReplaceAll(string(s), "_", " ")
}

type LeadSource string

const (
	SourceManual      LeadSource = "manual"
	SourceGoogle      LeadSource = "google"
	SourceReferral    LeadSource = "referral"
	SourceSocialMedia LeadSource = "social_media"
	SourceWebsite     LeadSource = "website"
	SourceOther       LeadSource = "other"
)

func ParseLeadSource(s string) (LeadSource, bool) {
	switch LeadSource(s) {
	case SourceManual, SourceGoogle, SourceReferral, SourceSocialMedia, SourceWebsite, SourceOther:
		return LeadSource(s), true
	}
	return "", false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func ParsePriority(s string) (Priority, bool) {
	switch Priority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return Priority(s), true
	}
	return "", false
}

// Rank orders priorities by severity. Sorting the raw label would put
// "medium" above "high", so comparisons must go through Rank.
func (p Priority) Rank() int {
	switch p {
	case PriorityUrgent:
		return 3
	case PriorityHigh:
		return 2
	case PriorityMedium:
		return 1
	default:
		return 0
	}
}

type Address struct {
	Street     string   `json:"street,omitempty"`
	City       string   `json:"city,omitempty"`
	State      string   `json:"state,omitempty"`
	PostalCode string   `json:"postalCode,omitempty"`
	Country    string   `json:"country,omitempty"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
}

type Lead struct {
	ID             string     `json:"id"`
	CategoryID     string     `json:"categoryId"`
	Category       *Category  `json:"category,omitempty"`
	Name           string     `json:"name,omitempty"`
	ContactPerson  string     `json:"contactPerson,omitempty"`
	Phone          string     `json:"phone"`
	Email          string     `json:"email,omitempty"`
	Rating         float64    `json:"rating"`
	ReviewCount    int        `json:"reviewCount"`
	GoogleMapsURL  string     `json:"googleMapsUrl,omitempty"`
	Address        Address    `json:"address"`
	Status         LeadStatus `json:"status"`
	Source         LeadSource `json:"source"`
	Tags           []string   `json:"tags"`
	Notes          string     `json:"notes,omitempty"`
	Priority       Priority   `json:"priority"`
	IsDeleted      bool       `json:"isDeleted"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
	ContactedAt    *time.Time `json:"contactedAt,omitempty"`
	LastActivityAt *time.Time `json:"lastActivityAt,omitempty"`
}
