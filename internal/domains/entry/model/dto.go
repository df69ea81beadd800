package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// =====================================================
// REQUEST DTOs
// =====================================================

// CreateEntryRequest - POST /api/entries
type CreateEntryRequest struct {
	Photo       string  `json:"photo"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Link        *string `json:"link,omitempty"`
}

func (r CreateEntryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Photo,
			validation.Required.Error("photo is required"),
		),
		validation.Field(&r.Description,
			validation.By(requiredTrimmed("description is required")),
		),
		validation.Field(&r.Date,
			validation.Required.Error("date is required"),
			validation.By(validDate),
		),
	)
}

// Normalize trims text fields and collapses an empty link.
func (r *CreateEntryRequest) Normalize() {
	r.Description = strings.TrimSpace(r.Description)
	r.Date = strings.TrimSpace(r.Date)
	r.Link = NormalizeLink(r.Link)
}

func requiredTrimmed(message string) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if strings.TrimSpace(s) == "" {
			return validation.NewError("validation_required", message)
		}
		return nil
	}
}

func validDate(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, err := ParseDate(s); err != nil {
		return validation.NewError("validation_date", "date must be YYYY-MM-DD or RFC 3339")
	}
	return nil
}

// Draft is a candidate entry before the store (or the local fallback) assigns id and createdAt.
type Draft struct {
	Photo       string
	Description string
	Date        Date
	Link        *string
}

// ToRequest converts Draft to the wire request
func (d Draft) ToRequest() CreateEntryRequest {
	req := CreateEntryRequest{
		Photo:       d.Photo,
		Description: d.Description,
		Link:        NormalizeLink(d.Link),
	}
	if !d.Date.IsZero() {
		req.Date = d.Date.String()
	}
	return req
}

// =====================================================
// RESPONSE DTOs
// =====================================================

// DeleteEntryResponse - DELETE /api/entries/:id
type DeleteEntryResponse struct {
	Message string `json:"message"`
}
