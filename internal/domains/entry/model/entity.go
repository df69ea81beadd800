package model

import (
	"sort"
	"strings"
	"time"
)

// Entry is one timeline record: a photo, what happened, and when.
type Entry struct {
	ID          string `json:"id"`
	Photo       string `json:"photo"` // data URI or remote URL, opaque
	Description string `json:"description"`
	Date        Date   `json:"date"` // when it happened

	// Link is nil when absent; never an empty string.
	Link *string `json:"link,omitempty"`

	// CreatedAt is when the entry was persisted (server or local fallback)
	CreatedAt time.Time `json:"createdAt"`
}

// HasLink checks if entry has a link
func (e *Entry) HasLink() bool {
	return e.Link != nil
}

// NormalizeLink collapses nil, "" and whitespace-only links into nil.
func NormalizeLink(link *string) *string {
	if link == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*link)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// SortByDateDesc orders entries newest date first. Ties keep their current order.
func SortByDateDesc(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[j].Date.Before(entries[i].Date)
	})
}
