// Package domain contains the core data types for the share gallery.
// This package depends only on uuid and is imported by every other
// internal package (gallery, repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Share is one resource card on the dashboard: a named link with an
// optional logo and an ordered list of tags.
// Stars is carried through storage and the API but never used for filtering.
type Share struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Logo        string    `json:"logo"` // empty when the card falls back to initials
	URL         string    `json:"url"`  // may omit the scheme
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	Stars       int       `json:"stars"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HasLogo reports whether the share carries a logo reference.
func (s Share) HasLogo() bool {
	return s.Logo != ""
}

// HasTag reports whether tag is one of the share's tags.
func (s Share) HasTag(tag string) bool {
	for _, t := range s.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
