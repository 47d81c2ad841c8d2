package domain

import (
	"time"

	"github.com/google/uuid"
)

// LogoType distinguishes how a logo payload was supplied.
type LogoType string

const (
	// LogoTypeURL is a logo referenced by an external URL.
	LogoTypeURL LogoType = "url"
	// LogoTypeFile is an uploaded image. PreviewURL is what the card shows
	// until the file has been stored.
	LogoTypeFile LogoType = "file"
)

// LogoItem is the optional logo payload that travels with an update.
type LogoItem struct {
	Type        LogoType `json:"type"`
	URL         string   `json:"url,omitempty"`
	PreviewURL  string   `json:"preview_url,omitempty"`
	FileName    string   `json:"file_name,omitempty"`
	ContentType string   `json:"content_type,omitempty"`
	Data        []byte   `json:"data,omitempty"` // base64 in JSON
}

// DisplayURL returns the reference a card should render for this logo.
func (l LogoItem) DisplayURL() string {
	if l.Type == LogoTypeURL {
		return l.URL
	}
	return l.PreviewURL
}

// Logo is an uploaded logo blob persisted by the logo store.
type Logo struct {
	ID          uuid.UUID
	ContentType string
	Data        []byte
	CreatedAt   time.Time
}

// LogoPath is the URL path under which a stored logo is served.
func LogoPath(id uuid.UUID) string {
	return "/logos/" + id.String()
}
