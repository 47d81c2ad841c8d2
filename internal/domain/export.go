package domain

// ExportRow is a single row in the full-data export: one row per share.
//
// Tags keeps the share's tag order. Callers that need a joined string
// (e.g. CSV) should join with "|".
type ExportRow struct {
	ID          string
	Name        string
	URL         string
	Logo        string
	Description string
	Tags        []string
	Stars       int
	CreatedAt   string // RFC3339
}
