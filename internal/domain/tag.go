package domain

// TagCount is a distinct tag together with the number of shares carrying it.
type TagCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}
