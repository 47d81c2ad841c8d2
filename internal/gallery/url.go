package gallery

import "strings"

// NormalizeURL returns the address a card opens: raw unchanged when it
// already carries an http or https scheme, otherwise raw prefixed with
// "https://".
func NormalizeURL(raw string) string {
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	return "https://" + raw
}
