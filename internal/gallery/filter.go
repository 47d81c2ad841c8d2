package gallery

import (
	"strings"

	"github.com/zvz09/2025-blog-public/internal/domain"
)

// AllTagsValue is the tag selection that matches every share.
const AllTagsValue = "all"

// Filter returns the shares visible for the given search term, tag selection
// and engine, in their original order. The input slice is never modified.
//
// With EngineLocal a share must contain term (case-insensitively) in its name
// or description and carry tag. With any other engine term is ignored and
// only the tag applies, since the term is sent to the web search instead.
func Filter(shares []domain.Share, term, tag string, engine Engine) []domain.Share {
	out := make([]domain.Share, 0, len(shares))
	needle := strings.ToLower(term)
	for _, s := range shares {
		if matches(s, needle, tag, engine) {
			out = append(out, s)
		}
	}
	return out
}

// Matches reports whether a single share passes Filter.
func Matches(s domain.Share, term, tag string, engine Engine) bool {
	return matches(s, strings.ToLower(term), tag, engine)
}

func matches(s domain.Share, needle, tag string, engine Engine) bool {
	if !matchesTag(s, tag) {
		return false
	}
	if !engine.IsLocal() {
		return true
	}
	return strings.Contains(strings.ToLower(s.Name), needle) ||
		strings.Contains(strings.ToLower(s.Description), needle)
}

func matchesTag(s domain.Share, tag string) bool {
	return tag == AllTagsValue || s.HasTag(tag)
}

// AllTags returns the distinct tags across shares in first-seen order.
func AllTags(shares []domain.Share) []string {
	seen := make(map[string]struct{})
	tags := []string{}
	for _, s := range shares {
		for _, t := range s.Tags {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			tags = append(tags, t)
		}
	}
	return tags
}

// DefaultTag is the selection a fresh gallery starts with: the first known
// tag, or AllTagsValue when no share is tagged.
func DefaultTag(tags []string) string {
	if len(tags) == 0 {
		return AllTagsValue
	}
	return tags[0]
}
