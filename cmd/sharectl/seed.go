package main

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zvz09/2025-blog-public/internal/domain"
)

// seedShare is one entry of a YAML seed file:
//
//	- name: GitHub
//	  url: github.com
//	  logo: https://github.githubassets.com/favicons/favicon.svg
//	  description: Where code lives
//	  tags: [dev, git]
//	  stars: 5
type seedShare struct {
	Name        string   `yaml:"name"`
	URL         string   `yaml:"url"`
	Logo        string   `yaml:"logo"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
	Stars       int      `yaml:"stars"`
}

// decodeShares reads a YAML sequence of shares. Unknown keys are rejected so
// that a misspelled field does not silently drop data.
func decodeShares(r io.Reader) ([]domain.Share, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var seeds []seedShare
	if err := dec.Decode(&seeds); err != nil {
		if err == io.EOF {
			return []domain.Share{}, nil
		}
		return nil, fmt.Errorf("decode shares: %w", err)
	}

	shares := make([]domain.Share, 0, len(seeds))
	for _, s := range seeds {
		shares = append(shares, domain.Share{
			Name:        s.Name,
			URL:         s.URL,
			Logo:        s.Logo,
			Description: s.Description,
			Tags:        s.Tags,
			Stars:       s.Stars,
		})
	}
	return shares, nil
}

// readSharesFile decodes the seed file at path.
func readSharesFile(path string) ([]domain.Share, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decodeShares(f)
}
