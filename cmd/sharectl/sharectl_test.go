package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zvz09/2025-blog-public/internal/domain"
)

const seedYAML = `
- name: GitHub
  url: github.com
  description: Where code lives
  tags: [dev, git]
  stars: 5
- name: Go
  url: https://go.dev
  logo: https://go.dev/images/favicon-gopher.svg
  tags: [dev, lang]
- name: Figma
  url: figma.com
  description: design tool
  tags: [design]
`

// run executes sharectl with args and returns what it printed.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeSeed(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shares.yaml")
	require.NoError(t, os.WriteFile(path, []byte(seedYAML), 0o600))
	return path
}

func TestDecodeShares(t *testing.T) {
	shares, err := decodeShares(strings.NewReader(seedYAML))

	require.NoError(t, err)
	require.Len(t, shares, 3)
	assert.Equal(t, domain.Share{
		Name:        "GitHub",
		URL:         "github.com",
		Description: "Where code lives",
		Tags:        []string{"dev", "git"},
		Stars:       5,
	}, shares[0])
	assert.Equal(t, "https://go.dev/images/favicon-gopher.svg", shares[1].Logo)
}

func TestDecodeShares_Empty(t *testing.T) {
	shares, err := decodeShares(strings.NewReader(""))

	require.NoError(t, err)
	assert.Empty(t, shares)
}

func TestDecodeShares_RejectsUnknownField(t *testing.T) {
	_, err := decodeShares(strings.NewReader("- name: x\n  urll: x.com\n"))

	assert.ErrorContains(t, err, "urll")
}

func TestList_FromFile(t *testing.T) {
	out, err := run(t, "list", "--file", writeSeed(t), "--tag", "dev")

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3, "header plus two dev shares")
	assert.True(t, strings.HasPrefix(lines[0], "BADGE"))
	assert.Contains(t, lines[1], "G from-fuchsia-500/to-pink-500")
	assert.Contains(t, lines[1], "https://github.com")
	assert.True(t, strings.HasPrefix(lines[2], "logo"))
}

func TestList_FromFile_TermAndEngine(t *testing.T) {
	path := writeSeed(t)

	local, err := run(t, "list", "--file", path, "--json", "-q", "DESIGN")
	require.NoError(t, err)
	var got []domain.Share
	require.NoError(t, json.Unmarshal([]byte(local), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Figma", got[0].Name)

	web, err := run(t, "list", "--file", path, "--json", "-q", "DESIGN", "--engine", "google")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(web), &got))
	assert.Len(t, got, 3, "a web engine ignores the term")
}

func TestList_RequiresDatabaseWithoutFile(t *testing.T) {
	_, err := run(t, "list", "--database-url", "")

	assert.ErrorContains(t, err, "DATABASE_URL")
}

func TestSearch(t *testing.T) {
	out, err := run(t, "search", "--engine", "google", "go", "generics")

	require.NoError(t, err)
	assert.Equal(t, "https://www.google.com/search?q=go%20generics\n", out)
}

func TestSearch_LocalEngineFails(t *testing.T) {
	_, err := run(t, "search", "--engine", "local", "x")

	assert.ErrorContains(t, err, `engine "local" does not search the web`)
}

func TestMigrate_RejectsUnknownAction(t *testing.T) {
	_, err := run(t, "migrate", "sideways", "--database-url", "postgres://unused")

	assert.Error(t, err)
}
