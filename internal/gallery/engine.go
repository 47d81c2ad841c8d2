package gallery

import (
	"net/url"
	"strings"
)

// Engine selects where a search term is applied. EngineLocal filters the
// gallery itself; every other engine sends the term to a web search and
// leaves only tag filtering to the gallery.
type Engine string

const (
	EngineLocal  Engine = "local"
	EngineBing   Engine = "bing"
	EngineBaidu  Engine = "baidu"
	EngineGoogle Engine = "google"
)

// EngineOption is a selectable engine and its display name.
type EngineOption struct {
	ID   Engine
	Name string
}

// Engines lists the engines offered by the search selector, in display order.
var Engines = []EngineOption{
	{ID: EngineLocal, Name: "本地"},
	{ID: EngineBing, Name: "必应"},
	{ID: EngineBaidu, Name: "百度"},
	{ID: EngineGoogle, Name: "谷歌"},
}

// searchTemplates maps an external engine to its query URL prefix.
var searchTemplates = map[Engine]string{
	EngineBing:   "https://www.bing.com/search?q=",
	EngineBaidu:  "https://www.baidu.com/s?wd=",
	EngineGoogle: "https://www.google.com/search?q=",
}

// IsLocal reports whether e searches the gallery itself.
func (e Engine) IsLocal() bool {
	return e == EngineLocal
}

// DisplayName returns the selector label for e, or the raw identifier for
// engines that are not offered.
func (e Engine) DisplayName() string {
	for _, o := range Engines {
		if o.ID == e {
			return o.Name
		}
	}
	return string(e)
}

// Placeholder returns the search box hint for e.
func (e Engine) Placeholder() string {
	if e.IsLocal() {
		return "搜索资源..."
	}
	return "在" + e.DisplayName() + "中搜索..."
}

// WebSearchURL builds the outbound search URL for term on engine e.
// It reports false when e is local or unknown, or when term is blank.
// The term itself is encoded untrimmed.
func WebSearchURL(e Engine, term string) (string, bool) {
	if strings.TrimSpace(term) == "" {
		return "", false
	}
	prefix, ok := searchTemplates[e]
	if !ok {
		return "", false
	}
	return prefix + encodeURIComponent(term), true
}

// componentUnescaper undoes the differences between url.QueryEscape and the
// URI component encoding search engines expect: spaces are %20 and the
// marks ! ' ( ) * stay literal.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

func encodeURIComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}
