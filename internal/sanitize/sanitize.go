// Package sanitize strips user-submitted markup down to a small allow-list
// before anything reaches disk. Disallowed tags are discarded, not escaped.
package sanitize

import (
	"net/url"

	"github.com/microcosm-cc/bluemonday"
)

var policy = buildPolicy()

func buildPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("b", "i", "em", "strong", "br", "p")
	p.AllowAttrs("src", "width", "height", "frameborder", "allowfullscreen", "title").OnElements("iframe")
	// An iframe whose src fails the scheme check loses the attribute but
	// keeps the element, so the tag must be valid with no attributes at all.
	p.AllowNoAttrs().OnElements("iframe")
	p.AllowURLSchemes("http", "https")
	return p
}

// Input returns raw with everything outside the allow-list removed.
// Idempotent: Input(Input(x)) == Input(x).
func Input(raw string) string {
	if raw == "" {
		return ""
	}
	return policy.Sanitize(raw)
}

// URL accepts only parseable absolute http/https URLs, else returns "".
func URL(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ""
	}
	return raw
}
