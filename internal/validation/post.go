// Package validation holds the free-text post rules shared by threads,
// replies and info posts. Every rule runs; violations accumulate so the
// client gets the full list in a single 400.
package validation

import (
	"fmt"
	"net/url"
	"unicode/utf8"
)

const (
	MaxTitleLen   = 200
	MaxContentLen = 10000
	MaxAuthorLen  = 50
)

type PostFields struct {
	Title    string
	Content  string
	Author   string
	ImageURL string
}

// Post validates thread-like input. withTitle=false drops the title from
// the required-one-of trio (replies have no title field).
func Post(fields PostFields, withTitle bool) []string {
	var errs []string

	if fields.Title == "" && fields.Content == "" && fields.ImageURL == "" {
		if withTitle {
			errs = append(errs, "At least one field (title, content, or image) is required")
		} else {
			errs = append(errs, "At least one field (content or image) is required")
		}
	}

	// Limits are in characters, not bytes, so multibyte text is not
	// penalized.
	if utf8.RuneCountInString(fields.Title) > MaxTitleLen {
		errs = append(errs, fmt.Sprintf("Title must be less than %d characters", MaxTitleLen))
	}

	if utf8.RuneCountInString(fields.Content) > MaxContentLen {
		errs = append(errs, fmt.Sprintf("Content must be less than %d characters", MaxContentLen))
	}

	if utf8.RuneCountInString(fields.Author) > MaxAuthorLen {
		errs = append(errs, fmt.Sprintf("Author name must be less than %d characters", MaxAuthorLen))
	}

	if fields.ImageURL != "" && !validURL(fields.ImageURL) {
		errs = append(errs, "Invalid image URL format")
	}

	return errs
}

func validURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
