package domain

import "strings"

// to iterate thru layers: handler -> service -> storage
type BoardCreationData struct {
	Name        string
	Description string
}

type Board struct {
	Id          BoardId `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Created     Millis  `json:"created"`
	Admin       bool    `json:"admin"`
}

// Slug derives a board id from its display name: lowercase,
// everything outside [a-z0-9] stripped. "Tech Talk" -> "techtalk".
func Slug(name string) BoardId {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
