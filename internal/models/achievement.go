package models

import "strings"

// Achievement is a dated victory with its story.
type Achievement struct {
	ID    string `json:"id"`
	Date  string `json:"date"` // YYYY-MM-DD
	Title string `json:"title"`
	Story string `json:"story"`
}

// Valid reports whether the achievement could be created from user input.
func (a Achievement) Valid() bool {
	return strings.TrimSpace(a.Title) != "" && strings.TrimSpace(a.Story) != ""
}
