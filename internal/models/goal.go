package models

import (
	"strings"

	"github.com/google/uuid"
)

// Goal is a single objective attached to a planner period.
type Goal struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// GoalMap groups goals by period key ("2026", "2026-03", "2026-03-W2", ...).
// Keys are only ever produced by the planner codec; entries under keys that no
// longer render anywhere are kept as-is.
type GoalMap map[string][]Goal

// Add appends a new goal under key. Blank or whitespace-only text is a no-op.
func (g GoalMap) Add(key, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	g[key] = append(g[key], Goal{
		ID:   uuid.NewString(),
		Text: text,
	})
}

// Toggle flips the completion state of the goal with the given id under key.
// Unknown ids are a no-op.
func (g GoalMap) Toggle(key, id string) {
	goals := g[key]
	for i := range goals {
		if goals[i].ID == id {
			goals[i].Completed = !goals[i].Completed
			return
		}
	}
}

// Remove deletes the goal with the given id under key. Unknown ids are a
// no-op; removing the last goal leaves an empty slice under the key.
func (g GoalMap) Remove(key, id string) {
	goals := g[key]
	for i := range goals {
		if goals[i].ID == id {
			g[key] = append(goals[:i], goals[i+1:]...)
			return
		}
	}
}
