package models

import "testing"

func TestGoalMapAdd(t *testing.T) {
	g := GoalMap{}

	g.Add("2026-03", "Ship the prototype")
	if len(g["2026-03"]) != 1 {
		t.Fatalf("expected 1 goal, got %d", len(g["2026-03"]))
	}
	goal := g["2026-03"][0]
	if goal.Text != "Ship the prototype" || goal.Completed || goal.ID == "" {
		t.Errorf("unexpected goal %+v", goal)
	}

	g.Add("2026-03", "   ")
	if len(g["2026-03"]) != 1 {
		t.Error("blank text should not add a goal")
	}

	g.Add("2026-03", "  trim me  ")
	if got := g["2026-03"][1].Text; got != "trim me" {
		t.Errorf("text = %q, want trimmed", got)
	}
}

func TestGoalMapToggle(t *testing.T) {
	g := GoalMap{}
	g.Add("2026", "Read 12 books")
	id := g["2026"][0].ID

	g.Toggle("2026", id)
	if !g["2026"][0].Completed {
		t.Error("expected goal completed after toggle")
	}
	g.Toggle("2026", id)
	if g["2026"][0].Completed {
		t.Error("expected goal uncompleted after second toggle")
	}

	g.Toggle("2026", "missing")
	g.Toggle("2027", id)
	if g["2026"][0].Completed {
		t.Error("unknown id or key must not change state")
	}
}

func TestGoalMapRemove(t *testing.T) {
	g := GoalMap{}
	g.Add("2026-03-W2", "first")
	g.Add("2026-03-W2", "second")
	id := g["2026-03-W2"][0].ID

	g.Remove("2026-03-W2", "missing")
	if len(g["2026-03-W2"]) != 2 {
		t.Error("unknown id must be a no-op")
	}

	g.Remove("2026-03-W2", id)
	if len(g["2026-03-W2"]) != 1 || g["2026-03-W2"][0].Text != "second" {
		t.Errorf("after remove: %+v", g["2026-03-W2"])
	}
}
