package planner

import "testing"

func TestNavigatorDrillAndBack(t *testing.T) {
	var nav Navigator

	if nav.Level() != LevelYear {
		t.Fatalf("initial level = %v, want year", nav.Level())
	}
	if nav.Key() != "2026" {
		t.Errorf("initial key = %q", nav.Key())
	}

	if !nav.Drill(3) {
		t.Fatal("drill to march failed")
	}
	if !nav.Drill(3) {
		t.Fatal("drill to week 3 failed")
	}
	if !nav.Drill(6) {
		t.Fatal("drill to sunday slot failed")
	}
	if nav.Level() != LevelDay || nav.Key() != "2026-03-W3-D7" {
		t.Errorf("at %v key %q", nav.Level(), nav.Key())
	}

	if !nav.Back() {
		t.Fatal("back from day failed")
	}
	if nav.Level() != LevelWeek || nav.Day() != 0 {
		t.Errorf("back did not discard day: level %v day %d", nav.Level(), nav.Day())
	}
}

func TestNavigatorRejectsInvalidChildren(t *testing.T) {
	var nav Navigator

	if nav.Drill(0) || nav.Drill(13) {
		t.Error("out-of-range month accepted")
	}

	nav.Drill(2)
	if nav.Drill(5) {
		t.Error("february week 5 accepted")
	}
	if nav.Level() != LevelMonth {
		t.Errorf("failed drill moved the level to %v", nav.Level())
	}

	// April week 5 only holds Wednesday and Thursday slots.
	nav2 := Navigator{}
	nav2.Drill(4)
	nav2.Drill(5)
	if nav2.Drill(0) {
		t.Error("april week 5 monday accepted")
	}
	if !nav2.Drill(2) {
		t.Error("april week 5 wednesday rejected")
	}
}

func TestNavigatorBackAtYear(t *testing.T) {
	var nav Navigator
	if nav.Back() {
		t.Error("back at year level should fail")
	}
}

func TestNavigatorJumpTo(t *testing.T) {
	var nav Navigator
	nav.Drill(6)
	nav.Drill(1)
	nav.Drill(0)

	nav.JumpTo(LevelMonth)
	if nav.Level() != LevelMonth || nav.Week() != 0 || nav.Day() != 0 {
		t.Errorf("after jump: level %v week %d day %d", nav.Level(), nav.Week(), nav.Day())
	}
	if nav.Month() != 6 {
		t.Errorf("jump discarded the month: %d", nav.Month())
	}

	// Jumping never descends.
	nav.JumpTo(LevelDay)
	if nav.Level() != LevelMonth {
		t.Errorf("jump descended to %v", nav.Level())
	}
}
