package models

import "testing"

func TestBookPercent(t *testing.T) {
	tests := []struct {
		name string
		book Book
		want int
	}{
		{"zero pages read", Book{TotalPages: 300}, 0},
		{"partial", Book{TotalPages: 300, CurrentPage: 150}, 50},
		{"rounds down", Book{TotalPages: 300, CurrentPage: 239}, 79},
		{"complete", Book{TotalPages: 300, CurrentPage: 300}, 100},
		{"no total pages", Book{CurrentPage: 10}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.book.Percent(); got != tt.want {
				t.Errorf("Percent() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBookRewardEligible(t *testing.T) {
	b := Book{TotalPages: 100, CurrentPage: 79}
	if b.RewardEligible() {
		t.Error("79% should not be eligible")
	}
	b.CurrentPage = 80
	if !b.RewardEligible() {
		t.Error("80% should be eligible")
	}
}

func TestBookSetProgress(t *testing.T) {
	b := Book{TotalPages: 200}

	b.SetProgress(250)
	if b.CurrentPage != 200 {
		t.Errorf("CurrentPage = %d, want clamped to 200", b.CurrentPage)
	}
	b.SetProgress(-10)
	if b.CurrentPage != 0 {
		t.Errorf("CurrentPage = %d, want clamped to 0", b.CurrentPage)
	}
	b.SetProgress(42)
	if b.CurrentPage != 42 {
		t.Errorf("CurrentPage = %d, want 42", b.CurrentPage)
	}
}

func TestBookValid(t *testing.T) {
	if (Book{Title: " ", TotalPages: 100}).Valid() {
		t.Error("blank title must be invalid")
	}
	if (Book{Title: "Dune", TotalPages: 0}).Valid() {
		t.Error("non-positive pages must be invalid")
	}
	if !(Book{Title: "Dune", TotalPages: 412}).Valid() {
		t.Error("expected valid book")
	}
}
