package models

import (
	"encoding/json"
	"testing"
)

func TestDayRecordUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  DayRecord
	}{
		{"structured", `{"score":70,"isNature":false}`, DayRecord{Score: 70}},
		{"nature with note", `{"score":100,"isNature":true,"note":"forest walk"}`, DayRecord{Score: 100, IsNature: true, Note: "forest walk"}},
		{"legacy bare integer", `85`, DayRecord{Score: 85}},
		{"legacy zero", `0`, DayRecord{Score: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got DayRecord
			if err := json.Unmarshal([]byte(tt.input), &got); err != nil {
				t.Fatalf("Unmarshal(%s): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestHistoryUnmarshalMixed(t *testing.T) {
	data := `{"2026-01-05":60,"2026-01-06":{"score":100,"isNature":true,"note":"lake"}}`

	var h History
	if err := json.Unmarshal([]byte(data), &h); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if got := h["2026-01-05"]; got != (DayRecord{Score: 60}) {
		t.Errorf("legacy entry = %+v, want {Score:60}", got)
	}
	if got := h["2026-01-06"]; !got.IsNature || got.Note != "lake" {
		t.Errorf("structured entry = %+v", got)
	}
}

func TestDayRecordUnmarshalInvalid(t *testing.T) {
	var r DayRecord
	if err := json.Unmarshal([]byte(`"not a record"`), &r); err == nil {
		t.Error("expected error for non-record JSON")
	}
}
