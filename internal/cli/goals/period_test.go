package goals

import "testing"

func TestPeriodFlagsKey(t *testing.T) {
	tests := []struct {
		name    string
		flags   PeriodFlags
		want    string
		wantErr bool
	}{
		{"year", PeriodFlags{}, "2026", false},
		{"month", PeriodFlags{Month: 3}, "2026-03", false},
		{"week", PeriodFlags{Month: 3, Week: 2}, "2026-03-W2", false},
		{"day", PeriodFlags{Month: 3, Week: 3, Day: 7}, "2026-03-W3-D7", false},
		{"missing week of short month", PeriodFlags{Month: 2, Week: 5}, "", true},
		{"missing day slot", PeriodFlags{Month: 4, Week: 5, Day: 1}, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.flags.Key()
			if (err != nil) != tt.wantErr || got != tt.want {
				t.Errorf("Key() = (%q, %v), want (%q, err=%v)", got, err, tt.want, tt.wantErr)
			}
		})
	}
}

func TestPeriodFlagsValidate(t *testing.T) {
	tests := []struct {
		name    string
		flags   PeriodFlags
		wantErr bool
	}{
		{"empty", PeriodFlags{}, false},
		{"full path", PeriodFlags{Month: 6, Week: 1, Day: 1}, false},
		{"week without month", PeriodFlags{Week: 2}, true},
		{"day without week", PeriodFlags{Month: 6, Day: 1}, true},
		{"month out of range", PeriodFlags{Month: 13}, true},
		{"day out of range", PeriodFlags{Month: 6, Week: 1, Day: 8}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.flags.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
