package models

import "encoding/json"

// DayRecord is the outcome logged for one calendar date. A nature day is
// scored 100 regardless of the protocol and carries a reflection note.
type DayRecord struct {
	Score    int    `json:"score"`
	IsNature bool   `json:"isNature"`
	Note     string `json:"note,omitempty"`
}

// History maps ISO dates (YYYY-MM-DD) to their logged records.
type History map[string]DayRecord

// UnmarshalJSON accepts both the structured record and the legacy bare-integer
// form, which normalizes to a plain score with no nature flag.
func (r *DayRecord) UnmarshalJSON(data []byte) error {
	var score int
	if err := json.Unmarshal(data, &score); err == nil {
		*r = DayRecord{Score: score}
		return nil
	}

	type dayRecord DayRecord
	var rec dayRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	*r = DayRecord(rec)
	return nil
}
