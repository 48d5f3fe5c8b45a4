package wizard

import (
	"encoding/base64"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/alexivanou/travel-planner/internal/failure"
)

// DateLayout is the calendar date format used in wizard parameters and tokens
const DateLayout = "2006-01-02"

// State carries the selections made so far. It is passed between steps by the
// caller, never stored by the server.
type State struct {
	CountryID     int64
	AttractionIDs []int64
	StartDate     time.Time
	EndDate       time.Time
	HotelID       *int64
}

type wireState struct {
	CountryID     int64   `json:"country_id"`
	AttractionIDs []int64 `json:"attraction_ids,omitempty"`
	StartDate     string  `json:"start_date,omitempty"`
	EndDate       string  `json:"end_date,omitempty"`
	HotelID       *int64  `json:"hotel_id,omitempty"`
}

// HasDates reports whether both dates were chosen
func (s State) HasDates() bool {
	return !s.StartDate.IsZero() && !s.EndDate.IsZero()
}

func (s State) MarshalJSON() ([]byte, error) {
	w := wireState{CountryID: s.CountryID, AttractionIDs: s.AttractionIDs, HotelID: s.HotelID}
	if !s.StartDate.IsZero() {
		w.StartDate = s.StartDate.Format(DateLayout)
	}
	if !s.EndDate.IsZero() {
		w.EndDate = s.EndDate.Format(DateLayout)
	}
	return json.Marshal(w)
}

func (s *State) UnmarshalJSON(data []byte) error {
	var w wireState
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	start, err := ParseDate(w.StartDate)
	if err != nil {
		return err
	}
	end, err := ParseDate(w.EndDate)
	if err != nil {
		return err
	}
	*s = State{CountryID: w.CountryID, AttractionIDs: w.AttractionIDs, StartDate: start, EndDate: end, HotelID: w.HotelID}
	return nil
}

// Encode returns the state as an opaque URL-safe token
func (s State) Encode() string {
	data, _ := s.MarshalJSON()
	return base64.RawURLEncoding.EncodeToString(data)
}

// Decode parses a token produced by Encode
func Decode(token string) (State, error) {
	var s State
	data, err := base64.RawURLEncoding.DecodeString(strings.TrimSpace(token))
	if err != nil {
		return s, failure.Validation("invalid wizard state")
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return s, failure.Validation("invalid wizard state")
	}
	return s, nil
}

// ParseIDs parses a comma separated id list. Blank entries are skipped and
// repeated ids are kept once, in first-seen order.
func ParseIDs(raw string) ([]int64, error) {
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil || id <= 0 {
			return nil, failure.Validationf("invalid attraction id %q", part)
		}
		ids = append(ids, id)
	}
	return dedupe(ids), nil
}

// ParseDate parses a calendar date; an empty string yields the zero time
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(DateLayout, raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		y, m, d := t.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, failure.Validationf("invalid date %q, expected YYYY-MM-DD", raw)
}

func dedupe(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
