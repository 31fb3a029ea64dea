// Package entities defines the core domain models for the spot query engine.
// These structs represent the business concepts (Spot, Filters, Cluster, the
// request/response envelopes) and live in the innermost layer of the
// architecture — they have no dependencies on HTTP, metrics, or the engine.
//
// Go Learning Note — "internal/" directory:
// Packages under internal/ cannot be imported by code outside this module. Go
// enforces this at the compiler level. This is how Go provides encapsulation
// at the package level — it prevents external code from depending on your
// internal implementation details.
package entities

import (
	"encoding/json"
	"strings"
	"time"
)

// WaitSentinelMinutes is the effective wait for spots with no recorded wait
// time. It is large enough that such spots sort last under wait-ascending
// order and fail any realistic maxWait filter.
const WaitSentinelMinutes = 999

// Location represents a geographic coordinate pair (latitude/longitude).
//
// Go Learning Note — Value Types vs Reference Types:
// Location is a small, immutable data holder, so it is passed by value.
// Value types are copied on assignment, which is fine here since Location is
// only 16 bytes (two float64s). Larger or mutable structs are passed as
// pointers to avoid expensive copies and allow shared mutation.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Spot is one location record as supplied by the host on every call. The
// host's backend is schema-flexible, so most fields are optional and several
// have more than one accepted spelling. The resolution methods below
// (Position, EffectiveRating, WaitMinutes, IsVerified, LastSeen) are the only
// supported way to read those fields — they encode the fallback and default
// rules in one place.
//
// Go Learning Note — Pointers for Optional Fields:
// Lat, GlobalRating, etc. are *float64 rather than float64 so that "absent"
// and "zero" are distinguishable after JSON decoding. A plain float64 cannot
// tell `{"rating": 0}` apart from a record with no rating at all, and those
// two cases resolve differently here (0 is a valid rating; absent falls back
// to another field).
type Spot struct {
	ID string `json:"id"`

	Lat *float64 `json:"lat,omitempty"`
	Lng *float64 `json:"lng,omitempty"`

	Country     string `json:"country,omitempty"`
	CountryCode string `json:"countryCode,omitempty"`

	GlobalRating *float64 `json:"globalRating,omitempty"`
	Rating       *float64 `json:"rating,omitempty"`

	AverageWait *float64 `json:"averageWait,omitempty"`

	Verified    bool `json:"verified,omitempty"`
	Validations int  `json:"validations,omitempty"`

	Amenities []string `json:"amenities,omitempty"`

	Name        string `json:"name,omitempty"`
	City        string `json:"city,omitempty"`
	Description string `json:"description,omitempty"`

	LastActivity FlexTime `json:"lastActivity,omitempty"`
	Created      FlexTime `json:"created,omitempty"`
}

// UnmarshalJSON accepts the position either as top-level lat/lng or nested
// under a "coordinates" object. Top-level fields win when both are present.
//
// Go Learning Note — The Type Alias Trick:
// `type alias Spot` creates a type with the same fields but none of Spot's
// methods — including this UnmarshalJSON. Decoding into the alias avoids the
// infinite recursion that decoding into Spot directly would cause.
func (s *Spot) UnmarshalJSON(data []byte) error {
	type alias Spot
	aux := struct {
		*alias
		Coordinates *struct {
			Lat *float64 `json:"lat"`
			Lng *float64 `json:"lng"`
		} `json:"coordinates"`
	}{alias: (*alias)(s)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Coordinates != nil {
		if s.Lat == nil {
			s.Lat = aux.Coordinates.Lat
		}
		if s.Lng == nil {
			s.Lng = aux.Coordinates.Lng
		}
	}
	return nil
}

// Position returns the spot's coordinates and whether they are defined.
// Spots without a resolvable position are excluded from position-dependent
// predicates but still participate in everything else.
func (s *Spot) Position() (Location, bool) {
	if s.Lat == nil || s.Lng == nil {
		return Location{}, false
	}
	return Location{Lat: *s.Lat, Lng: *s.Lng}, true
}

// EffectiveRating resolves the rating: globalRating preferred, rating as
// fallback, 0 when neither is present.
func (s *Spot) EffectiveRating() float64 {
	if s.GlobalRating != nil {
		return *s.GlobalRating
	}
	if s.Rating != nil {
		return *s.Rating
	}
	return 0
}

// WaitMinutes resolves the average wait, substituting the sentinel for
// spots with no recorded wait.
func (s *Spot) WaitMinutes() float64 {
	if s.AverageWait != nil {
		return *s.AverageWait
	}
	return WaitSentinelMinutes
}

// IsVerified reports whether the spot counts as verified: either the
// boolean flag is set or at least one validation has been recorded.
func (s *Spot) IsVerified() bool {
	return s.Verified || s.Validations > 0
}

// LastSeen returns the later of lastActivity and created, for recency
// ordering. Spots with neither return the zero time and sort last.
func (s *Spot) LastSeen() time.Time {
	la, cr := s.LastActivity.Time, s.Created.Time
	if la.After(cr) {
		return la
	}
	return cr
}

// MatchesCountry compares case-insensitively against both the country name
// and the country code.
func (s *Spot) MatchesCountry(country string) bool {
	return strings.EqualFold(s.Country, country) ||
		strings.EqualFold(s.CountryCode, country)
}

// MatchesText reports whether any free-text field (name, city, description,
// country) contains the query, case-insensitively.
func (s *Spot) MatchesText(query string) bool {
	q := strings.ToLower(query)
	for _, field := range []string{s.Name, s.City, s.Description, s.Country} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// HasAmenities reports whether the spot carries every requested amenity
// (intersection semantics — AND, not OR). Comparison is case-insensitive.
func (s *Spot) HasAmenities(required []string) bool {
	for _, want := range required {
		found := false
		for _, have := range s.Amenities {
			if strings.EqualFold(have, want) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// FlexTime is a timestamp that tolerates the backend's mixed encodings:
// RFC 3339 strings, epoch milliseconds, or nothing at all. Unparseable
// values resolve to the zero time rather than failing the whole record —
// a malformed timestamp only costs the record its recency ordering.
type FlexTime struct {
	time.Time
}

func (t *FlexTime) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		parsed, err := time.Parse(time.RFC3339, str)
		if err != nil {
			t.Time = time.Time{}
			return nil
		}
		t.Time = parsed
		return nil
	}

	var millis float64
	if err := json.Unmarshal(data, &millis); err == nil {
		t.Time = time.UnixMilli(int64(millis)).UTC()
		return nil
	}

	t.Time = time.Time{}
	return nil
}

func (t FlexTime) MarshalJSON() ([]byte, error) {
	if t.Time.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Time.Format(time.RFC3339))
}
