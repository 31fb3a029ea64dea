// Package engine implements the spot query engine: pure filtering, sorting,
// corridor search, and grid clustering over in-memory spot batches, plus the
// single-goroutine worker that dispatches request envelopes to them.
//
// Every function in this package is pure given its inputs: no record is
// mutated in place, every operation returns new collections, and nothing is
// cached between calls. Large inputs bound latency only by their own size —
// there is no cancellation mid-operation.
package engine

import (
	"hitchmap/internal/domain/entities"
	"hitchmap/pkg/geoutil"
)

// Filter returns the subset of spots satisfying every constraint the query
// specifies. Absent constraints impose no restriction; a nil Filters keeps
// everything. Categories combine with AND, and the amenity list requires
// every tag to be present.
//
// Spots without a resolvable position are excluded only by the viewport and
// distance constraints — they still pass (or fail) every other category on
// their own merits.
//
// Output order is whatever the input order was; callers needing a specific
// order apply Sort afterward. Filtering is idempotent: applying the same
// query twice yields the same set.
func Filter(spots []entities.Spot, f *entities.Filters) []entities.Spot {
	out := make([]entities.Spot, 0, len(spots))
	for _, s := range spots {
		if matches(&s, f) {
			out = append(out, s)
		}
	}
	return out
}

func matches(s *entities.Spot, f *entities.Filters) bool {
	if f == nil {
		return true
	}

	if f.Country != "" && !s.MatchesCountry(f.Country) {
		return false
	}
	if f.MinRating != nil && s.EffectiveRating() < *f.MinRating {
		return false
	}
	if f.MaxWait != nil && s.WaitMinutes() > *f.MaxWait {
		return false
	}
	if f.VerifiedOnly && !s.IsVerified() {
		return false
	}
	if f.Query != "" && !s.MatchesText(f.Query) {
		return false
	}

	if f.Bounds != nil {
		pos, ok := s.Position()
		if !ok || !f.Bounds.Contains(pos) {
			return false
		}
	}

	// The distance bound needs both a reference point and a radius; with
	// only one of the two, the category is treated as unconstrained.
	if f.UserLocation != nil && f.MaxDistance != nil {
		pos, ok := s.Position()
		if !ok {
			return false
		}
		d := geoutil.HaversineDistance(f.UserLocation.Lat, f.UserLocation.Lng, pos.Lat, pos.Lng)
		if d > *f.MaxDistance {
			return false
		}
	}

	if len(f.Amenities) > 0 && !s.HasAmenities(f.Amenities) {
		return false
	}

	return true
}
