package engine

import (
	"sort"

	"hitchmap/internal/domain/entities"
	"hitchmap/pkg/geoutil"
)

// Sort returns a new slice ordered by the given key, leaving the input
// unmodified. The distance key needs a user position; without one the copy
// is returned in input order. Unrecognized keys have already been folded
// into rating-descending by ParseSortKey.
//
// All orderings use a stable sort, so spots with equal keys keep their
// input order, which makes results reproducible and testable.
func Sort(spots []entities.Spot, key entities.SortKey, user *entities.Location) []entities.Spot {
	out := make([]entities.Spot, len(spots))
	copy(out, spots)

	switch key {
	case entities.SortByDistance:
		if user == nil {
			return out
		}
		sort.SliceStable(out, func(i, j int) bool {
			return spotDistance(&out[i], user) < spotDistance(&out[j], user)
		})
	case entities.SortByRecent:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].LastSeen().After(out[j].LastSeen())
		})
	case entities.SortByWait:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].WaitMinutes() < out[j].WaitMinutes()
		})
	case entities.SortByName:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Name < out[j].Name
		})
	default: // rating, and the fallback for anything else
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].EffectiveRating() > out[j].EffectiveRating()
		})
	}

	return out
}

// spotDistance is the distance sort key. Spots without a position sort last,
// past every spot with a real distance.
func spotDistance(s *entities.Spot, user *entities.Location) float64 {
	pos, ok := s.Position()
	if !ok {
		return geoutil.EarthRadiusKm * 100
	}
	return geoutil.HaversineDistance(user.Lat, user.Lng, pos.Lat, pos.Lng)
}

// Distances annotates every positioned spot with its distance from the user
// position, preserving input order. Spots without a resolvable position are
// excluded — there is no distance to report for them.
func Distances(spots []entities.Spot, user entities.Location) []entities.SpotDistance {
	out := make([]entities.SpotDistance, 0, len(spots))
	for _, s := range spots {
		pos, ok := s.Position()
		if !ok {
			continue
		}
		out = append(out, entities.SpotDistance{
			Spot:     s,
			Distance: geoutil.Round2(geoutil.HaversineDistance(user.Lat, user.Lng, pos.Lat, pos.Lng)),
		})
	}
	return out
}
