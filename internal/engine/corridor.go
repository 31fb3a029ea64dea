package engine

import (
	"sort"

	"hitchmap/internal/domain/entities"
	"hitchmap/pkg/geoutil"
)

// Corridor finds spots near the straight-line route between from and to,
// scored by detour cost. widthKm is the corridor half-width; callers pass
// the configured default when the request omits it.
//
// Two-phase search, coarse filter then fine filter:
//  1. Coarse: restrict to spots inside an axis-aligned bounding box around
//     the endpoints, padded by the corridor width converted to degrees.
//     Spots without a resolvable position drop out here.
//  2. Fine: for each candidate compute the detour — the extra kilometers of
//     going from→spot→to versus from→to directly — and keep candidates with
//     detour strictly under the corridor width.
//
// Results are ordered ascending by distance from the route start, so the
// host can render them in travel order. Coincident endpoints degenerate
// cleanly: the detour becomes twice the distance to the single point, and
// only spots within half the width of it survive.
func Corridor(spots []entities.Spot, from, to entities.Location, widthKm float64) []entities.RoutedSpot {
	box := geoutil.PaddedBox(from.Lat, from.Lng, to.Lat, to.Lng, widthKm)
	direct := geoutil.HaversineDistance(from.Lat, from.Lng, to.Lat, to.Lng)

	out := make([]entities.RoutedSpot, 0)
	for _, s := range spots {
		pos, ok := s.Position()
		if !ok || !box.Contains(pos.Lat, pos.Lng) {
			continue
		}

		fromStart := geoutil.HaversineDistance(from.Lat, from.Lng, pos.Lat, pos.Lng)
		toEnd := geoutil.HaversineDistance(pos.Lat, pos.Lng, to.Lat, to.Lng)
		detour := fromStart + toEnd - direct
		if detour >= widthKm {
			continue
		}

		out = append(out, entities.RoutedSpot{
			Spot:          s,
			Detour:        geoutil.Round2(detour),
			DistFromStart: geoutil.Round2(fromStart),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DistFromStart < out[j].DistFromStart
	})

	return out
}
