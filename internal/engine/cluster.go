package engine

import (
	"math"
	"sort"

	"hitchmap/internal/domain/entities"
)

// cellKey identifies one grid cell at a given zoom level.
type cellKey struct {
	x int
	y int
}

// Cluster partitions spots into a coarse spatial grid and returns one
// summary per non-empty cell, for map-marker aggregation. Cell size is
// 360/2^zoom degrees in both axes, so cells are square in degree space, not
// in physical distance — away from the equator they narrow east-west. That
// distortion is accepted: the host only uses clusters to thin markers at
// low zoom, where exact cell shape is invisible.
//
// sampleSize caps the representative members carried per cluster (the full
// membership is summarized by Count and TopSpot). There is no cross-cell
// merging; two spots straddling a cell boundary land in different clusters.
//
// Output is sorted by cell coordinates (x, then y) so identical inputs
// produce identical cluster order.
//
// Go Learning Note — Maps Are Unordered:
// Go deliberately randomizes map iteration order between runs. Any function
// that builds results by ranging over a map must sort them afterward if
// callers (or tests) are to see deterministic output — hence the collect-
// then-sort shape below.
func Cluster(spots []entities.Spot, zoom int, sampleSize int) []entities.Cluster {
	cellSize := 360 / math.Pow(2, float64(zoom))

	cells := make(map[cellKey][]entities.Spot)
	for _, s := range spots {
		pos, ok := s.Position()
		if !ok {
			continue
		}
		key := cellKey{
			x: int(math.Floor(pos.Lng / cellSize)),
			y: int(math.Floor(pos.Lat / cellSize)),
		}
		cells[key] = append(cells[key], s)
	}

	out := make([]entities.Cluster, 0, len(cells))
	for key, members := range cells {
		out = append(out, summarize(key, members, sampleSize))
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].CellX != out[j].CellX {
			return out[i].CellX < out[j].CellX
		}
		return out[i].CellY < out[j].CellY
	})

	return out
}

// summarize builds one cluster from a cell's members: arithmetic-mean
// center, member count, up to sampleSize representative members, and the
// single highest-rated member (first wins on ties).
func summarize(key cellKey, members []entities.Spot, sampleSize int) entities.Cluster {
	var sumLat, sumLng float64
	top := 0
	for i, s := range members {
		pos, _ := s.Position()
		sumLat += pos.Lat
		sumLng += pos.Lng
		if s.EffectiveRating() > members[top].EffectiveRating() {
			top = i
		}
	}

	sample := members
	if len(sample) > sampleSize {
		sample = sample[:sampleSize]
	}

	topSpot := members[top]
	return entities.Cluster{
		Center: entities.Location{
			Lat: sumLat / float64(len(members)),
			Lng: sumLng / float64(len(members)),
		},
		Count:   len(members),
		Spots:   sample,
		TopSpot: &topSpot,
		CellX:   key.x,
		CellY:   key.y,
	}
}
