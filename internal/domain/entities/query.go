package entities

// Filters is the query description. Every field is optional — a nil pointer
// or zero value means that category imposes no restriction. Categories
// combine with logical AND; the amenity list itself is also AND (a spot must
// carry every requested tag).
type Filters struct {
	Country      string    `json:"country,omitempty"`
	MinRating    *float64  `json:"minRating,omitempty"`
	MaxWait      *float64  `json:"maxWait,omitempty"`
	VerifiedOnly bool      `json:"verifiedOnly,omitempty"`
	Query        string    `json:"query,omitempty"`
	Bounds       *Bounds   `json:"bounds,omitempty"`
	UserLocation *Location `json:"userLocation,omitempty"`
	MaxDistance  *float64  `json:"maxDistance,omitempty"`
	Amenities    []string  `json:"amenities,omitempty"`
}

// Bounds is a rectangular viewport. Containment is inclusive on all edges:
// south ≤ lat ≤ north and west ≤ lng ≤ east.
type Bounds struct {
	North float64 `json:"north"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	West  float64 `json:"west"`
}

// Contains reports whether the location falls inside the viewport.
func (b *Bounds) Contains(loc Location) bool {
	return loc.Lat >= b.South && loc.Lat <= b.North &&
		loc.Lng >= b.West && loc.Lng <= b.East
}

// SortKey selects the ordering applied by the sort engine.
type SortKey string

const (
	SortByRating   SortKey = "rating"   // descending effective rating
	SortByDistance SortKey = "distance" // ascending distance from the user
	SortByRecent   SortKey = "recent"   // descending last activity
	SortByWait     SortKey = "wait"     // ascending average wait
	SortByName     SortKey = "name"     // ascending lexicographic name
)

// ParseSortKey maps a raw sort string to a SortKey. Unrecognized or absent
// keys fall back to rating-descending, the engine's default order.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortByRating, SortByDistance, SortByRecent, SortByWait, SortByName:
		return SortKey(s)
	default:
		return SortByRating
	}
}
