package entities

// OpType identifies which engine operation a request invokes.
//
// Go Learning Note — Typed String Enums:
// Go doesn't have a native enum keyword. The idiomatic pattern for values
// that cross a serialization boundary is a named string type plus typed
// constants — human-readable on the wire and type-checked in code.
type OpType string

const (
	OpFilter        OpType = "filter"
	OpSort          OpType = "sort"
	OpFilterAndSort OpType = "filterAndSort"
	OpDistances     OpType = "distances"
	OpRoute         OpType = "route"
	OpCluster       OpType = "cluster"
	OpHaversine     OpType = "haversine"
)

// Request is the self-contained envelope the host sends for one operation.
// ID is a caller-assigned correlation token, echoed back verbatim on the
// response so the host can match responses to callers. Which payload fields
// are meaningful depends on Type; the rest are ignored.
type Request struct {
	Type OpType `json:"type"`
	ID   string `json:"id"`

	Spots         []Spot    `json:"spots,omitempty"`
	Filters       *Filters  `json:"filters,omitempty"`
	SortBy        string    `json:"sortBy,omitempty"`
	UserLocation  *Location `json:"userLocation,omitempty"`
	From          *Location `json:"from,omitempty"`
	To            *Location `json:"to,omitempty"`
	Zoom          int       `json:"zoom,omitempty"`
	CorridorWidth float64   `json:"corridorWidth,omitempty"`
}

// Response is the envelope sent back for every request, well-formed or not.
// Results holds a list, a number, or an ErrorResult. Count is present only
// when Results is a list. Duration is elapsed milliseconds rounded to two
// decimal places.
type Response struct {
	ID       string  `json:"id"`
	Type     OpType  `json:"type"`
	Results  any     `json:"results"`
	Count    *int    `json:"count,omitempty"`
	Duration float64 `json:"duration"`
}

// ErrorResult is the degraded result payload for requests the engine cannot
// serve (unknown operation type, missing required payload). It is a value,
// not a raised fault — the engine stays available for the next request.
type ErrorResult struct {
	Error string `json:"error"`
}
