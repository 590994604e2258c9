package domain

// NodeKind distinguishes the two synthetic endpoints from real stations.
// A single RouteNode shape covers all three — Start and Finish just carry
// Price == 0 and no station identity.
type NodeKind int

const (
	NodeStation NodeKind = iota
	NodeStart
	NodeFinish
)

// RouteNode is a request-scoped point the DAG optimizer reasons about:
// the synthetic Start/Finish endpoints plus the pre-filtered stations
// between them. Mileage and Price are plain float64 — the decimal ->
// float cast happens once in the node builder and is deliberate; exact
// decimal arithmetic is reintroduced only when totals are aggregated.
type RouteNode struct {
	Kind      NodeKind
	Mileage   float64
	Price     float64
	Lat       float64
	Lon       float64
	Name      string
	Address   string
	StationID int // 0 for Start/Finish
}
