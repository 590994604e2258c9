package services

import (
	"fuelroute/internal/config"
	"fuelroute/internal/domain"
)

// Prefilter collapses nodes into fixed-width mileage buckets, keeping
// the cheapest station per bucket. Ties are broken by lower mileage,
// which — by selector ordering — is simply the first station seen in
// that bucket. Output is sorted by bucket id, equivalently by mileage.
func Prefilter(nodes []domain.RouteNode) []domain.RouteNode {
	if len(nodes) == 0 {
		return nil
	}

	buckets := make(map[int]domain.RouteNode)
	order := make([]int, 0, len(nodes))
	seen := make(map[int]bool)

	for _, n := range nodes {
		bucket := int(n.Mileage / config.PrefilterSegmentMi)

		cur, ok := buckets[bucket]
		if !ok || n.Price < cur.Price {
			buckets[bucket] = n
		}

		if !seen[bucket] {
			seen[bucket] = true
			order = append(order, bucket)
		}
	}

	// order already reflects ascending bucket id because nodes arrive
	// sorted by mileage; sort defensively in case a caller passes an
	// unsorted slice.
	for i := 1; i < len(order); i++ {
		for j := i; j > 0 && order[j-1] > order[j]; j-- {
			order[j-1], order[j] = order[j], order[j-1]
		}
	}

	out := make([]domain.RouteNode, 0, len(order))
	for _, b := range order {
		out = append(out, buckets[b])
	}
	return out
}
