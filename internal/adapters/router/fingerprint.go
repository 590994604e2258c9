package router

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"

	"fuelroute/internal/domain"
)

// Fingerprint is a stable cache key for a start/end coordinate pair:
// an MD5 hash of "lon1,lat1|lon2,lat2", each value formatted to exactly
// six decimal places. Two requests whose endpoints round to the same
// six decimals collide on the cache by design — see spec §9; this is
// documented behavior, not a bug to be fixed by keying on raw input.
func Fingerprint(start, end domain.Coord) string {
	raw := fmt.Sprintf("%.6f,%.6f|%.6f,%.6f", start.Lon, start.Lat, end.Lon, end.Lat)
	sum := md5.Sum([]byte(raw))
	return hex.EncodeToString(sum[:])
}
