// Package geocode resolves free-form location strings to coordinates.
//
// Resolution order, per spec:
//  1. Parse a literal decimal-pair ("lat, lon"), bounds-validate, return.
//  2. Otherwise call Nominatim; bounds-validate and return its result.
//  3. Otherwise fail with apperrors.ResolutionError.
//
// Timeouts and transport errors from Nominatim are swallowed and
// treated as "no result" — they surface as ResolutionError, identical
// to a genuine empty result.
package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"fuelroute/internal/adapters/httpx"
	"fuelroute/internal/apperrors"
	"fuelroute/internal/domain"
)

var coordPairRe = regexp.MustCompile(`^\s*(-?\d+\.?\d*)\s*,\s*(-?\d+\.?\d*)\s*$`)

// NominatimGeocoder is a process-wide singleton: one *http.Client with a
// reusable connection pool amortizes TLS setup across requests.
type NominatimGeocoder struct {
	client    *httpx.Client
	searchURL string
	contact   string
}

// New builds a NominatimGeocoder. contact is sent as part of the
// User-Agent per Nominatim's usage policy.
func New(searchURL, contact string) *NominatimGeocoder {
	return &NominatimGeocoder{
		client:    httpx.New(10 * time.Second),
		searchURL: searchURL,
		contact:   contact,
	}
}

// Geocode resolves query to a Coord following the fast-path/upstream
// resolution order described above.
func (g *NominatimGeocoder) Geocode(ctx context.Context, query string) (domain.Coord, error) {
	q := norm.NFC.String(strings.TrimSpace(query))
	if q == "" {
		return domain.Coord{}, fmt.Errorf("geocode: empty query: %w", apperrors.InputInvalid)
	}

	if c, ok, inBounds := parseDecimalPair(q); ok {
		if !inBounds {
			return domain.Coord{}, fmt.Errorf("geocode: coordinate pair %q out of bounds: %w", q, apperrors.InputInvalid)
		}
		return c, nil
	}

	c, err := g.geocodeUpstream(ctx, q)
	if err != nil {
		// Transport/timeout failures are locally recovered as "not found".
		return domain.Coord{}, fmt.Errorf("geocode: %q: %w", q, apperrors.ResolutionError)
	}

	return c, nil
}

// parseDecimalPair matches the literal "lat, lon" pattern. The second
// return is whether the string matched the pattern at all; the third is
// whether the parsed coordinate is within WGS84 bounds.
func parseDecimalPair(s string) (domain.Coord, bool, bool) {
	m := coordPairRe.FindStringSubmatch(s)
	if m == nil {
		return domain.Coord{}, false, false
	}

	lat, err1 := strconv.ParseFloat(m[1], 64)
	lon, err2 := strconv.ParseFloat(m[2], 64)
	if err1 != nil || err2 != nil {
		return domain.Coord{}, false, false
	}

	c := domain.Coord{Lat: lat, Lon: lon}
	return c, true, c.InBounds()
}

type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

func (g *NominatimGeocoder) geocodeUpstream(ctx context.Context, query string) (domain.Coord, error) {
	resp, err := g.client.DoWithRetry(ctx, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.searchURL, nil)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("q", query)
		q.Set("format", "json")
		q.Set("limit", "1")
		req.URL.RawQuery = q.Encode()
		req.Header.Set("User-Agent", fmt.Sprintf("fuelroute/1.0 (%s)", g.contact))
		return req, nil
	})
	if err != nil {
		return domain.Coord{}, err
	}
	defer resp.Body.Close()

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return domain.Coord{}, fmt.Errorf("decode nominatim response: %w", err)
	}

	if len(results) == 0 {
		return domain.Coord{}, errors.New("no results")
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return domain.Coord{}, fmt.Errorf("parse lat: %w", err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return domain.Coord{}, fmt.Errorf("parse lon: %w", err)
	}

	c := domain.Coord{Lat: lat, Lon: lon}
	if !c.InBounds() {
		return domain.Coord{}, errors.New("nominatim result out of bounds")
	}

	return c, nil
}
