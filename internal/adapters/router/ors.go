// Package router obtains route polylines and distances from
// OpenRouteService, and caches results by coordinate fingerprint.
package router

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"fuelroute/internal/adapters/httpx"
	"fuelroute/internal/apperrors"
	"fuelroute/internal/config"
	"fuelroute/internal/domain"
	"fuelroute/internal/platform/obs"
	"fuelroute/internal/ports"
)

// ORSRouter calls OpenRouteService's directions endpoint and parses the
// response into a domain.RouteGeometry. It is a process-wide singleton:
// the *http.Client's connection pool is reused across requests.
type ORSRouter struct {
	client   *httpx.Client
	routeURL string
	apiKey   string
	cache    ports.RouteCache
}

// New builds an ORSRouter. cache may be the process-local RouteCache or
// any other ports.RouteCache implementation (e.g. RedisRouteCache).
func New(routeURL, apiKey string, cache ports.RouteCache) *ORSRouter {
	return &ORSRouter{
		client:   httpx.New(30 * time.Second),
		routeURL: routeURL,
		apiKey:   apiKey,
		cache:    cache,
	}
}

type orsRouteRequest struct {
	Coordinates [][]float64 `json:"coordinates"`
}

type orsFeatureCollection struct {
	Features []struct {
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
		Properties struct {
			Summary struct {
				Distance float64 `json:"distance"`
			} `json:"summary"`
		} `json:"properties"`
	} `json:"features"`
}

// Route returns the polyline and total distance between start and end,
// consulting the cache first. Cache hits never reach the network.
func (o *ORSRouter) Route(ctx context.Context, start, end domain.Coord) (_ domain.RouteGeometry, err error) {
	defer obs.Time(ctx, "router.Route")(&err)

	fp := Fingerprint(start, end)
	if geom, ok := o.cache.Get(ctx, fp); ok {
		return geom, nil
	}

	geom, err := o.routeUpstream(ctx, start, end)
	if err != nil {
		return domain.RouteGeometry{}, err
	}

	o.cache.Put(ctx, fp, geom)
	return geom, nil
}

func (o *ORSRouter) routeUpstream(ctx context.Context, start, end domain.Coord) (domain.RouteGeometry, error) {
	// ORS consumes (lon, lat) — the opposite of Coord's (lat, lon)
	// storage order. This swap happens once, at the adapter boundary.
	body := orsRouteRequest{Coordinates: [][]float64{start.LonLat(), end.LonLat()}}

	payload, err := json.Marshal(body)
	if err != nil {
		return domain.RouteGeometry{}, fmt.Errorf("route: marshal request: %w", err)
	}

	resp, err := o.client.DoWithRetry(ctx, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.routeURL, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", o.apiKey)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")
		return req, nil
	})
	if err != nil {
		log.Printf("ors route request failed: %v", err)
		return domain.RouteGeometry{}, fmt.Errorf("route: %w", apperrors.UpstreamError)
	}
	defer resp.Body.Close()

	var fc orsFeatureCollection
	if err := json.NewDecoder(resp.Body).Decode(&fc); err != nil {
		return domain.RouteGeometry{}, fmt.Errorf("route: decode response: %w", apperrors.UpstreamError)
	}

	if len(fc.Features) == 0 {
		return domain.RouteGeometry{}, fmt.Errorf("route: no route returned: %w", apperrors.UpstreamError)
	}

	feature := fc.Features[0]
	if len(feature.Geometry.Coordinates) < 2 {
		return domain.RouteGeometry{}, fmt.Errorf("route: polyline too short: %w", apperrors.UpstreamError)
	}

	polyline := make([]domain.Coord, 0, len(feature.Geometry.Coordinates))
	for _, xy := range feature.Geometry.Coordinates {
		if len(xy) != 2 {
			return domain.RouteGeometry{}, fmt.Errorf("route: malformed coordinate: %w", apperrors.UpstreamError)
		}
		polyline = append(polyline, domain.Coord{Lon: xy[0], Lat: xy[1]})
	}

	totalMiles := feature.Properties.Summary.Distance * config.MetersToMiles
	if totalMiles <= 0 {
		return domain.RouteGeometry{}, fmt.Errorf("route: non-positive distance: %w", apperrors.UpstreamError)
	}

	return domain.RouteGeometry{Polyline: polyline, TotalMiles: totalMiles}, nil
}
