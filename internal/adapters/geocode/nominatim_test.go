package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"fuelroute/internal/apperrors"
)

func TestGeocodeFastPathInBounds(t *testing.T) {
	g := New("http://unused.invalid", "test@example.com")

	c, err := g.Geocode(context.Background(), "33.940000,-118.410000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Lat != 33.94 || c.Lon != -118.41 {
		t.Fatalf("got %v", c)
	}
}

func TestGeocodeFastPathOutOfBoundsNeverCallsUpstream(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	g := New(srv.URL, "test@example.com")

	_, err := g.Geocode(context.Background(), "95.0, 200.0")
	if err == nil {
		t.Fatal("expected error for out-of-bounds pair")
	}
	if !wraps(err, apperrors.InputInvalid) {
		t.Fatalf("expected InputInvalid, got %v", err)
	}
	if called {
		t.Fatal("upstream should never be called for an out-of-bounds fast-path match")
	}
}

func TestGeocodeUpstreamSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]nominatimResult{{Lat: "40.7128", Lon: "-74.0060"}})
	}))
	defer srv.Close()

	g := New(srv.URL, "test@example.com")

	c, err := g.Geocode(context.Background(), "New York, NY")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Lat != 40.7128 || c.Lon != -74.0060 {
		t.Fatalf("got %v", c)
	}
}

func TestGeocodeUpstreamNoResultFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	g := New(srv.URL, "test@example.com")

	_, err := g.Geocode(context.Background(), "nowhere at all")
	if !wraps(err, apperrors.ResolutionError) {
		t.Fatalf("expected ResolutionError, got %v", err)
	}
}

func TestGeocodeUpstreamServerErrorIsRecoveredAsResolutionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	g := New(srv.URL, "test@example.com")

	_, err := g.Geocode(context.Background(), "some broken place")
	if !wraps(err, apperrors.ResolutionError) {
		t.Fatalf("expected ResolutionError, got %v", err)
	}
}

func wraps(err, target error) bool {
	return errors.Is(err, target)
}
