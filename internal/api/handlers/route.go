package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	"fuelroute/internal/api/dto"
	"fuelroute/internal/apperrors"
	"fuelroute/internal/domain"
	"fuelroute/internal/ports"
	"fuelroute/internal/services"
)

// RouteHandler serves GET|POST /api/route/: validate input, call the
// planning pipeline, serialize the result.
type RouteHandler struct {
	Geocoder ports.Geocoder
	Router   ports.Router
	Selector ports.StationSelector
}

func (h *RouteHandler) Plan(w http.ResponseWriter, r *http.Request) {
	var req dto.RouteRequest

	switch r.Method {
	case http.MethodGet:
		req.Start = r.URL.Query().Get("start")
		req.End = r.URL.Query().Get("end")
	case http.MethodPost:
		dec := json.NewDecoder(r.Body)
		defer r.Body.Close()
		dec.DisallowUnknownFields()

		if err := dec.Decode(&req); err != nil {
			writeDetail(w, r, http.StatusBadRequest, "invalid json body")
			return
		}
		if err := dec.Decode(&struct{}{}); err != io.EOF {
			writeDetail(w, r, http.StatusBadRequest, "body must contain only one JSON object")
			return
		}
	default:
		w.Header().Set("Allow", "GET, POST")
		writeDetail(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	start := strings.TrimSpace(req.Start)
	end := strings.TrimSpace(req.End)
	if start == "" || end == "" {
		writeDetail(w, r, http.StatusBadRequest, "start and end are required")
		return
	}

	result, err := services.PlanRoute(r.Context(), start, end, h.Geocoder, h.Router, h.Selector)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, toResponse(result))
}

func (h *RouteHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch apperrors.StatusKind(err) {
	case apperrors.InputInvalid, apperrors.ResolutionError, apperrors.UpstreamError, apperrors.InfeasibleRoute:
		writeDetail(w, r, http.StatusBadRequest, err.Error())
	default:
		log.Printf("plan route failed: %v", err)
		writeDetail(w, r, http.StatusInternalServerError, "internal server error")
	}
}

func toResponse(result domain.PlanResult) dto.PlanResponse {
	stops := make([]dto.StopResponse, 0, len(result.Stops))
	for _, s := range result.Stops {
		stops = append(stops, dto.StopResponse{
			Mileage: s.Mileage,
			Lat:     s.Lat,
			Lon:     s.Lon,
			Name:    s.Name,
			Address: s.Address,
			Price:   s.Price,
			Gallons: s.Gallons.String(),
			Cost:    s.Cost.String(),
		})
	}

	return dto.PlanResponse{
		RouteGeoJSON:  result.RouteGeoJSON,
		Stops:         stops,
		TotalFuelCost: result.TotalFuelCost.String(),
		TotalGallons:  result.TotalGallons.String(),
		TotalMiles:    result.TotalMiles,
		MPGUsed:       result.MPGUsed,
	}
}
