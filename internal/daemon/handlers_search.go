package daemon

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/ToderitaLoredana/PlaneBooking/internal/engine"
	"github.com/ToderitaLoredana/PlaneBooking/internal/logging"
	"github.com/ToderitaLoredana/PlaneBooking/internal/metrics"
	"github.com/ToderitaLoredana/PlaneBooking/internal/search"
)

// handleSearchInfo godoc
// @Summary Search usage
// @Description Explains how to submit a search. Does not run the engine.
// @Tags search
// @Produce json
// @Success 200 {object} MessageResponse
// @Router /api/data [get]
func (s *Server) handleSearchInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, MessageResponse{Message: searchUsageMessage})
}

// handleSearch godoc
// @Summary Search flights
// @Description Runs the search engine synchronously and returns the result document it wrote.
// @Description Engine failures still answer 200; see the X-Engine-Outcome and X-Result-Status headers.
// @Tags search
// @Accept json
// @Produce json
// @Param request body SearchRequest true "Search query"
// @Success 200 {object} map[string]interface{}
// @Header 200 {string} X-Engine-Outcome "success, engine_failure, executable_not_found, timeout or canceled"
// @Header 200 {string} X-Result-Status "ok, missing or malformed"
// @Failure 400 {object} ErrorResponse
// @Router /api/data [post]
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var fields map[string]json.RawMessage
	if err := decodeJSON(w, r, &fields); err != nil {
		writeError(w, http.StatusBadRequest, invalidJSONMessage)
		return
	}
	req, err := searchRequestFrom(fields)
	if err != nil {
		writeError(w, http.StatusBadRequest, invalidJSONMessage)
		return
	}

	q := engine.Query{
		Source:        req.Source,
		Destination:   req.Destination,
		Day:           req.Day,
		DepartureTime: req.DepartureTime,
	}
	if err := q.Validate(); err != nil {
		var verr *engine.ValidationError
		if errors.As(err, &verr) {
			s.logger.V(logging.VERBOSE).Info("Rejected search request", "missing", verr.Fields)
		}
		metrics.RecordValidationFailure()
		writeError(w, http.StatusBadRequest, missingFieldsMessage)
		return
	}

	res := s.search.Run(r.Context(), q)
	setOutcomeHeaders(w, res)
	writeJSON(w, http.StatusOK, res.Document)
}

// handleLatest godoc
// @Summary Latest search result
// @Description Returns the most recent successful search result without running the engine.
// @Tags search
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Header 200 {string} X-Result-Status "ok, missing or malformed"
// @Router /api/data/latest [get]
func (s *Server) handleLatest(w http.ResponseWriter, r *http.Request) {
	doc, status := s.search.Latest()
	w.Header().Set(headerResultStatus, string(status))
	writeJSON(w, http.StatusOK, doc)
}

// handlePreflight completes CORS preflight replies. The cors middleware has
// already set Access-Control-Allow-Origin when the origin and request are allowed.
func (s *Server) handlePreflight(w http.ResponseWriter, r *http.Request) {
	if w.Header().Get("Access-Control-Allow-Origin") != "" {
		w.Header().Set("Access-Control-Allow-Methods", strings.Join(s.config.CORS.AllowedMethods, ", "))
		w.Header().Set("Access-Control-Allow-Headers", strings.Join(s.config.CORS.AllowedHeaders, ", "))
	}
	w.WriteHeader(http.StatusOK)
}

// searchRequestFrom reads the exact lowercase keys. Decoding straight into
// SearchRequest would also accept keys like "SOURCE".
func searchRequestFrom(fields map[string]json.RawMessage) (SearchRequest, error) {
	var req SearchRequest
	for key, dst := range map[string]*string{
		"source":         &req.Source,
		"destination":    &req.Destination,
		"day":            &req.Day,
		"departure_time": &req.DepartureTime,
	} {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, dst); err != nil {
			return SearchRequest{}, fmt.Errorf("field %s: %w", key, err)
		}
	}
	return req, nil
}

func setOutcomeHeaders(w http.ResponseWriter, res search.Result) {
	h := w.Header()
	h.Set(headerEngineOutcome, string(res.Outcome.Kind))
	if res.Outcome.Kind == engine.KindEngineFailure {
		h.Set(headerEngineExitCode, strconv.Itoa(res.Outcome.ExitCode))
	}
	h.Set(headerResultStatus, string(res.Status))
}
