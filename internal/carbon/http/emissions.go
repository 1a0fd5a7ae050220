package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/aussiebroadwan/carbon/internal/carbon/service"
	"github.com/aussiebroadwan/carbon/pkg/carbonsdk"
	"github.com/aussiebroadwan/carbon/pkg/httpx"
)

type VehiclesHandler struct {
	EmissionService *service.EmissionService
}

// ServeHTTP lists the emission factor table.
//
//	@Summary	List vehicles
//	@Tags		Emissions
//	@Produce	json
//	@Success	200	{array}		carbonsdk.Vehicle		"Vehicles ordered by type"
//	@Failure	500	{object}	carbonsdk.ErrorResponse	"Server error"
//	@Router		/vehicles [get].
func (h *VehiclesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.EmissionService.ListVehicles(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]carbonsdk.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, carbonsdk.Vehicle{Type: v.Type, EmissionFactor: v.EmissionFactor})
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

type CalculateHandler struct {
	EmissionService *service.EmissionService
}

// calculateBody keeps distance raw so "missing" and "not a number" can be
// told apart. Numeric strings are accepted.
type calculateBody struct {
	VehicleType string          `json:"vehicleType"`
	Distance    json.RawMessage `json:"distance"`
}

// ServeHTTP computes factor × distance for a trip.
//
//	@Summary		Calculate trip emission
//	@Description	Emission is the vehicle's factor times distance, unrounded. The vehicle type is matched exactly.
//	@Tags			Emissions
//	@Accept			json
//	@Produce		json
//	@Param			body	body		carbonsdk.CalculateRequest	true	"Trip"
//	@Success		200		{object}	carbonsdk.CalculateResponse	"Emission"
//	@Failure		400		{object}	carbonsdk.ErrorResponse		"Missing field or bad distance"
//	@Failure		404		{object}	carbonsdk.ErrorResponse		"Vehicle Not Found"
//	@Router			/calculate [post].
func (h *CalculateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var body calculateBody
	if err := httpx.DecodeJSON(w, r, &body); err != nil {
		carbonsdk.ErrInvalidBody.WriteError(w)
		return
	}

	raw := bytes.TrimSpace(body.Distance)
	if strings.TrimSpace(body.VehicleType) == "" || len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		carbonsdk.ErrTripRequired.WriteError(w)
		return
	}

	distance, ok := parseDistance(raw)
	if !ok {
		carbonsdk.ErrInvalidDistance.WriteError(w)
		return
	}

	emission, err := h.EmissionService.Calculate(r.Context(), body.VehicleType, distance)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, carbonsdk.CalculateResponse{Emission: emission})
}

func parseDistance(raw json.RawMessage) (float64, bool) {
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f, true
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
