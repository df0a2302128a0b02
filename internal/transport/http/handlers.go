package http

import (
	"encoding/json"
	"net/http"

	"telemetry/internal/authz"
	"telemetry/internal/domain"
	"telemetry/internal/dto"
	"telemetry/internal/query"
	"telemetry/internal/service"

	"github.com/go-chi/chi/v5"
)

type handler struct {
	auth      service.AuthService
	devices   service.DeviceService
	telemetry service.TelemetryService
}

func (h *handler) register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "bad request"})
		return
	}
	res, err := h.auth.Register(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

func (h *handler) login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "bad request"})
		return
	}
	res, err := h.auth.Login(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *handler) listDevices(w http.ResponseWriter, r *http.Request) {
	claims, ok := authz.IdentityFrom(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	devices, err := h.devices.List(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	res := dto.DeviceListResponse{Devices: make([]dto.DeviceResponse, 0, len(devices))}
	for _, d := range devices {
		res.Devices = append(res.Devices, deviceResponse(d))
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *handler) claimDevice(w http.ResponseWriter, r *http.Request) {
	claims, ok := authz.IdentityFrom(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	var req dto.ClaimDeviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "bad request"})
		return
	}
	device, err := h.devices.Claim(r.Context(), claims.UserID, req.SerialNumber)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, deviceResponse(device))
}

func (h *handler) releaseDevice(w http.ResponseWriter, r *http.Request) {
	claims, ok := authz.IdentityFrom(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	if err := h.devices.Release(r.Context(), claims.UserID, chi.URLParam(r, "serialNumber")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) deleteDevice(w http.ResponseWriter, r *http.Request) {
	claims, ok := authz.IdentityFrom(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	if err := h.devices.Delete(r.Context(), claims.UserID, chi.URLParam(r, "serialNumber")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) listEvents(w http.ResponseWriter, r *http.Request) {
	claims, ok := authz.IdentityFrom(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	rng, err := query.ParseRange(r.URL.Query().Get("startDate"), r.URL.Query().Get("endDate"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	events, err := h.telemetry.ListForOwner(r.Context(), claims.UserID, chi.URLParam(r, "serialNumber"), rng)
	if err != nil {
		writeError(w, r, err)
		return
	}
	res := dto.EventListResponse{Events: make([]dto.EventResponse, 0, len(events))}
	for _, ev := range events {
		res.Events = append(res.Events, eventResponse(ev))
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *handler) ingestEvent(w http.ResponseWriter, r *http.Request) {
	var req dto.IngestEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "bad request"})
		return
	}
	event, err := h.telemetry.Ingest(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, eventResponse(event))
}

func deviceResponse(d *domain.Device) dto.DeviceResponse {
	return dto.DeviceResponse{
		ID:           d.ID.String(),
		SerialNumber: d.SerialNumber,
		CreatedAt:    d.CreatedAt,
	}
}

func eventResponse(ev *domain.DeviceEvent) dto.EventResponse {
	return dto.EventResponse{
		ID:           ev.ID.String(),
		DeviceID:     ev.DeviceID.String(),
		MACAddress:   ev.MACAddress,
		IPAddress:    ev.IPAddress,
		SoilMoisture: ev.SoilMoisture,
		Humidity:     ev.Humidity,
		Temperature:  ev.Temperature,
		Light:        ev.Light,
		HappenedAt:   ev.HappenedAt,
		CreatedAt:    ev.CreatedAt,
	}
}
