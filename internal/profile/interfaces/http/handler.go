package http

import (
	"encoding/json"
	"errors"
	"net/http"

	catalogue "loadprofile-cloud/internal/catalogue/domain"
	profileapp "loadprofile-cloud/internal/profile/application"
	profile "loadprofile-cloud/internal/profile/domain"
)

// SlotLoadDTO is the wire shape of one aggregated interval.
type SlotLoadDTO struct {
	SlotIndex       int     `json:"slot_index"`
	Label           string  `json:"label"`
	RealPowerW      float64 `json:"real_power_w"`
	ApparentPowerVA float64 `json:"apparent_power_va"`
	EnergyWh        float64 `json:"energy_wh"`
}

// ApplianceLoadDTO is the per-slot breakdown for one catalogue row.
type ApplianceLoadDTO struct {
	ApplianceID     int64     `json:"appliance_id"`
	Name            string    `json:"name"`
	Priority        string    `json:"priority"`
	RealPowerW      []float64 `json:"real_power_w"`
	ApparentPowerVA []float64 `json:"apparent_power_va"`
	EnergyWh        []float64 `json:"energy_wh"`
	DailyEnergyWh   float64   `json:"daily_energy_wh"`
}

// LoadProfileDTO is the wire shape of one computed daily profile.
type LoadProfileDTO struct {
	ApplianceCount      int                `json:"appliance_count"`
	Slots               []SlotLoadDTO      `json:"slots"`
	Appliances          []ApplianceLoadDTO `json:"appliances"`
	DailyEnergyWhByName map[string]float64 `json:"daily_energy_wh_by_name"`
	TotalDailyEnergyWh  float64            `json:"total_daily_energy_wh"`
	PeakRealPowerW      float64            `json:"peak_real_power_w"`
	PeakRealSlot        int                `json:"peak_real_slot"`
	PeakRealSlotLabel   string             `json:"peak_real_slot_label"`
	PeakApparentPowerVA float64            `json:"peak_apparent_power_va"`
	PeakApparentSlot    int                `json:"peak_apparent_slot"`
}

// ScenarioResultDTO pairs a scenario with its computed profile.
type ScenarioResultDTO struct {
	Scenario string         `json:"scenario"`
	Profile  LoadProfileDTO `json:"profile"`
}

func toProfileDTO(p *profile.LoadProfile) LoadProfileDTO {
	dto := LoadProfileDTO{
		ApplianceCount:      p.ApplianceCount,
		Slots:               make([]SlotLoadDTO, 0, catalogue.SlotCount),
		Appliances:          make([]ApplianceLoadDTO, 0, len(p.Appliances)),
		DailyEnergyWhByName: p.DailyEnergyWhByName,
		TotalDailyEnergyWh:  p.TotalDailyEnergyWh,
		PeakRealPowerW:      p.PeakRealPowerW,
		PeakRealSlot:        p.PeakRealSlot,
		PeakRealSlotLabel:   catalogue.SlotLabel(p.PeakRealSlot),
		PeakApparentPowerVA: p.PeakApparentPowerVA,
		PeakApparentSlot:    p.PeakApparentSlot,
	}
	for _, slot := range p.Slots {
		dto.Slots = append(dto.Slots, SlotLoadDTO{
			SlotIndex:       slot.SlotIndex,
			Label:           slot.Label,
			RealPowerW:      slot.RealPowerW,
			ApparentPowerVA: slot.ApparentPowerVA,
			EnergyWh:        slot.EnergyWh,
		})
	}
	for _, load := range p.Appliances {
		dto.Appliances = append(dto.Appliances, ApplianceLoadDTO{
			ApplianceID:     load.ApplianceID,
			Name:            load.Name,
			Priority:        string(load.Priority),
			RealPowerW:      load.RealPowerW[:],
			ApparentPowerVA: load.ApparentPowerVA[:],
			EnergyWh:        load.EnergyWh[:],
			DailyEnergyWh:   load.DailyEnergyWh,
		})
	}
	return dto
}

// Handler provides profile computation HTTP endpoints.
type Handler struct {
	service *profileapp.ProfileService
}

// NewHandler constructs a handler.
func NewHandler(service *profileapp.ProfileService) (*Handler, error) {
	if service == nil {
		return nil, errors.New("profile handler: nil service")
	}
	return &Handler{service: service}, nil
}

// ServeHTTP handles GET /api/v1/profile. Without a scenario query the
// response carries all comparison scenarios.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	scenario := r.URL.Query().Get("scenario")
	if scenario != "" {
		result, err := h.service.ComputeScenario(r.Context(), scenario)
		if err != nil {
			respondComputeError(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(ScenarioResultDTO{
			Scenario: string(result.Scenario),
			Profile:  toProfileDTO(result.Profile),
		})
		return
	}

	results, err := h.service.ComputeAll(r.Context())
	if err != nil {
		respondComputeError(w, err)
		return
	}
	dtos := make([]ScenarioResultDTO, 0, len(results))
	for _, result := range results {
		dtos = append(dtos, ScenarioResultDTO{
			Scenario: string(result.Scenario),
			Profile:  toProfileDTO(result.Profile),
		})
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(dtos)
}

func respondComputeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, profileapp.ErrUnknownScenario):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, catalogue.ErrInvalidRecord):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
