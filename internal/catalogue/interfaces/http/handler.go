package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"loadprofile-cloud/internal/auth"
	catalogueapp "loadprofile-cloud/internal/catalogue/application"
	catalogue "loadprofile-cloud/internal/catalogue/domain"
)

// ApplianceDTO is the wire shape of one catalogue row.
type ApplianceDTO struct {
	ID           int64                     `json:"id"`
	Name         string                    `json:"name"`
	Quantity     int                       `json:"quantity"`
	RatedPowerW  float64                   `json:"rated_power_w"`
	DutyCyclePct float64                   `json:"duty_cycle_pct"`
	PowerFactor  float64                   `json:"power_factor"`
	UseTimePct   float64                   `json:"use_time_pct"`
	Priority     string                    `json:"priority"`
	Room         string                    `json:"room"`
	ActiveSlots  [catalogue.SlotCount]bool `json:"active_slots"`
}

func toDTO(record catalogue.ApplianceRecord) ApplianceDTO {
	return ApplianceDTO{
		ID:           record.ID,
		Name:         record.Name,
		Quantity:     record.Quantity,
		RatedPowerW:  record.RatedPowerW,
		DutyCyclePct: record.DutyCyclePct,
		PowerFactor:  record.PowerFactor,
		UseTimePct:   record.UseTimePct,
		Priority:     string(record.Priority),
		Room:         record.Room,
		ActiveSlots:  [catalogue.SlotCount]bool(record.ActiveSlots),
	}
}

func fromDTO(dto ApplianceDTO) catalogue.ApplianceRecord {
	return catalogue.ApplianceRecord{
		ID:           dto.ID,
		Name:         dto.Name,
		Quantity:     dto.Quantity,
		RatedPowerW:  dto.RatedPowerW,
		DutyCyclePct: dto.DutyCyclePct,
		PowerFactor:  dto.PowerFactor,
		UseTimePct:   dto.UseTimePct,
		Priority:     catalogue.Priority(dto.Priority),
		Room:         dto.Room,
		ActiveSlots:  catalogue.SlotMask(dto.ActiveSlots),
	}
}

// Handler provides catalogue HTTP endpoints.
type Handler struct {
	service *catalogueapp.CatalogueService
}

// NewHandler constructs a handler.
func NewHandler(service *catalogueapp.CatalogueService) (*Handler, error) {
	if service == nil {
		return nil, errors.New("catalogue handler: nil service")
	}
	return &Handler{service: service}, nil
}

// ServeHTTP handles /api/v1/appliances and subroutes.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.URL.Path == "/api/v1/appliances":
		switch r.Method {
		case http.MethodGet:
			h.handleList(w, r)
		case http.MethodPost:
			h.handleUpsert(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
		return
	case r.URL.Path == "/api/v1/appliances/reset":
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.handleReset(w, r)
		return
	case strings.HasPrefix(r.URL.Path, "/api/v1/appliances/"):
		h.handleByID(w, r)
		return
	default:
		w.WriteHeader(http.StatusNotFound)
		return
	}
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	dtos := make([]ApplianceDTO, 0, len(records))
	for _, record := range records {
		dtos = append(dtos, toDTO(record))
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(dtos)
}

func (h *Handler) handleUpsert(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "read body error", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var dto ApplianceDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	actor := auth.SubjectFromContext(r.Context())
	stored, err := h.service.Upsert(r.Context(), fromDTO(dto), actor)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(toDTO(stored))
}

func (h *Handler) handleReset(w http.ResponseWriter, r *http.Request) {
	actor := auth.SubjectFromContext(r.Context())
	seeded, err := h.service.Reset(r.Context(), actor)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]int{"seeded": seeded})
}

func (h *Handler) handleByID(w http.ResponseWriter, r *http.Request) {
	idValue := strings.TrimPrefix(r.URL.Path, "/api/v1/appliances/")
	id, err := strconv.ParseInt(idValue, 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "invalid appliance id", http.StatusBadRequest)
		return
	}

	switch r.Method {
	case http.MethodGet:
		records, err := h.service.List(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		for _, record := range records {
			if record.ID == id {
				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(toDTO(record))
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
	case http.MethodPut:
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "read body error", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		var dto ApplianceDTO
		if err := json.Unmarshal(body, &dto); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		dto.ID = id
		actor := auth.SubjectFromContext(r.Context())
		stored, err := h.service.Upsert(r.Context(), fromDTO(dto), actor)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(toDTO(stored))
	case http.MethodDelete:
		actor := auth.SubjectFromContext(r.Context())
		if err := h.service.Delete(r.Context(), id, actor); err != nil {
			respondServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalogue.ErrInvalidRecord):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, catalogue.ErrApplianceNotFound):
		w.WriteHeader(http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
