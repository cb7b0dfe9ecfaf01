package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"loadprofile-cloud/internal/changelog"
)

const defaultChangesLimit = 100

// ChangeLister reads recorded catalogue mutations, newest first.
type ChangeLister interface {
	List(ctx context.Context, limit int) ([]changelog.Entry, error)
}

// ChangeDTO is the wire shape of one change log entry.
type ChangeDTO struct {
	ID            string          `json:"id"`
	ChangeType    string          `json:"change_type"`
	ApplianceID   int64           `json:"appliance_id,omitempty"`
	ApplianceName string          `json:"appliance_name"`
	Details       json.RawMessage `json:"details,omitempty"`
	PayloadDigest string          `json:"payload_digest,omitempty"`
	Actor         string          `json:"actor,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ChangesHandler provides the change history endpoint.
type ChangesHandler struct {
	changes ChangeLister
}

// NewChangesHandler constructs a handler.
func NewChangesHandler(changes ChangeLister) (*ChangesHandler, error) {
	if changes == nil {
		return nil, errors.New("changes handler: nil change lister")
	}
	return &ChangesHandler{changes: changes}, nil
}

// ServeHTTP handles GET /api/v1/changes.
func (h *ChangesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	limit := defaultChangesLimit
	if value := r.URL.Query().Get("limit"); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed <= 0 {
			http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	entries, err := h.changes.List(r.Context(), limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]ChangeDTO, 0, len(entries))
	for _, entry := range entries {
		dtos = append(dtos, ChangeDTO{
			ID:            entry.ID,
			ChangeType:    entry.ChangeType,
			ApplianceID:   entry.ApplianceID,
			ApplianceName: entry.ApplianceName,
			Details:       entry.Details,
			PayloadDigest: entry.PayloadDigest,
			Actor:         entry.Actor,
			CreatedAt:     entry.CreatedAt,
		})
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(dtos)
}
