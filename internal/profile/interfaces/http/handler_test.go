package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"loadprofile-cloud/internal/catalogue/infrastructure/memory"
	"loadprofile-cloud/internal/catalogue/infrastructure/seed"
	profileapp "loadprofile-cloud/internal/profile/application"
)

func seededService(t *testing.T) (*profileapp.ProfileService, *memory.ApplianceRepository) {
	t.Helper()
	repo := memory.NewApplianceRepository()
	for _, record := range seed.DefaultCatalogue() {
		record.ID = 0
		if err := repo.Upsert(context.Background(), &record); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	service, err := profileapp.NewProfileService(repo)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return service, repo
}

func TestProfileHandler_AllScenarios(t *testing.T) {
	service, _ := seededService(t)
	handler, err := NewHandler(service)
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var results []ScenarioResultDTO
	if err := json.Unmarshal(resp.Body.Bytes(), &results); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 scenarios, got %d", len(results))
	}
	if results[0].Scenario != "all" || results[1].Scenario != "essential-medium" || results[2].Scenario != "essential" {
		t.Fatalf("unexpected scenario order: %v %v %v", results[0].Scenario, results[1].Scenario, results[2].Scenario)
	}
	for _, result := range results {
		if len(result.Profile.Slots) != 12 {
			t.Fatalf("scenario %s: expected 12 slots, got %d", result.Scenario, len(result.Profile.Slots))
		}
		if result.Profile.TotalDailyEnergyWh <= 0 {
			t.Fatalf("scenario %s: zero energy", result.Scenario)
		}
	}
	if results[1].Profile.TotalDailyEnergyWh > results[0].Profile.TotalDailyEnergyWh {
		t.Fatal("filtered scenario exceeds full catalogue energy")
	}
	if results[2].Profile.TotalDailyEnergyWh > results[1].Profile.TotalDailyEnergyWh {
		t.Fatal("essential scenario exceeds essential-medium energy")
	}
}

func TestProfileHandler_SingleScenario(t *testing.T) {
	service, _ := seededService(t)
	handler, err := NewHandler(service)
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profile?scenario=essential", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var result ScenarioResultDTO
	if err := json.Unmarshal(resp.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.Scenario != "essential" {
		t.Fatalf("unexpected scenario %q", result.Scenario)
	}
	for _, load := range result.Profile.Appliances {
		if load.Priority != "essential" {
			t.Fatalf("non-essential appliance %q in essential scenario", load.Name)
		}
	}
}

func TestProfileHandler_UnknownScenario(t *testing.T) {
	service, _ := seededService(t)
	handler, err := NewHandler(service)
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profile?scenario=weekend", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestProfileHandler_EmptyCatalogueZeroProfile(t *testing.T) {
	repo := memory.NewApplianceRepository()
	service, err := profileapp.NewProfileService(repo)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	handler, err := NewHandler(service)
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profile?scenario=all", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for empty catalogue, got %d", resp.Code)
	}
	var result ScenarioResultDTO
	if err := json.Unmarshal(resp.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.Profile.ApplianceCount != 0 || result.Profile.TotalDailyEnergyWh != 0 {
		t.Fatalf("expected zero profile, got %+v", result.Profile)
	}
	if result.Profile.PeakRealSlot != 0 {
		t.Fatalf("zero profile peak slot must be 0, got %d", result.Profile.PeakRealSlot)
	}
}

func TestExportHandler_PDFAndXLSX(t *testing.T) {
	service, repo := seededService(t)
	handler, err := NewExportHandler(service, repo)
	if err != nil {
		t.Fatalf("new export handler: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/exports/profile.pdf", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("pdf export: expected 200, got %d", resp.Code)
	}
	if got := resp.Header().Get("Content-Type"); got != "application/pdf" {
		t.Fatalf("pdf content type %q", got)
	}
	if body := resp.Body.Bytes(); len(body) < 4 || string(body[:4]) != "%PDF" {
		t.Fatal("pdf export did not produce a PDF payload")
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/exports/catalogue.xlsx", nil)
	resp = httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("xlsx export: expected 200, got %d", resp.Code)
	}
	if resp.Body.Len() == 0 {
		t.Fatal("xlsx export produced empty payload")
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/exports/unknown.csv", nil)
	resp = httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown export, got %d", resp.Code)
	}
}
