package interfaces

import (
	"testing"
	"time"

	"loadprofile-cloud/internal/catalogue/infrastructure/seed"
	profile "loadprofile-cloud/internal/profile/domain"
)

func TestBuildProfilePDF(t *testing.T) {
	records := seed.DefaultCatalogue()
	results, err := profile.ComputeScenarios(records)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}

	payload, err := BuildProfilePDF(results, time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("build pdf: %v", err)
	}
	if len(payload) < 4 || string(payload[:4]) != "%PDF" {
		t.Fatal("payload is not a PDF")
	}
}

func TestBuildProfilePDF_EmptyResults(t *testing.T) {
	results, err := profile.ComputeScenarios(nil)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	payload, err := BuildProfilePDF(results, time.Now().UTC())
	if err != nil {
		t.Fatalf("build pdf: %v", err)
	}
	if len(payload) == 0 {
		t.Fatal("empty payload")
	}
}

func TestBuildCatalogueXLSX(t *testing.T) {
	records := seed.DefaultCatalogue()
	results, err := profile.ComputeScenarios(records)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}

	payload, err := BuildCatalogueXLSX(records, results)
	if err != nil {
		t.Fatalf("build xlsx: %v", err)
	}
	if len(payload) == 0 {
		t.Fatal("empty payload")
	}
	// XLSX files are zip archives.
	if payload[0] != 'P' || payload[1] != 'K' {
		t.Fatal("payload is not a zip archive")
	}
}
