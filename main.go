package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"time"

	"loadprofile-cloud/internal/auth"
	catalogueapp "loadprofile-cloud/internal/catalogue/application"
	cataloguememory "loadprofile-cloud/internal/catalogue/infrastructure/memory"
	cataloguerepo "loadprofile-cloud/internal/catalogue/infrastructure/postgres"
	"loadprofile-cloud/internal/catalogue/infrastructure/seed"
	cataloguehttp "loadprofile-cloud/internal/catalogue/interfaces/http"
	"loadprofile-cloud/internal/changelog"
	"loadprofile-cloud/internal/config"
	"loadprofile-cloud/internal/observability/metrics"
	profileapp "loadprofile-cloud/internal/profile/application"
	profilehttp "loadprofile-cloud/internal/profile/interfaces/http"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	logger := log.New(os.Stdout, "", log.LstdFlags)

	var (
		db            *sql.DB
		applianceRepo catalogueapp.ApplianceRepository
		changeLog     changelog.Logger
		changeLister  cataloguehttp.ChangeLister
	)
	if cfg.Database.URL != "" {
		db, err = sql.Open("pgx", cfg.Database.URL)
		if err != nil {
			logger.Fatalf("db open error: %v", err)
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			logger.Fatalf("db ping error: %v", err)
		}
		repo := cataloguerepo.NewApplianceRepository(db, cataloguerepo.WithTable(cfg.Catalogue.Table))
		changeRepo := changelog.NewRepository(db)
		applianceRepo = repo
		changeLog = changeRepo
		changeLister = changeRepo
	} else {
		logger.Printf("DATABASE_URL not set, using in-memory store")
		memoryLog := changelog.NewMemoryLog()
		applianceRepo = cataloguememory.NewApplianceRepository()
		changeLog = memoryLog
		changeLister = memoryLog
	}

	metrics.Init(db, logger)

	catalogueService, err := catalogueapp.NewCatalogueService(applianceRepo, changeLog, seed.DefaultCatalogue)
	if err != nil {
		logger.Fatalf("catalogue service error: %v", err)
	}
	if cfg.Catalogue.SeedOnStart {
		seeded, err := catalogueService.EnsureSeeded(context.Background())
		if err != nil {
			logger.Fatalf("seed error: %v", err)
		}
		if seeded > 0 {
			logger.Printf("seeded %d default appliances", seeded)
		}
	}

	profileService, err := profileapp.NewProfileService(applianceRepo)
	if err != nil {
		logger.Fatalf("profile service error: %v", err)
	}

	catalogueHandler, err := cataloguehttp.NewHandler(catalogueService)
	if err != nil {
		logger.Fatalf("catalogue handler error: %v", err)
	}
	changesHandler, err := cataloguehttp.NewChangesHandler(changeLister)
	if err != nil {
		logger.Fatalf("changes handler error: %v", err)
	}
	profileHandler, err := profilehttp.NewHandler(profileService)
	if err != nil {
		logger.Fatalf("profile handler error: %v", err)
	}
	exportHandler, err := profilehttp.NewExportHandler(profileService, applianceRepo)
	if err != nil {
		logger.Fatalf("export handler error: %v", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/api/v1/appliances", catalogueHandler)
	mux.Handle("/api/v1/appliances/", catalogueHandler)
	mux.Handle("/api/v1/changes", changesHandler)
	mux.Handle("/api/v1/profile", profileHandler)
	mux.Handle("/api/v1/exports/", exportHandler)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	var handler http.Handler = mux
	if cfg.Auth.JWTSecret != "" {
		policy := auth.NewDefaultPolicy([]string{"/healthz", "/metrics"}, nil)
		handler = auth.NewMiddleware([]byte(cfg.Auth.JWTSecret), policy).Wrap(mux)
	} else {
		logger.Printf("JWT_SECRET not set, auth disabled")
	}

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: loggingMiddleware(handler, logger)}
	logger.Printf("http listening on %s", cfg.HTTP.Addr)
	logger.Fatal(server.ListenAndServe())
}

func loggingMiddleware(next http.Handler, logger *log.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		resp := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(resp, r)
		logger.Printf("http %s %s %d %s", r.Method, r.URL.Path, resp.status, time.Since(start))
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
