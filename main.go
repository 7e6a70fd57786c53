package main

import (
	auth "Radar/internal/auth"
	radar "Radar/internal/calc/radar"
	report "Radar/internal/calc/report"
	sheet "Radar/internal/calc/sheet"
	config "Radar/internal/config"
	"context"
	"fmt"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, authEnv *auth.Authenv, limiter *auth.IPRateLimiter, preset *radar.Input) {
	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	radarH := &radar.Handler{Preset: preset}
	reportH := &report.Handler{}
	sheetH := &sheet.Handler{}

	secureApi.HandleFunc("/tools/radar/preset", radarH.GetPreset).Methods("GET")
	secureApi.HandleFunc("/tools/radar/evaluate", radarH.Evaluate).Methods("POST")
	secureApi.HandleFunc("/tools/radar/report/pdf", reportH.Generate).Methods("POST")
	secureApi.HandleFunc("/tools/radar/export/xlsx", sheetH.Export).Methods("POST")
	secureApi.HandleFunc("/tools/radar/import/xlsx", sheetH.Import).Methods("POST")
	secureApi.HandleFunc("/tools/radar/{op:aperture|gain|power|beamwidth}", radarH.Calc).Methods("POST")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	authEnv, err := auth.NewAuthenv([]byte(cfg.TokenKey), cfg.AdminLogin, cfg.AdminPassword)
	if err != nil {
		log.Fatal(err)
	}
	var preset *radar.Input
	if cfg.RadarPreset != "" {
		if preset, err = config.LoadPreset(cfg.RadarPreset); err != nil {
			log.Fatal(err)
		}
		log.Printf("Loaded radar preset from %s", cfg.RadarPreset)
	}

	mux := mux.NewRouter()
	log.Printf("Starting server on %s", cfg.Addr)
	HandleList(mux, authEnv, auth.NewIPRateLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst), preset)
	handler := CORS(mux)

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
			cancel()
		}
	}()

	<-ctx.Done()
	fmt.Println("Shutdown signal received!")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
