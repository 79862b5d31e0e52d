package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/EventCentral/EC-Backend/internal/auth"
	"github.com/EventCentral/EC-Backend/internal/config"
	"github.com/EventCentral/EC-Backend/internal/dashboard"
	"github.com/EventCentral/EC-Backend/internal/db"
	"github.com/EventCentral/EC-Backend/internal/events"
	"github.com/EventCentral/EC-Backend/internal/middleware"
	"github.com/EventCentral/EC-Backend/internal/registration"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
)

func RootHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, "Server is up!")
}

func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid config: ", err)
	}

	gdb, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	auth.Init(gdb)
	events.Init(gdb)
	registration.Init(gdb)

	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)

	authService := &auth.Service{
		Store:      &auth.GormUserStore{DB: gdb},
		Tokens:     tokens,
		BcryptCost: cfg.BcryptCost,
	}
	eventHandler := &events.Handler{DB: gdb}
	registrationHandler := &registration.Handler{
		Ledger: registration.NewLedger(&registration.GormStore{DB: gdb}),
	}
	dashboardHandler := &dashboard.Handler{DB: gdb}

	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))
	r.Get("/", RootHandler)

	r.Mount("/auth", auth.SetupRoutes(authService))
	r.Mount("/event", events.SetupRoutes(eventHandler, tokens))
	r.Mount("/eventregistration", registration.SetupRoutes(registrationHandler, tokens))
	r.Mount("/dashboard", dashboard.SetupRoutes(dashboardHandler, tokens))

	log.Printf("Server listening on port :%s...", cfg.Port)

	if err := http.ListenAndServe("0.0.0.0:"+cfg.Port, r); err != nil {
		log.Fatal("Server error: ", err)
	}
}
