package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/pliu/seniorsched/internal/config"
	"github.com/pliu/seniorsched/internal/handlers"
	"github.com/pliu/seniorsched/internal/middleware"
	"github.com/pliu/seniorsched/internal/store/sqlstore"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg := config.Load()
	flag.StringVar(&cfg.Addr, "addr", cfg.Addr, "http service address")
	flag.Parse()

	// e.g. DB_DRIVER=postgres DATABASE_URL="user=user password=password dbname=seniorsched sslmode=disable host=localhost port=5432"
	store, err := sqlstore.New(cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	r := handlers.NewRouter(store, cfg.ScopeTakenToUser)
	r.Use(middleware.LoggingMiddleware)

	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: middleware.CORS(cfg.AllowedOrigins)(r),
	}

	if cfg.ScopeTakenToUser {
		log.Println("Taken action scoped to the medication owner")
	}
	log.Println("Starting server on", cfg.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
