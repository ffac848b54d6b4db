package main

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/tripwhizz/expenses/docs"
	"github.com/tripwhizz/expenses/internal/config"
	"github.com/tripwhizz/expenses/internal/database"
	"github.com/tripwhizz/expenses/internal/expense"
	expensesplit "github.com/tripwhizz/expenses/internal/expense/split"
	"github.com/tripwhizz/expenses/internal/ledger"
	"github.com/tripwhizz/expenses/internal/settlement"
	"github.com/tripwhizz/expenses/internal/trip"
	mw "github.com/tripwhizz/expenses/pkg/middleware"
)

// @title           Trip Expenses API
// @version         1.0
// @description     Shared expense tracking and settlement for trips
// @BasePath        /api/v1
func main() {
	// Load .env file; absence is fine, deployments configure through
	// the environment directly
	_ = godotenv.Load()

	cfg := config.Load()

	logger := newLogger(cfg.LogLevel)

	// Initialize database connection
	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		logger.Fatal().Err(err).Msg("failed to run migrations")
	}

	logger.Info().Msg("connected to database")

	// Split Strategy Factory (Factory Pattern)
	splitFactory := expensesplit.NewFactory()

	// Trip feature
	tripRepo := trip.NewRepository(db)
	tripService := trip.NewService(tripRepo)
	tripHandler := trip.NewHandler(tripService)

	// Expense feature (with split factory injected)
	expenseRepo := expense.NewRepository(db)
	expenseService := expense.NewService(expenseRepo, tripRepo, splitFactory)
	expenseHandler := expense.NewHandler(expenseService)

	// Settlement feature
	settlementRepo := settlement.NewRepository(db)
	settlementService := settlement.NewService(settlementRepo, tripRepo)
	settlementHandler := settlement.NewHandler(settlementService)

	// Ledger feature (derived balances, reads every feature's history)
	ledgerService := ledger.NewService(db, tripRepo, expenseRepo, settlementRepo)
	ledgerHandler := ledger.NewHandler(ledgerService)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(mw.RequestLogger(logger))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/swagger/*", httpSwagger.Handler())

	// API routes. Expenses, settlements and balances are nested under
	// the trip so every URL carries the trip id they are scoped by.
	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/trips", tripHandler.Routes(
			expenseHandler.Routes(),
			settlementHandler.Routes(),
			ledgerHandler.Routes(),
		))
	})

	logger.Info().Str("port", cfg.Port).Msg("server starting")
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		logger.Fatal().Err(err).Msg("server failed")
	}
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stdout).Level(lvl).With().Timestamp().Logger()
}
