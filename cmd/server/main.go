package main

import (
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/frikimundo/go-store/app/cart"
	"github.com/frikimundo/go-store/app/catalog"
	"github.com/frikimundo/go-store/app/categories"
	"github.com/frikimundo/go-store/app/pricing"
	"github.com/frikimundo/go-store/models"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("PRETTY_LOGS") != "" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal().Msg("DATABASE_URL is required")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	// The pricing core runs against an immutable snapshot only; the DB is
	// read once here and never touched again while serving.
	repo := models.NewProductsRepository(db)
	products, err := repo.GetAllProducts()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load catalog")
	}
	snapshot := models.NewCatalog(products)

	promos, err := pricing.TableFromEnv(os.LookupEnv)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid promotion configuration")
	}

	cartHandler := cart.NewHandler(cart.NewStore(), snapshot, promos)
	catalogHandler := catalog.NewCatalogHandler(snapshot)
	categoryHandler := categories.NewCategoryHandler(models.DefaultCategories())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /catalog", catalogHandler.HandleGet)
	mux.HandleFunc("GET /catalog/{id}", catalogHandler.HandleGetProduct)
	mux.HandleFunc("GET /categories", categoryHandler.HandleGetAll)
	mux.HandleFunc("GET /cart", cartHandler.HandleGet)
	mux.HandleFunc("POST /cart/items/{id}", cartHandler.HandleAddItem)
	mux.HandleFunc("DELETE /cart/items/{id}", cartHandler.HandleRemoveItem)
	mux.HandleFunc("DELETE /cart", cartHandler.HandleClear)

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}

	log.Info().
		Str("addr", addr).
		Int("products", snapshot.Len()).
		Int("promotions", len(promos)).
		Msg("listening")

	if err := http.ListenAndServe(addr, requestLogger(mux)); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}
