package main

import (
	"database/sql"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const schema = `
CREATE TABLE IF NOT EXISTS categories (
	id   SERIAL PRIMARY KEY,
	code TEXT NOT NULL UNIQUE,
	name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS products (
	id          SERIAL PRIMARY KEY,
	code        TEXT NOT NULL UNIQUE,
	name        TEXT NOT NULL,
	price       DECIMAL(12,0) NOT NULL,
	category_id INTEGER NOT NULL REFERENCES categories(id)
);
`

type seedProduct struct {
	code     string
	name     string
	price    int64
	category string
}

var seedProducts = []seedProduct{
	{"FIG001", "Figura Totoro", 60000, "figuras"},
	{"FIG002", "Figura Eva-01", 50000, "figuras"},
	{"FIG003", "Figura Pikachu", 45000, "figuras"},
	{"POL001", "Polera Akira", 15000, "poleras"},
	{"POL002", "Polera One Piece", 12000, "poleras"},
	{"POS001", "Poster Ghibli", 8000, "posters"},
	{"POS002", "Poster Cowboy Bebop", 5000, "posters"},
	{"POS003", "Poster Naruto", 3000, "posters"},
}

var seedCategories = map[string]string{
	"figuras": "Figuras",
	"poleras": "Poleras",
	"posters": "Posters",
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal().Msg("DATABASE_URL is required")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()

	if _, err := db.Exec(schema); err != nil {
		log.Fatal().Err(err).Msg("failed to create schema")
	}

	for code, name := range seedCategories {
		if _, err := db.Exec(
			`INSERT INTO categories (code, name) VALUES ($1, $2) ON CONFLICT (code) DO NOTHING`,
			code, name,
		); err != nil {
			log.Fatal().Err(err).Str("category", code).Msg("failed to seed category")
		}
	}

	for _, p := range seedProducts {
		if _, err := db.Exec(
			`INSERT INTO products (code, name, price, category_id)
			 SELECT $1, $2, $3, id FROM categories WHERE code = $4
			 ON CONFLICT (code) DO NOTHING`,
			p.code, p.name, p.price, p.category,
		); err != nil {
			log.Fatal().Err(err).Str("product", p.code).Msg("failed to seed product")
		}
	}

	log.Info().
		Int("categories", len(seedCategories)).
		Int("products", len(seedProducts)).
		Msg("seed complete")
}
