package models

import (
	"time"

	"github.com/gocql/gocql"
	"github.com/shopspring/decimal"
)

type Product struct {
	ID          gocql.UUID      `json:"id" db:"product_id"`
	Name        string          `json:"name" db:"name"`
	Title       string          `json:"title" db:"title"`
	Description string          `json:"description" db:"description"`
	Brand       string          `json:"brand" db:"brand"`
	Price       decimal.Decimal `json:"price" db:"price"`
	Stock       int             `json:"stock" db:"stock"`
	Sizes       []string        `json:"sizes" db:"sizes"`
	Colors      []string        `json:"colors" db:"colors"`
	Category    string          `json:"category" db:"category"`
	ImageKeys   []string        `json:"image_keys" db:"image_keys"`
	CreatedAt   *time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt   *time.Time      `json:"updated_at" db:"updated_at"`
}

// DisplayTitle retourne le titre vendeur, ou le nom technique à défaut.
func (p Product) DisplayTitle() string {
	if p.Title != "" {
		return p.Title
	}
	return p.Name
}
