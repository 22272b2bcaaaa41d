// Package catalog est le store de persistance des produits (ScyllaDB), avec un
// cache Redis sur la liste complète et une indexation Elasticsearch en arrière-plan.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/gocql/gocql"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"atelier_back_end/internal/database"
	"atelier_back_end/internal/models"
	"atelier_back_end/internal/search"
)

var ErrNotFound = errors.New("produit introuvable")

const (
	allProductsCacheKey = "products:all"
	allProductsCacheTTL = time.Hour
)

// Le prix est stocké en texte côté ScyllaDB et manipulé en décimal côté Go,
// pour rester exact au centime près (pas de dérive float).
const selectColumns = `product_id, name, title, description, brand, price, stock, sizes, colors, category, image_keys, created_at, updated_at`

func scanProduct(scan func(dest ...interface{}) error) (models.Product, error) {
	var p models.Product
	var priceStr string

	err := scan(&p.ID, &p.Name, &p.Title, &p.Description, &p.Brand, &priceStr, &p.Stock,
		&p.Sizes, &p.Colors, &p.Category, &p.ImageKeys, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return p, err
	}

	if priceStr != "" {
		if d, err := decimal.NewFromString(priceStr); err == nil {
			p.Price = d
		}
	}
	return p, nil
}

// Create insère un nouveau produit et l'indexe
func Create(ctx context.Context, p *models.Product) error {
	session, err := database.GetCatalogSession()
	if err != nil {
		return err
	}

	p.ID = gocql.TimeUUID()
	now := time.Now()
	p.CreatedAt = &now
	p.UpdatedAt = &now

	query := `INSERT INTO products (` + selectColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	if err := session.Query(query, p.ID, p.Name, p.Title, p.Description, p.Brand,
		p.Price.String(), p.Stock, p.Sizes, p.Colors, p.Category, p.ImageKeys,
		p.CreatedAt, p.UpdatedAt).WithContext(ctx).Exec(); err != nil {
		return err
	}

	invalidateListCache(ctx)

	// Indexation Elasticsearch en arrière-plan
	go search.IndexProduct(*p)

	return nil
}

// GetAll retourne tous les produits, via le cache Redis si présent
func GetAll(ctx context.Context) ([]models.Product, error) {
	if val, err := database.Redis.Get(ctx, allProductsCacheKey).Result(); err == nil && val != "" {
		var cached []models.Product
		if err := json.Unmarshal([]byte(val), &cached); err == nil {
			return cached, nil
		}
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query(`SELECT ` + selectColumns + ` FROM products`).WithContext(ctx).Iter()

	products := []models.Product{}
	for {
		var p models.Product
		var priceStr string
		if !iter.Scan(&p.ID, &p.Name, &p.Title, &p.Description, &p.Brand, &priceStr, &p.Stock,
			&p.Sizes, &p.Colors, &p.Category, &p.ImageKeys, &p.CreatedAt, &p.UpdatedAt) {
			break
		}
		if priceStr != "" {
			if d, err := decimal.NewFromString(priceStr); err == nil {
				p.Price = d
			}
		}
		products = append(products, p)
	}

	if err := iter.Close(); err != nil {
		return nil, err
	}

	// Met en cache
	if data, err := json.Marshal(products); err == nil {
		database.Redis.Set(ctx, allProductsCacheKey, data, allProductsCacheTTL)
	}

	return products, nil
}

// GetByID retourne un produit, ou ErrNotFound
func GetByID(ctx context.Context, productID string) (*models.Product, error) {
	productUUID, err := uuid.Parse(productID)
	if err != nil {
		return nil, ErrNotFound
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		return nil, err
	}

	q := session.Query(`SELECT `+selectColumns+` FROM products WHERE product_id = ?`,
		gocql.UUID(productUUID)).WithContext(ctx)

	p, err := scanProduct(q.Scan)
	if err != nil {
		if errors.Is(err, gocql.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &p, nil
}

// UpdateByID remplace les champs modifiables du produit (dernier écrivain gagnant,
// pas de jeton de concurrence optimiste).
func UpdateByID(ctx context.Context, p *models.Product) error {
	session, err := database.GetCatalogSession()
	if err != nil {
		return err
	}

	now := time.Now()
	p.UpdatedAt = &now

	query := `UPDATE products SET title = ?, brand = ?, category = ?, price = ?, stock = ?, description = ?, image_keys = ?, updated_at = ? WHERE product_id = ?`

	if err := session.Query(query, p.Title, p.Brand, p.Category, p.Price.String(),
		p.Stock, p.Description, p.ImageKeys, p.UpdatedAt, p.ID).WithContext(ctx).Exec(); err != nil {
		return err
	}

	invalidateListCache(ctx)
	go search.IndexProduct(*p)

	return nil
}

// DeleteByID supprime un produit du catalogue et de l'index
func DeleteByID(ctx context.Context, productID string) error {
	productUUID, err := uuid.Parse(productID)
	if err != nil {
		return ErrNotFound
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		return err
	}

	if err := session.Query(`DELETE FROM products WHERE product_id = ?`,
		gocql.UUID(productUUID)).WithContext(ctx).Exec(); err != nil {
		return err
	}

	invalidateListCache(ctx)
	go search.RemoveProduct(productID)

	return nil
}

func invalidateListCache(ctx context.Context) {
	database.Redis.Del(ctx, allProductsCacheKey)
}
