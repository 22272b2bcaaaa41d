package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"atelier_back_end/internal/catalog"
	"atelier_back_end/internal/httpsession"
	"atelier_back_end/internal/models"
	"atelier_back_end/internal/search"
	"atelier_back_end/internal/uploads"
)

// Home liste tous les produits, avec le bandeau d'identité
func Home(c *gin.Context) {
	ctx := c.Request.Context()

	products, err := catalog.GetAll(ctx)
	if err != nil {
		log.Printf("❌ Erreur lecture catalogue: %v", err)
		products = []models.Product{}
	}

	username, _, loggedIn := httpsession.Identity(c)

	c.JSON(http.StatusOK, gin.H{
		"products":  productViews(ctx, products),
		"logged_in": loggedIn,
		"username":  username,
		"notices":   httpsession.TakeNotices(c),
	})
}

// SearchProducts recherche dans Elasticsearch, avec repli sur un filtre en
// mémoire du catalogue si l'index est indisponible
func SearchProducts(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "paramètre 'q' manquant"})
		return
	}

	ctx := c.Request.Context()

	// 1️⃣ Recherche Elasticsearch (prioritaire)
	if results, err := search.Products(query); err == nil && len(results) > 0 {
		// Résout les clés d'images en URLs signées
		for i := range results {
			if keys, ok := results[i]["image_keys"].([]interface{}); ok {
				strKeys := []string{}
				for _, k := range keys {
					if s, ok := k.(string); ok {
						strKeys = append(strKeys, s)
					}
				}
				results[i]["images"] = uploads.ResolveAll(ctx, strKeys)
				delete(results[i], "image_keys")
			}
		}
		c.JSON(http.StatusOK, gin.H{"results": results})
		return
	}

	// 2️⃣ Repli : filtre en mémoire sur le catalogue complet
	products, err := catalog.GetAll(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur recherche"})
		return
	}

	matched := []models.Product{}
	for _, p := range products {
		if matchesQuery(p, query) {
			matched = append(matched, p)
		}
	}

	c.JSON(http.StatusOK, gin.H{"results": productViews(ctx, matched)})
}

func matchesQuery(p models.Product, query string) bool {
	return containsIgnoreCase(p.Name, query) ||
		containsIgnoreCase(p.Title, query) ||
		containsIgnoreCase(p.Description, query) ||
		containsIgnoreCase(p.Brand, query) ||
		containsIgnoreCase(p.Category, query)
}

func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// productView prépare un produit pour la réponse JSON, clés d'images résolues
func productView(ctx context.Context, p models.Product) gin.H {
	return gin.H{
		"id":          p.ID.String(),
		"name":        p.Name,
		"title":       p.Title,
		"description": p.Description,
		"brand":       p.Brand,
		"price":       p.Price,
		"stock":       p.Stock,
		"sizes":       p.Sizes,
		"colors":      p.Colors,
		"category":    p.Category,
		"images":      uploads.ResolveAll(ctx, p.ImageKeys),
	}
}

func productViews(ctx context.Context, products []models.Product) []gin.H {
	views := make([]gin.H, 0, len(products))
	for _, p := range products {
		views = append(views, productView(ctx, p))
	}
	return views
}
