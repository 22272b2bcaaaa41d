package handlers

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"atelier_back_end/internal/cart"
	"atelier_back_end/internal/catalog"
	"atelier_back_end/internal/httpsession"
	"atelier_back_end/internal/models"
	"atelier_back_end/internal/uploads"
)

// ================== PANIER ==================

// ViewCart affiche le panier avec total et nombre d'articles
func ViewCart(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := httpsession.ID(c)

	ct := cart.Load(ctx, sessionID)
	total, count := ct.TotalAndCount()

	c.JSON(http.StatusOK, gin.H{
		"cart":    cartViews(ctx, ct),
		"total":   total,
		"count":   count,
		"notices": httpsession.TakeNotices(c),
	})
}

// AddToCart ajoute un produit au panier, champ de formulaire `quantity` (défaut 1)
func AddToCart(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := httpsession.ID(c)
	productID := c.Param("id")

	product, err := catalog.GetByID(ctx, productID)
	if err != nil {
		httpsession.Notify(c, "danger", "Produit introuvable")
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	// Quantité illisible ou non positive → 1, jamais de rejet
	qty := cart.ParseQuantity(c.PostForm("quantity"), 1)
	if qty < 1 {
		qty = 1
	}

	// Instantané au moment de l'ajout : titre, prix et première image figés
	snapshot := models.CartLine{
		Title: product.DisplayTitle(),
		Price: product.Price,
	}
	if len(product.ImageKeys) > 0 {
		snapshot.Image = product.ImageKeys[0]
	}

	ct := cart.Load(ctx, sessionID)
	line := ct.Add(productID, snapshot, qty)

	if err := cart.Save(ctx, sessionID, ct); err != nil {
		log.Printf("❌ Erreur sauvegarde panier: %v", err)
		httpsession.Notify(c, "danger", "Erreur lors de l'ajout au panier")
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	httpsession.Notify(c, "success", fmt.Sprintf("Ajouté %d x %s au panier", qty, line.Title))

	// Retour à la page d'origine, sinon à la fiche produit
	if referer := c.Request.Referer(); referer != "" {
		c.Redirect(http.StatusSeeOther, referer)
		return
	}
	c.Redirect(http.StatusSeeOther, "/product/"+productID)
}

// UpdateCartItem fixe la quantité exacte d'une ligne, champ `quantity`
func UpdateCartItem(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := httpsession.ID(c)
	productID := c.Param("id")

	ct := cart.Load(ctx, sessionID)
	if _, ok := ct[productID]; !ok {
		httpsession.Notify(c, "warning", "Article absent du panier")
		c.Redirect(http.StatusSeeOther, "/cart")
		return
	}

	// Quantité illisible → on conserve la quantité actuelle (aucune mutation)
	qty := cart.ParseQuantity(c.PostForm("quantity"), ct.Quantity(productID))

	removed, _ := ct.SetQuantity(productID, qty)
	if err := cart.Save(ctx, sessionID, ct); err != nil {
		log.Printf("❌ Erreur sauvegarde panier: %v", err)
		httpsession.Notify(c, "danger", "Erreur lors de la mise à jour du panier")
		c.Redirect(http.StatusSeeOther, "/cart")
		return
	}

	if removed {
		httpsession.Notify(c, "info", "Article retiré du panier")
	} else {
		httpsession.Notify(c, "success", "Panier mis à jour")
	}
	c.Redirect(http.StatusSeeOther, "/cart")
}

// RemoveCartItem retire une ligne du panier
func RemoveCartItem(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := httpsession.ID(c)
	productID := c.Param("id")

	ct := cart.Load(ctx, sessionID)
	if !ct.Remove(productID) {
		httpsession.Notify(c, "warning", "Article introuvable dans le panier")
		c.Redirect(http.StatusSeeOther, "/cart")
		return
	}

	if err := cart.Save(ctx, sessionID, ct); err != nil {
		log.Printf("❌ Erreur sauvegarde panier: %v", err)
	}

	httpsession.Notify(c, "info", "Article retiré du panier")
	c.Redirect(http.StatusSeeOther, "/cart")
}

// ClearCart vide entièrement le panier
func ClearCart(c *gin.Context) {
	sessionID := httpsession.ID(c)

	if err := cart.Clear(c.Request.Context(), sessionID); err != nil {
		log.Printf("❌ Erreur vidage panier: %v", err)
		httpsession.Notify(c, "danger", "Erreur lors du vidage du panier")
		c.Redirect(http.StatusSeeOther, "/cart")
		return
	}

	httpsession.Notify(c, "info", "Panier vidé")
	c.Redirect(http.StatusSeeOther, "/cart")
}

// cartViews prépare les lignes du panier pour la réponse JSON
func cartViews(ctx context.Context, ct cart.Cart) map[string]gin.H {
	views := make(map[string]gin.H, len(ct))
	for productID, line := range ct {
		view := gin.H{
			"title":    line.Title,
			"price":    line.Price,
			"quantity": line.Quantity,
		}
		if line.Image != "" {
			if signed, err := uploads.ResolveURL(ctx, line.Image, uploads.SignedURLTTL); err == nil {
				view["image"] = signed
			}
		}
		views[productID] = view
	}
	return views
}
