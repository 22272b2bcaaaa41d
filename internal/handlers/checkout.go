package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"atelier_back_end/internal/cart"
	"atelier_back_end/internal/httpsession"
	"atelier_back_end/internal/mailer"
	"atelier_back_end/internal/models"
)

// CheckoutView affiche le récapitulatif avant validation
func CheckoutView(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := httpsession.ID(c)

	ct := cart.Load(ctx, sessionID)
	total, count := ct.TotalAndCount()

	c.JSON(http.StatusOK, gin.H{
		"page":    "checkout",
		"cart":    cartViews(ctx, ct),
		"total":   total,
		"count":   count,
		"notices": httpsession.TakeNotices(c),
	})
}

// Checkout finalise la commande : vide le panier et envoie le récapitulatif.
// Aucun paiement réel n'est effectué (démo).
func Checkout(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := httpsession.ID(c)

	ct := cart.Load(ctx, sessionID)
	if len(ct) == 0 {
		httpsession.Notify(c, "warning", "Votre panier est vide")
		c.Redirect(http.StatusSeeOther, "/cart")
		return
	}

	total, _ := ct.TotalAndCount()

	if err := cart.Clear(ctx, sessionID); err != nil {
		log.Printf("❌ Erreur vidage panier au checkout: %v", err)
		httpsession.Notify(c, "danger", "Erreur lors de la validation de la commande")
		c.Redirect(http.StatusSeeOther, "/checkout")
		return
	}

	// Récapitulatif par email, en arrière-plan — l'échec n'annule pas le checkout
	if name, email, ok := httpsession.Identity(c); ok && email != "" {
		lines := make([]models.CartLine, 0, len(ct))
		for _, line := range ct {
			lines = append(lines, line)
		}
		go func() {
			if err := mailer.SendCheckoutConfirmation(email, name, lines, total); err != nil {
				log.Printf("⚠️ Erreur envoi récapitulatif à %s: %v", email, err)
			}
		}()
	}

	httpsession.Notify(c, "success", "Commande enregistrée avec succès ! (démo)")
	c.Redirect(http.StatusSeeOther, "/")
}
