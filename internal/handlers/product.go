package handlers

import (
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	qrcode "github.com/skip2/go-qrcode"

	"atelier_back_end/internal/catalog"
	"atelier_back_end/internal/httpsession"
	"atelier_back_end/internal/models"
	"atelier_back_end/internal/uploads"
)

// ================== GESTION DU CATALOGUE (routes protégées) ==================

func ManageProducts(c *gin.Context) {
	ctx := c.Request.Context()

	products, err := catalog.GetAll(ctx)
	if err != nil {
		log.Printf("❌ Erreur lecture catalogue: %v", err)
		products = []models.Product{}
	}

	c.JSON(http.StatusOK, gin.H{
		"page":     "manage_products",
		"products": productViews(ctx, products),
		"notices":  httpsession.TakeNotices(c),
	})
}

func DeleteProduct(c *gin.Context) {
	productID := c.Param("id")

	if err := catalog.DeleteByID(c.Request.Context(), productID); err != nil {
		log.Printf("❌ Erreur suppression produit %s: %v", productID, err)
		httpsession.Notify(c, "danger", "Erreur lors de la suppression du produit")
		c.Redirect(http.StatusSeeOther, "/manage-products")
		return
	}

	httpsession.Notify(c, "info", "Produit supprimé avec succès !")
	c.Redirect(http.StatusSeeOther, "/manage-products")
}

func UpdateProductForm(c *gin.Context) {
	ctx := c.Request.Context()

	product, err := catalog.GetByID(ctx, c.Param("id"))
	if err != nil {
		httpsession.Notify(c, "danger", "Produit introuvable")
		c.Redirect(http.StatusSeeOther, "/manage-products")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page":    "update_product",
		"product": productView(ctx, *product),
		"notices": httpsession.TakeNotices(c),
	})
}

func UpdateProduct(c *gin.Context) {
	ctx := c.Request.Context()
	productID := c.Param("id")

	product, err := catalog.GetByID(ctx, productID)
	if err != nil {
		httpsession.Notify(c, "danger", "Produit introuvable")
		c.Redirect(http.StatusSeeOther, "/manage-products")
		return
	}

	product.Title = c.PostForm("title")
	product.Brand = c.PostForm("brand")
	product.Category = c.PostForm("category")
	product.Description = c.PostForm("description")
	product.Price = parsePrice(c.PostForm("price"))
	product.Stock = parseStock(c.PostForm("stock"))

	// Remplacement intégral des images uniquement si de nouveaux fichiers
	// valides sont fournis ; sinon la liste existante est conservée.
	if newKeys := uploads.Store(ctx, formImages(c), 0); len(newKeys) > 0 {
		product.ImageKeys = newKeys
	}

	if err := catalog.UpdateByID(ctx, product); err != nil {
		log.Printf("❌ Erreur mise à jour produit %s: %v", productID, err)
		httpsession.Notify(c, "danger", "Erreur lors de la mise à jour")
		c.Redirect(http.StatusSeeOther, "/manage-products")
		return
	}

	httpsession.Notify(c, "success", "Produit mis à jour avec succès !")
	c.Redirect(http.StatusSeeOther, "/manage-products")
}

func AddProductForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"page":    "add_product",
		"notices": httpsession.TakeNotices(c),
	})
}

func AddProduct(c *gin.Context) {
	ctx := c.Request.Context()

	product := models.Product{
		Name:        strings.TrimSpace(c.PostForm("name")),
		Title:       strings.TrimSpace(c.PostForm("title")),
		Description: strings.TrimSpace(c.PostForm("description")),
		Brand:       strings.TrimSpace(c.PostForm("brand")),
		Price:       parsePrice(c.PostForm("price")),
		Stock:       parseStock(c.PostForm("stock")),
		Sizes:       splitList(c.PostForm("sizes")),
		Colors:      splitList(c.PostForm("colors")),
		Category:    strings.TrimSpace(c.PostForm("category")),
	}

	// 5 images maximum à la création
	product.ImageKeys = uploads.Store(ctx, formImages(c), uploads.MaxCreateImages)

	if err := catalog.Create(ctx, &product); err != nil {
		log.Printf("❌ Erreur création produit: %v", err)
		httpsession.Notify(c, "danger", "Erreur lors de la création du produit")
		c.Redirect(http.StatusSeeOther, "/add-product")
		return
	}

	httpsession.Notify(c, "success", "Produit ajouté avec succès")
	c.Redirect(http.StatusSeeOther, "/")
}

// ================== FICHES PRODUIT (routes publiques) ==================

func ProductDetail(c *gin.Context) {
	ctx := c.Request.Context()

	product, err := catalog.GetByID(ctx, c.Param("id"))
	if err != nil {
		httpsession.Notify(c, "danger", "Produit introuvable")
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	username, _, loggedIn := httpsession.Identity(c)

	c.JSON(http.StatusOK, gin.H{
		"product":   productView(ctx, *product),
		"logged_in": loggedIn,
		"username":  username,
		"notices":   httpsession.TakeNotices(c),
	})
}

// ProductQR génère un QR code PNG pointant vers la fiche produit
func ProductQR(c *gin.Context) {
	productID := c.Param("id")

	if _, err := catalog.GetByID(c.Request.Context(), productID); err != nil {
		httpsession.Notify(c, "danger", "Produit introuvable")
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	png, err := qrcode.Encode(baseURL+"/product/"+productID, qrcode.Medium, 256)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération QR code"})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

// ================== PARSING DES FORMULAIRES ==================

// parsePrice lit un prix de formulaire ; champ vide ou illisible → 0
func parsePrice(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// parseStock lit un stock de formulaire ; champ vide ou illisible → 0
func parseStock(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// splitList découpe une liste saisie en "a, b, c"
func splitList(raw string) []string {
	parts := []string{}
	for _, p := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}

// formImages extrait les fichiers du champ multipart `images`
func formImages(c *gin.Context) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	return form.File["images"]
}
