package routes

import (
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"atelier_back_end/internal/handlers"
	"atelier_back_end/internal/middleware"
)

func RegisterRoutes(r *gin.Engine) {
	corsConfig := cors.DefaultConfig()
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		corsConfig.AllowOrigins = strings.Split(origins, ",")
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:5173", "http://localhost:3000"}
	}
	corsConfig.AllowCredentials = true
	r.Use(cors.New(corsConfig))

	// Vitrine publique
	r.GET("/", handlers.Home)
	r.GET("/search", handlers.SearchProducts)
	r.GET("/product/:id", handlers.ProductDetail)
	r.GET("/product/:id/qr", handlers.ProductQR)

	// Comptes
	r.GET("/register", handlers.RegisterForm)
	r.POST("/register", handlers.Register)
	r.GET("/login", handlers.LoginForm)
	r.POST("/login", handlers.Login)
	r.GET("/logout", handlers.Logout)

	// Panier (accessible sans connexion, porté par la session)
	r.GET("/cart", handlers.ViewCart)
	r.GET("/cart/ws", handlers.CartWebSocket)
	r.POST("/cart/add/:id", handlers.AddToCart)
	r.POST("/cart/update/:id", handlers.UpdateCartItem)
	r.POST("/cart/remove/:id", handlers.RemoveCartItem)
	r.POST("/cart/clear", handlers.ClearCart)

	// Routes protégées : gestion du catalogue et checkout
	authed := r.Group("/", middleware.LoginRequired())
	{
		authed.GET("/manage-products", handlers.ManageProducts)
		authed.GET("/add-product", handlers.AddProductForm)
		authed.POST("/add-product", handlers.AddProduct)
		authed.GET("/update-product/:id", handlers.UpdateProductForm)
		authed.POST("/update-product/:id", handlers.UpdateProduct)
		authed.GET("/delete-product/:id", handlers.DeleteProduct)
		authed.GET("/checkout", handlers.CheckoutView)
		authed.POST("/checkout", handlers.Checkout)
	}
}
