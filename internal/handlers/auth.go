package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"atelier_back_end/internal/credentials"
	"atelier_back_end/internal/httpsession"
	"atelier_back_end/internal/models"
	"atelier_back_end/internal/utils"
)

// ================== INSCRIPTION ==================

func RegisterForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"page":    "register",
		"notices": httpsession.TakeNotices(c),
	})
}

func Register(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	email := credentials.NormalizeEmail(c.PostForm("email"))
	password := c.PostForm("password")

	if name == "" || email == "" || password == "" {
		httpsession.Notify(c, "danger", "Veuillez remplir tous les champs")
		c.Redirect(http.StatusSeeOther, "/register")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Email déjà enregistré → on renvoie vers la connexion, sans créer de doublon
	if _, err := credentials.FindByEmail(ctx, email); err == nil {
		httpsession.Notify(c, "warning", "Email déjà enregistré. Veuillez vous connecter.")
		c.Redirect(http.StatusSeeOther, "/login")
		return
	} else if !errors.Is(err, credentials.ErrNotFound) {
		log.Printf("❌ Erreur recherche compte: %v", err)
		httpsession.Notify(c, "danger", "Erreur interne, veuillez réessayer")
		c.Redirect(http.StatusSeeOther, "/register")
		return
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		log.Printf("❌ Erreur hash mot de passe: %v", err)
		httpsession.Notify(c, "danger", "Erreur interne, veuillez réessayer")
		c.Redirect(http.StatusSeeOther, "/register")
		return
	}

	user := models.User{Name: name, Email: email, Password: hashed}
	if err := credentials.Create(ctx, &user); err != nil {
		log.Printf("❌ Erreur création compte: %v", err)
		httpsession.Notify(c, "danger", "Erreur interne, veuillez réessayer")
		c.Redirect(http.StatusSeeOther, "/register")
		return
	}

	// Connexion automatique après inscription
	httpsession.SetIdentity(c, name, email)
	httpsession.Notify(c, "success", "Inscription réussie ! Connecté en tant que "+name)
	c.Redirect(http.StatusSeeOther, "/")
}

// ================== CONNEXION ==================

func LoginForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"page":    "login",
		"notices": httpsession.TakeNotices(c),
	})
}

func Login(c *gin.Context) {
	email := credentials.NormalizeEmail(c.PostForm("email"))
	password := c.PostForm("password")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Notice unique quel que soit l'échec : ne révèle pas si l'email existe
	user, err := credentials.FindByEmail(ctx, email)
	if err != nil {
		loginFailed(c)
		return
	}

	valid, err := utils.VerifyPassword(password, user.Password)
	if err != nil || !valid {
		loginFailed(c)
		return
	}

	httpsession.SetIdentity(c, user.Name, user.Email)
	httpsession.Notify(c, "success", "Connexion réussie !")
	c.Redirect(http.StatusSeeOther, "/")
}

func loginFailed(c *gin.Context) {
	httpsession.Notify(c, "danger", "Identifiants invalides")
	c.Redirect(http.StatusSeeOther, "/login")
}

// ================== DÉCONNEXION ==================

func Logout(c *gin.Context) {
	httpsession.ClearIdentity(c)
	httpsession.Notify(c, "info", "Déconnecté")
	c.Redirect(http.StatusSeeOther, "/")
}
