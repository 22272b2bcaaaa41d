// Package httpsession porte l'état par client : identité connectée, identifiant
// de session (clé du panier Redis) et notices flash. Le cookie est signé côté
// serveur, opaque pour le client.
package httpsession

import (
	"encoding/gob"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

const (
	cookieName = "atelier_session"
	// 30 jours, aligné sur le TTL du panier Redis
	sessionMaxAge = 86400 * 30

	keySessionID = "sid"
	keyUserName  = "user"
	keyUserEmail = "email"
)

var Store *sessions.CookieStore

// Notice est un message flash affiché une seule fois (success, info, warning, danger).
type Notice struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

func init() {
	gob.Register(Notice{})
}

// Init configure le store de sessions signées
func Init() {
	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		log.Fatal("❌ SESSION_SECRET manquant dans .env")
	}

	Store = sessions.NewCookieStore([]byte(sessionSecret))
	Store.MaxAge(sessionMaxAge)
	Store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		Secure:   false, // false en dev, true en prod
		SameSite: http.SameSiteLaxMode,
	}

	log.Println("✅ Store de sessions initialisé")
}

func current(c *gin.Context) *sessions.Session {
	// Get ne retourne jamais de session nil : cookie illisible → session neuve
	s, _ := Store.Get(c.Request, cookieName)
	return s
}

func save(c *gin.Context, s *sessions.Session) {
	if err := s.Save(c.Request, c.Writer); err != nil {
		log.Printf("⚠️ Erreur sauvegarde session: %v", err)
	}
}

// ID retourne l'identifiant de session, créé à la première visite.
// C'est la clé du panier côté Redis.
func ID(c *gin.Context) string {
	s := current(c)
	if sid, ok := s.Values[keySessionID].(string); ok && sid != "" {
		return sid
	}
	sid := uuid.NewString()
	s.Values[keySessionID] = sid
	save(c, s)
	return sid
}

// Identity retourne le nom et l'email de l'utilisateur connecté, s'il y en a un.
func Identity(c *gin.Context) (name, email string, ok bool) {
	s := current(c)
	name, ok = s.Values[keyUserName].(string)
	if !ok || name == "" {
		return "", "", false
	}
	email, _ = s.Values[keyUserEmail].(string)
	return name, email, true
}

// SetIdentity connecte l'utilisateur sur la session courante
func SetIdentity(c *gin.Context, name, email string) {
	s := current(c)
	s.Values[keyUserName] = name
	s.Values[keyUserEmail] = email
	save(c, s)
}

// ClearIdentity déconnecte l'utilisateur. Le panier (clé de session) est conservé.
func ClearIdentity(c *gin.Context) {
	s := current(c)
	delete(s.Values, keyUserName)
	delete(s.Values, keyUserEmail)
	save(c, s)
}

// Notify empile une notice flash consommée à la prochaine vue
func Notify(c *gin.Context, level, message string) {
	s := current(c)
	s.AddFlash(Notice{Level: level, Message: message})
	save(c, s)
}

// TakeNotices consomme et retourne les notices en attente
func TakeNotices(c *gin.Context) []Notice {
	s := current(c)
	flashes := s.Flashes()
	if len(flashes) > 0 {
		save(c, s)
	}
	notices := make([]Notice, 0, len(flashes))
	for _, f := range flashes {
		if n, ok := f.(Notice); ok {
			notices = append(notices, n)
		}
	}
	return notices
}
