package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"atelier_back_end/internal/cart"
	"atelier_back_end/internal/database"
	"atelier_back_end/internal/httpsession"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Autoriser toutes les origines (à ajuster en production)
		return true
	},
}

// CartWebSocket pousse l'état du panier à chaque changement (synchronisation
// multi-onglets). Alimenté par le canal pub/sub Redis du panier.
func CartWebSocket(c *gin.Context) {
	sessionID := httpsession.ID(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("❌ Erreur upgrade WebSocket: %v", err)
		return
	}
	defer conn.Close()

	ctx := context.Background()

	// S'abonner au canal Redis de ce panier
	pubsub := database.Redis.Subscribe(ctx, cart.Channel(sessionID))
	defer pubsub.Close()

	ch := pubsub.Channel()

	// Message de connexion
	conn.WriteJSON(gin.H{
		"type":    "connected",
		"message": "Synchronisation panier activée",
	})

	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			if msg.Payload != "updated" && msg.Payload != "cleared" {
				continue
			}

			ct := cart.Load(ctx, sessionID)
			total, count := ct.TotalAndCount()

			if err := conn.WriteJSON(gin.H{
				"type":  "cart_updated",
				"items": ct,
				"total": total,
				"count": count,
			}); err != nil {
				log.Printf("❌ Erreur envoi WebSocket: %v", err)
				return
			}
		case <-time.After(30 * time.Second):
			// Ping pour garder la connexion active
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
