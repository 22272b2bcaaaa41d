package cart

import (
	"context"
	"encoding/json"
	"time"

	"atelier_back_end/internal/database"
)

// TTL aligné sur la durée de vie de la session cookie (30 jours)
const cartTTL = 30 * 24 * time.Hour

func key(sessionID string) string {
	return "cart:" + sessionID
}

// Channel est le canal pub/sub notifiant les changements d'un panier
// (consommé par le WebSocket de synchronisation).
func Channel(sessionID string) string {
	return "cart:" + sessionID
}

// Load récupère le panier de la session depuis Redis.
// Clé absente → panier vide : le panier est toujours initialisé.
func Load(ctx context.Context, sessionID string) Cart {
	data, err := database.Redis.Get(ctx, key(sessionID)).Result()
	if err != nil || data == "" {
		return Cart{}
	}

	var ct Cart
	if err := json.Unmarshal([]byte(data), &ct); err != nil {
		// Panier corrompu : on repart d'un panier vide plutôt que d'échouer
		return Cart{}
	}
	return ct
}

// Save persiste le panier et notifie les abonnés
func Save(ctx context.Context, sessionID string, ct Cart) error {
	jsonData, err := json.Marshal(ct)
	if err != nil {
		return err
	}

	if err := database.Redis.Set(ctx, key(sessionID), jsonData, cartTTL).Err(); err != nil {
		return err
	}

	database.Redis.Publish(ctx, Channel(sessionID), "updated")
	return nil
}

// Clear remplace le panier par un panier vide
func Clear(ctx context.Context, sessionID string) error {
	if err := database.Redis.Del(ctx, key(sessionID)).Err(); err != nil {
		return err
	}

	database.Redis.Publish(ctx, Channel(sessionID), "cleared")
	return nil
}
