package models

import "github.com/shopspring/decimal"

// CartLine est l'instantané d'un produit au moment de l'ajout au panier :
// le titre et le prix ne sont pas relus depuis le catalogue ensuite.
type CartLine struct {
	Title    string          `json:"title"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Image    string          `json:"image,omitempty"`
}
