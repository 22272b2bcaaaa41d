// Package cart implémente le panier : une table produit → ligne, portée par la
// session. Chaque opération est totale — une quantité mal formée retombe sur une
// valeur sûre, jamais sur une erreur visible de l'utilisateur.
package cart

import (
	"strconv"

	"github.com/shopspring/decimal"

	"atelier_back_end/internal/models"
)

// Cart associe un identifiant produit à sa ligne panier.
type Cart map[string]models.CartLine

// Add ajoute qty exemplaires du produit. Si la ligne existe déjà, la quantité
// est incrémentée (pas remplacée) et l'instantané d'origine est conservé.
// Une quantité non positive est ramenée à 1.
func (ct Cart) Add(productID string, snapshot models.CartLine, qty int) models.CartLine {
	if qty < 1 {
		qty = 1
	}

	if line, ok := ct[productID]; ok {
		line.Quantity += qty
		ct[productID] = line
		return line
	}

	snapshot.Quantity = qty
	ct[productID] = snapshot
	return snapshot
}

// SetQuantity fixe la quantité exacte d'une ligne existante.
// qty ≤ 0 supprime la ligne (équivalent à Remove).
// Retourne ok=false si la ligne n'existe pas (aucune mutation).
func (ct Cart) SetQuantity(productID string, qty int) (removed bool, ok bool) {
	line, ok := ct[productID]
	if !ok {
		return false, false
	}

	if qty <= 0 {
		delete(ct, productID)
		return true, true
	}

	line.Quantity = qty
	ct[productID] = line
	return false, true
}

// Remove supprime la ligne si elle existe
func (ct Cart) Remove(productID string) bool {
	if _, ok := ct[productID]; !ok {
		return false
	}
	delete(ct, productID)
	return true
}

// Quantity retourne la quantité de la ligne, 0 si absente
func (ct Cart) Quantity(productID string) int {
	return ct[productID].Quantity
}

// TotalAndCount retourne (somme des prix × quantités, somme des quantités).
// L'arithmétique décimale garantit l'exactitude au centime près.
func (ct Cart) TotalAndCount() (decimal.Decimal, int) {
	total := decimal.Zero
	count := 0
	for _, line := range ct {
		total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		count += line.Quantity
	}
	return total, count
}

// ParseQuantity interprète un champ de formulaire `quantity`.
// Toute valeur illisible retombe sur fallback, jamais sur une erreur.
func ParseQuantity(raw string, fallback int) int {
	qty, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return qty
}
