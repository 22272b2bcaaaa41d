package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"atelier_back_end/internal/models"
)

func line(title, price string) models.CartLine {
	return models.CartLine{
		Title: title,
		Price: decimal.RequireFromString(price),
	}
}

func TestAddCreatesLineWithSnapshot(t *testing.T) {
	ct := Cart{}

	added := ct.Add("p1", models.CartLine{Title: "Chaussures", Price: decimal.RequireFromString("49.99"), Image: "products/1_shoe.png"}, 2)

	assert.Len(t, ct, 1)
	assert.Equal(t, "Chaussures", added.Title)
	assert.Equal(t, 2, added.Quantity)
	assert.Equal(t, "products/1_shoe.png", ct["p1"].Image)
	assert.True(t, added.Price.Equal(decimal.RequireFromString("49.99")))
}

func TestAddSameProductIncrementsQuantity(t *testing.T) {
	ct := Cart{}

	ct.Add("p1", line("Veste", "80"), 2)
	ct.Add("p1", line("Veste", "80"), 3)

	assert.Len(t, ct, 1, "un même produit ne crée qu'une seule ligne")
	assert.Equal(t, 5, ct.Quantity("p1"))
}

func TestAddKeepsOriginalSnapshotOnIncrement(t *testing.T) {
	ct := Cart{}

	ct.Add("p1", line("Veste", "80"), 1)
	// Le prix a changé au catalogue entre les deux ajouts : l'instantané
	// d'origine est conservé.
	ct.Add("p1", line("Veste", "95"), 1)

	assert.True(t, ct["p1"].Price.Equal(decimal.RequireFromString("80")))
}

func TestAddCoercesNonPositiveQuantityToOne(t *testing.T) {
	ct := Cart{}

	ct.Add("p1", line("Pull", "30"), 0)
	assert.Equal(t, 1, ct.Quantity("p1"))

	ct2 := Cart{}
	ct2.Add("p1", line("Pull", "30"), -4)
	assert.Equal(t, 1, ct2.Quantity("p1"))
}

func TestSetQuantityReplacesExactly(t *testing.T) {
	ct := Cart{}
	ct.Add("p1", line("Pull", "30"), 5)

	removed, ok := ct.SetQuantity("p1", 2)

	assert.True(t, ok)
	assert.False(t, removed)
	assert.Equal(t, 2, ct.Quantity("p1"))
}

func TestSetQuantityZeroOrNegativeRemovesLine(t *testing.T) {
	for _, qty := range []int{0, -5} {
		ct := Cart{}
		ct.Add("p1", line("Pull", "30"), 3)

		removed, ok := ct.SetQuantity("p1", qty)

		assert.True(t, ok)
		assert.True(t, removed)
		assert.Empty(t, ct)
	}
}

func TestSetQuantityUnknownLineDoesNotMutate(t *testing.T) {
	ct := Cart{}
	ct.Add("p1", line("Pull", "30"), 3)

	_, ok := ct.SetQuantity("inconnu", 7)

	assert.False(t, ok)
	assert.Equal(t, 3, ct.Quantity("p1"))
	assert.Len(t, ct, 1)
}

func TestRemoveUnknownLineLeavesCartUnchanged(t *testing.T) {
	ct := Cart{}
	ct.Add("p1", line("Pull", "30"), 3)

	assert.False(t, ct.Remove("inconnu"))
	assert.Len(t, ct, 1)
}

func TestTotalAndCountSumsLines(t *testing.T) {
	ct := Cart{}
	ct.Add("p1", line("Pull", "30.50"), 2)   // 61.00
	ct.Add("p2", line("Veste", "80"), 1)     // 80.00
	ct.Add("p3", line("Bonnet", "9.99"), 3)  // 29.97

	total, count := ct.TotalAndCount()

	assert.True(t, total.Equal(decimal.RequireFromString("170.97")), "total = %s", total)
	assert.Equal(t, 6, count)
}

func TestTotalAndCountExactToTheCent(t *testing.T) {
	// 0.10 × 3 vaut exactement 0.30 en arithmétique décimale
	ct := Cart{}
	ct.Add("p1", line("Autocollant", "0.10"), 3)

	total, count := ct.TotalAndCount()

	assert.True(t, total.Equal(decimal.RequireFromString("0.30")), "total = %s", total)
	assert.Equal(t, 3, count)
}

func TestEmptyCartTotalAndCount(t *testing.T) {
	total, count := Cart{}.TotalAndCount()

	assert.True(t, total.IsZero())
	assert.Zero(t, count)
}

func TestCartLifecycleScenario(t *testing.T) {
	ct := Cart{}

	ct.Add("A", line("Article A", "12"), 2)
	ct.Add("A", line("Article A", "12"), 3)
	assert.Len(t, ct, 1)
	assert.Equal(t, 5, ct.Quantity("A"))

	removed, ok := ct.SetQuantity("A", 1)
	assert.True(t, ok)
	assert.False(t, removed)
	assert.Equal(t, 1, ct.Quantity("A"))

	assert.True(t, ct.Remove("A"))
	assert.Empty(t, ct)
}

func TestParseQuantity(t *testing.T) {
	assert.Equal(t, 4, ParseQuantity("4", 1))
	assert.Equal(t, -2, ParseQuantity("-2", 1), "le signe est interprété par l'opération appelante")
	assert.Equal(t, 1, ParseQuantity("", 1))
	assert.Equal(t, 1, ParseQuantity("abc", 1))
	assert.Equal(t, 7, ParseQuantity("3,5", 7))
}
