package handlers

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParsePrice(t *testing.T) {
	assert.True(t, parsePrice("19.99").Equal(decimal.RequireFromString("19.99")))
	assert.True(t, parsePrice(" 5 ").Equal(decimal.NewFromInt(5)))
	assert.True(t, parsePrice("").IsZero())
	assert.True(t, parsePrice("gratuit").IsZero())
	assert.True(t, parsePrice("-3.50").IsZero(), "un prix négatif retombe sur zéro")
}

func TestParseStock(t *testing.T) {
	assert.Equal(t, 12, parseStock("12"))
	assert.Equal(t, 0, parseStock(""))
	assert.Equal(t, 0, parseStock("beaucoup"))
	assert.Equal(t, 0, parseStock("-4"))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"S", "M", "L"}, splitList("S, M ,L"))
	assert.Equal(t, []string{"rouge"}, splitList("rouge,,  "))
	assert.Empty(t, splitList(""))
}
