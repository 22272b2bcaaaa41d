package credentials

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "a@x.com", NormalizeEmail("a@x.com"))
	assert.Equal(t, "a@x.com", NormalizeEmail("  A@X.COM "))
	assert.Equal(t, "jean.dupont@example.com", NormalizeEmail("Jean.Dupont@Example.Com"))
}
