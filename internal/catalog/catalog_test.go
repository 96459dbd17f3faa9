package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harichselvamc/merakiartist/internal/domain"
)

func TestByID(t *testing.T) {
	c := New()

	p, ok := c.ByID("faceless-01")
	require.True(t, ok)
	assert.Equal(t, "Faceless Portrait", p.Name)
	assert.Equal(t, 3000, p.Price)
	assert.True(t, p.RequiresImage)
	assert.Equal(t, 2, p.MaxImages)

	_, ok = c.ByID("no-such-product")
	assert.False(t, ok)
}

func TestByCategory(t *testing.T) {
	c := New()

	hampers := c.ByCategory(domain.CategoryHampers)
	require.Len(t, hampers, 2)
	for _, p := range hampers {
		assert.Equal(t, domain.CategoryHampers, p.Category)
	}

	assert.Empty(t, c.ByCategory("no-such-category"))
}

func TestSizeLookup(t *testing.T) {
	c := New()
	p, ok := c.ByID("faceless-01")
	require.True(t, ok)

	s, ok := p.Size("medium")
	require.True(t, ok)
	assert.Equal(t, 800, s.PriceModifier)

	_, ok = p.Size("xxl")
	assert.False(t, ok)
}

func TestCatalogShape(t *testing.T) {
	c := New()

	assert.Len(t, c.All(), 9)
	assert.Len(t, c.Offers(), 3)
	assert.Len(t, c.Featured(), 9)

	for _, p := range c.All() {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Name)
		assert.Positive(t, p.Price)
		if p.MaxImages > 0 {
			assert.True(t, p.RequiresImage, "%s caps images without requiring them", p.ID)
		}
		for _, s := range p.Sizes {
			assert.GreaterOrEqual(t, s.PriceModifier, 0)
		}
	}
}
