package catalog

import (
	"testing"

	"github.com/actuallystonmai/storefront-assistant/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RejectsDuplicateIDs(t *testing.T) {
	_, err := New([]domain.Product{{ID: 1}, {ID: 1}})
	assert.ErrorIs(t, err, domain.ErrDuplicateProduct)
}

func TestDefault(t *testing.T) {
	c := Default()
	require.Equal(t, 6, c.Len())

	p, ok := c.ByID(3)
	require.True(t, ok)
	assert.Equal(t, "Premium Coffee Beans", p.Name)

	_, ok = c.ByID(99)
	assert.False(t, ok)

	assert.Equal(t, []string{"electronics", "food", "furniture"}, c.Categories())
}

func TestProducts_ReturnsCopy(t *testing.T) {
	c := Default()
	products := c.Products()
	products[0].Name = "changed"

	p, _ := c.ByID(1)
	assert.Equal(t, "Wireless Bluetooth Headphones", p.Name)
}

func TestNew_CopiesTags(t *testing.T) {
	tags := []string{"a", "b"}
	c, err := New([]domain.Product{{ID: 1, Tags: tags}})
	require.NoError(t, err)

	tags[0] = "mutated"
	p, _ := c.ByID(1)
	assert.Equal(t, []string{"a", "b"}, p.Tags)
}

func TestParse(t *testing.T) {
	data := []byte(`
products:
  - id: 10
    name: Desk Lamp
    price: 19.5
    category: furniture
    tags: [lighting, office]
  - id: 11
    name: Notebook
    price: 3
    category: stationery
`)
	c, err := Parse(data)
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())

	p, ok := c.ByID(10)
	require.True(t, ok)
	assert.Equal(t, "Desk Lamp", p.Name)
	assert.Equal(t, []string{"lighting", "office"}, p.Tags)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("products:\n  - id: 1\n    price: -2\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("products: [\n"))
	assert.Error(t, err)
}
