package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMenuKeepsOrder(t *testing.T) {
	m, err := NewMenu([]MenuItem{
		{Name: "Steak", Type: DietNonVeg},
		{Name: "Salad", Type: DietVeg},
		{Name: "Soup", Type: DietAll},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, m.Len())
	assert.Equal(t, []string{"Steak", "Salad", "Soup"}, m.Names())

	item, ok := m.Get("Salad")
	require.True(t, ok)
	assert.Equal(t, DietVeg, item.Type)

	_, ok = m.Get("salad")
	assert.False(t, ok, "Get is an exact lookup")
}

func TestNewMenuRejectsDuplicates(t *testing.T) {
	_, err := NewMenu([]MenuItem{{Name: "Soup"}, {Name: "Soup"}})
	assert.Error(t, err)

	_, err = NewMenu([]MenuItem{{Name: ""}})
	assert.Error(t, err)
}

func TestMenuItemsReturnsCopy(t *testing.T) {
	m, err := NewMenu([]MenuItem{{Name: "Soup", Type: DietAll}})
	require.NoError(t, err)

	items := m.Items()
	items[0].Name = "Changed"
	assert.Equal(t, []string{"Soup"}, m.Names())
}

func TestNilMenu(t *testing.T) {
	var m *Menu
	assert.Equal(t, 0, m.Len())
	assert.Empty(t, m.Names())
	_, ok := m.Get("Soup")
	assert.False(t, ok)
}

func TestPreference(t *testing.T) {
	assert.False(t, PreferenceUnset.IsSet())
	assert.True(t, PreferenceAll.IsSet())
	assert.Equal(t, "unset", PreferenceUnset.String())
	assert.Equal(t, "non-veg", PreferenceNonVeg.String())
}
