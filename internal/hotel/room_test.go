package hotel

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCatalog_ByCategory(t *testing.T) {
	c := DefaultCatalog()

	std := c.ByCategory("Standard")
	require.Len(t, std, 2)
	require.Equal(t, "R101", std[0].ID)
	require.Equal(t, "R102", std[1].ID)

	// case-insensitive
	require.Equal(t, std, c.ByCategory("sTaNdArD"))

	// empty filter matches everything, in insertion order
	all := c.ByCategory("")
	require.Len(t, all, 5)
	require.Equal(t, c.List(), all)

	require.Empty(t, c.ByCategory("Penthouse"))
}

func TestCatalog_ByID(t *testing.T) {
	c := DefaultCatalog()

	r, ok := c.ByID("R301")
	require.True(t, ok)
	require.Equal(t, "Suite", r.Category)
	require.Equal(t, Cents(650000), r.Price)

	_, ok = c.ByID("R999")
	require.False(t, ok)
}

func TestNewCatalog_Rejects(t *testing.T) {
	_, err := NewCatalog([]Room{{ID: "A", Category: "X", Price: 100}, {ID: "A", Category: "Y", Price: 200}})
	require.Error(t, err)

	_, err = NewCatalog([]Room{{ID: "A", Category: "X", Price: -1}})
	require.Error(t, err)

	_, err = NewCatalog([]Room{{Category: "X", Price: 100}})
	require.Error(t, err)
}

func TestParseCatalog(t *testing.T) {
	in := "R101,Standard,2000.00\n\nR201, Deluxe ,3500\n"
	c, err := ParseCatalog(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, c.List(), 2)

	r, ok := c.ByID("R201")
	require.True(t, ok)
	require.Equal(t, "Deluxe", r.Category)
	require.Equal(t, Cents(350000), r.Price)

	_, err = ParseCatalog(strings.NewReader("R101,Standard\n"))
	require.Error(t, err)

	_, err = ParseCatalog(strings.NewReader("R101,Standard,abc\n"))
	require.Error(t, err)
}
