package listing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iliyamo/property-management/internal/snapshot"
)

func TestFilter(t *testing.T) {
	items := []snapshot.Property{
		{ID: 1, Name: "Oakwood Apartments", Address: "12 Oak St, Springfield", Type: "apartment"},
		{ID: 2, Name: "Maple House", Address: "9 Maple Ave", Type: "house"},
		{ID: 3, Name: "Downtown Lofts", Address: "1 Main St", Type: "apartment"},
		{ID: 4, Name: "Royal Oaks Villas", Address: "4 Crown Blvd", Type: "apartment"},
	}

	t.Run("empty query returns everything in order", func(t *testing.T) {
		out := Filter(items, "")
		require.Len(t, out, 4)
		require.Equal(t, uint64(1), out[0].ID)
		require.Equal(t, uint64(4), out[3].ID)
	})

	t.Run("whitespace query matches everything", func(t *testing.T) {
		require.Len(t, Filter(items, "   "), 4)
	})

	t.Run("case-insensitive substring", func(t *testing.T) {
		// item 1 matches in both name and address but appears once
		out := Filter(items, "OAK")
		require.Len(t, out, 2)
		require.Equal(t, uint64(1), out[0].ID)
		require.Equal(t, uint64(4), out[1].ID)
	})

	t.Run("matches any searchable field", func(t *testing.T) {
		out := Filter(items, "house")
		require.Len(t, out, 1)
		require.Equal(t, uint64(2), out[0].ID)
	})

	t.Run("no match is an empty slice", func(t *testing.T) {
		require.Empty(t, Filter(items, "zzz"))
	})

	t.Run("input is never mutated", func(t *testing.T) {
		out := Filter(items, "")
		out[0].Name = "changed"
		require.Equal(t, "Oakwood Apartments", items[0].Name)
	})
}
