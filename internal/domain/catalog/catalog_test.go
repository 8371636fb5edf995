package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"iq-home/quickquote/internal/domain/catalog"
)

func TestDefaultCatalog(t *testing.T) {
	entries, err := catalog.Default().Entries(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 13)
	require.Equal(t, "Revypeel Low", entries[0].Name)
	require.Equal(t, "72", entries[0].UnitPrice.String())
	require.Equal(t, "0.7", entries[0].CostRate.String())

	seen := map[string]bool{}
	for _, e := range entries {
		require.False(t, seen[e.Name], "duplicate name %q", e.Name)
		seen[e.Name] = true
	}
}

func TestStaticReturnsCopies(t *testing.T) {
	src := []catalog.Entry{{Name: "A"}, {Name: "B"}}
	s := catalog.NewStatic(src)
	src[0].Name = "changed"

	got, err := s.Entries(context.Background())
	require.NoError(t, err)
	require.Equal(t, "A", got[0].Name)

	got[1].Name = "mutated"
	again, _ := s.Entries(context.Background())
	require.Equal(t, "B", again[1].Name)
}

func TestFind(t *testing.T) {
	entries, _ := catalog.Default().Entries(context.Background())

	e, ok := catalog.Find(entries, " Cryopen XP ")
	require.True(t, ok)
	require.Equal(t, "2400", e.UnitPrice.String())

	_, ok = catalog.Find(entries, "cryopen xp")
	require.False(t, ok)
	_, ok = catalog.Find(entries, "")
	require.False(t, ok)
}
