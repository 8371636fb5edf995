package quote_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"iq-home/quickquote/internal/domain/catalog"
	"iq-home/quickquote/internal/domain/quote"
)

func TestDraftAdd(t *testing.T) {
	entries, err := catalog.Default().Entries(context.Background())
	require.NoError(t, err)

	var d quote.Draft
	require.NoError(t, d.AddByName(entries, "Revypeel Low", 2))
	require.NoError(t, d.AddByName(entries, "Post Peeling Krem", 1))
	require.NoError(t, d.AddByName(entries, "Revypeel Low", 1))

	items := d.Items()
	require.Len(t, items, 3)
	require.Equal(t, "Revypeel Low", items[0].Name)
	require.Equal(t, "Post Peeling Krem", items[1].Name)
	require.Equal(t, 1, items[2].Quantity)

	items[0].Quantity = 99
	require.Equal(t, 2, d.Items()[0].Quantity)
}

func TestDraftRejectsInvalid(t *testing.T) {
	entries, _ := catalog.Default().Entries(context.Background())

	var d quote.Draft
	require.NoError(t, d.AddByName(entries, "Cryopen XP", 1))

	for _, tc := range []struct {
		name string
		qty  int
	}{
		{"", 1},
		{"   ", 1},
		{"Unknown", 1},
		{"Cryopen XP", 0},
		{"Cryopen XP", -1},
	} {
		err := d.AddByName(entries, tc.name, tc.qty)
		var verr *quote.ValidationError
		require.True(t, errors.As(err, &verr), "name=%q qty=%d", tc.name, tc.qty)
		require.Equal(t, 1, verr.Index)
	}
	require.Equal(t, 1, d.Len())

	err := d.Add(catalog.Entry{Name: "x", UnitPrice: dec("-5")}, 1)
	require.Error(t, err)
	require.Equal(t, 1, d.Len())
}
