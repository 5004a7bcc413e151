package validate_test

import (
	"strings"
	"testing"
	"time"

	"demo/storefront/internal/validate"

	"github.com/stretchr/testify/require"
)

func TestIdentifier(t *testing.T) {
	parts, err := validate.Identifier("storefront.order")
	require.NoError(t, err)
	require.Equal(t, []string{"storefront", "order"}, parts)

	parts, err = validate.Identifier("order_date")
	require.NoError(t, err)
	require.Equal(t, []string{"order_date"}, parts)
}

func TestIdentifier_Rejects(t *testing.T) {
	for _, name := range []string{
		"",
		"a.b.c",
		"order; DROP TABLE order",
		"order'",
		"1order",
		"storefront.",
		strings.Repeat("x", 65),
	} {
		_, err := validate.Identifier(name)
		require.ErrorIs(t, err, validate.ErrInvalidIdentifier, name)
	}
}

func TestParseOrderDate(t *testing.T) {
	got, err := validate.ParseOrderDate("2025-01-28 01:01:01")
	require.NoError(t, err)
	require.Equal(t, time.Date(2025, 1, 28, 1, 1, 1, 0, time.UTC), got)

	_, err = validate.ParseOrderDate("28/01/2025")
	require.Error(t, err)
}

func TestValidateInsert_Valid(t *testing.T) {
	d := time.Date(2025, 1, 28, 1, 1, 1, 0, time.UTC)
	require.NoError(t, validate.ValidateInsert(d, []string{"description1", "description2"}))
	require.NoError(t, validate.ValidateInsert(d, nil))
}

func TestValidateInsert_InvalidEmpty(t *testing.T) {
	err := validate.ValidateInsert(time.Time{}, []string{" ", strings.Repeat("a", 256)})
	require.Error(t, err)
	require.Contains(t, err.Error(), "order_date: required")
	require.Contains(t, err.Error(), "items[0].item_description: required")
	require.Contains(t, err.Error(), "items[1].item_description: at most 255 characters")
}
