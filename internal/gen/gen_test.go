package gen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestItemDescriptions(t *testing.T) {
	items := ItemDescriptions(3)
	require.Len(t, items, 3)
	for _, it := range items {
		require.NotEmpty(t, strings.TrimSpace(it))
	}
	require.Empty(t, ItemDescriptions(0))
}
