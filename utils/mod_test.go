package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	require.Equal(t, 1, FindIndex([]int{4, 7, 7}, 7))
	require.Equal(t, -1, FindIndex([]string{"a"}, "b"))
	require.Equal(t, -1, FindIndex(nil, 0))
}
