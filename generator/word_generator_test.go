package generator

import (
	"errors"
	"testing"

	"github.com/hhkbp2/testify/require"
)

func TestWordGeneratorLoad(t *testing.T) {
	g, err := NewWordGenerator("word_generator.data")
	require.Nil(t, err)
	require.Equal(t, 3, g.Size())
	require.Equal(t, int64(10), g.TotalWeight())
	// both `,` and `.` decimal separators appear in the data file
	w, err := g.WeightOf("€блоко")
	require.Nil(t, err)
	require.Equal(t, 0.5, w)
	w, err = g.WeightOf("банан")
	require.Nil(t, err)
	require.Equal(t, 0.3, w)
	w, err = g.WeightOf("апельсин")
	require.Nil(t, err)
	require.Equal(t, 0.2, w)
}

func TestWordGeneratorSourceNotFound(t *testing.T) {
	_, err := NewWordGenerator("no_such_table.data")
	require.NotNil(t, err)
	require.True(t, errors.Is(err, SourceNotFound))
}

func TestWordGeneratorSymbolNotFound(t *testing.T) {
	g, err := NewWordGenerator("word_generator.data")
	require.Nil(t, err)
	_, err = g.WeightOf("груша")
	require.NotNil(t, err)
	require.True(t, errors.Is(err, SymbolNotFound))
}

func TestWordGeneratorDraw(t *testing.T) {
	g, err := NewWordGenerator("word_generator.data")
	require.Nil(t, err)
	g.Reseed(3)
	set := make(map[string]bool)
	for _, symbol := range g.Symbols() {
		set[symbol] = true
	}
	for i := 0; i < 100; i++ {
		require.True(t, set[g.NextString()])
	}
}
