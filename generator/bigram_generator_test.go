package generator

import (
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/hhkbp2/testify/require"
)

func TestBigramGeneratorLoad(t *testing.T) {
	filename := "bigram_generator.data"
	g, err := NewBigramGenerator(filename)
	require.Nil(t, err)
	require.Equal(t, 4, g.Size())
	require.Equal(t, int64(10), g.TotalWeight())
	w, err := g.WeightOf("аа")
	require.Nil(t, err)
	require.Equal(t, 0.1, w)
	w, err = g.WeightOf("аг")
	require.Nil(t, err)
	require.Equal(t, 0.4, w)
}

func TestBigramGeneratorSourceNotFound(t *testing.T) {
	_, err := NewBigramGenerator("no_such_table.data")
	require.NotNil(t, err)
	require.True(t, errors.Is(err, SourceNotFound))
}

func TestBigramGeneratorMalformedRecord(t *testing.T) {
	_, err := NewBigramGenerator("bigram_generator_malformed.data")
	require.NotNil(t, err)
	require.True(t, errors.Is(err, MalformedRecord))
}

func TestBigramGeneratorTextLength(t *testing.T) {
	g, err := NewBigramGenerator("bigram_generator.data")
	require.Nil(t, err)
	g.Reseed(7)
	var text string
	for i := 0; i < 1000; i++ {
		text += g.NextString()
	}
	require.Equal(t, 2000, utf8.RuneCountInString(text))
}

func TestBigramGeneratorIdempotentLoad(t *testing.T) {
	filename := "bigram_generator.data"
	g1, err := NewBigramGenerator(filename)
	require.Nil(t, err)
	g2, err := NewBigramGenerator(filename)
	require.Nil(t, err)
	require.Equal(t, g1.Symbols(), g2.Symbols())
	for _, symbol := range g1.Symbols() {
		w1, err := g1.WeightOf(symbol)
		require.Nil(t, err)
		w2, err := g2.WeightOf(symbol)
		require.Nil(t, err)
		require.Equal(t, w1, w2)
	}
}
