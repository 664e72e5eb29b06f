package textgen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/hhkbp2/testify/require"
)

func bigramTableFile() string {
	return filepath.Join("generator", "bigram_generator.data")
}

func wordTableFile() string {
	return filepath.Join("generator", "word_generator.data")
}

func TestMakeSampler(t *testing.T) {
	props := NewProperties()
	props.Add(PropertyTableFile, bigramTableFile())
	props.Add(PropertySeed, "5")
	sampler, err := makeSampler("bigrams", props)
	require.Nil(t, err)
	require.Equal(t, []string{"аа", "аб", "ав", "аг"}, sampler.Symbols())

	props.Add(PropertyTableFile, wordTableFile())
	sampler, err = makeSampler("words", props)
	require.Nil(t, err)
	w, err := sampler.WeightOf("банан")
	require.Nil(t, err)
	require.Equal(t, 0.3, w)

	_, err = makeSampler("sentences", props)
	require.NotNil(t, err)

	props.Add(PropertySeed, "x")
	_, err = makeSampler("words", props)
	require.NotNil(t, err)
}

func TestDrawSymbols(t *testing.T) {
	props := NewProperties()
	props.Add(PropertyTableFile, bigramTableFile())
	sampler, err := makeSampler("bigrams", props)
	require.Nil(t, err)
	measurements := NewDefaultMeasurements(props)
	symbols := drawSymbols(sampler, 100, measurements)
	require.Equal(t, 100, len(symbols))
	require.True(t, strings.Contains(measurements.GetSummary(), "Count=100"))
}

func TestAssembleText(t *testing.T) {
	symbols := []string{"аа", "аб", "аа"}
	text := assembleText("bigrams", symbols)
	require.Equal(t, "ааабаа", text)
	require.Equal(t, 6, utf8.RuneCountInString(text))
	text = assembleText("words", []string{"банан", "€блоко"})
	require.Equal(t, "банан €блоко", text)
}

func TestExportMeasurementsToFile(t *testing.T) {
	props := NewProperties()
	props.Add(PropertyTableFile, bigramTableFile())
	sampler, err := makeSampler("bigrams", props)
	require.Nil(t, err)
	measurements := NewDefaultMeasurements(props)
	drawSymbols(sampler, 10, measurements)

	exportFile := filepath.Join(t.TempDir(), "export.txt")
	props.Add(PropertyExportFile, exportFile)
	err = exportMeasurements(measurements, props)
	require.Nil(t, err)
	content, err := os.ReadFile(exportFile)
	require.Nil(t, err)
	require.True(t, strings.Contains(string(content), "[DRAW], Operations, 10"))
}
