package textgen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hhkbp2/testify/require"
	g "github.com/hhkbp2/textgen/generator"
)

func TestChartPlotterRender(t *testing.T) {
	sampler, err := g.NewBigramGenerator(
		filepath.Join("generator", "bigram_generator.data"))
	require.Nil(t, err)
	sampler.Reseed(11)
	reporter := NewFrequencyReporter()
	for i := 0; i < 200; i++ {
		reporter.AddSymbol(sampler.NextString())
	}

	props := NewProperties()
	plotter, err := NewChartPlotter(props, "bigrams")
	require.Nil(t, err)
	chartFile := filepath.Join(t.TempDir(), "chart.png")
	err = plotter.Render(sampler, reporter, chartFile)
	require.Nil(t, err)

	info, err := os.Stat(chartFile)
	require.Nil(t, err)
	require.True(t, info.Size() > 0)
}

func TestChartPlotterProperties(t *testing.T) {
	props := NewProperties()
	props.Add(PropertyChartWidth, "640")
	props.Add(PropertyChartHeight, "480")
	props.Add(PropertyChartTitle, "distribution")
	plotter, err := NewChartPlotter(props, "bigrams")
	require.Nil(t, err)
	require.Equal(t, 640, plotter.width)
	require.Equal(t, 480, plotter.height)
	require.Equal(t, "distribution", plotter.title)

	props.Add(PropertyChartWidth, "x")
	_, err = NewChartPlotter(props, "bigrams")
	require.NotNil(t, err)
}
