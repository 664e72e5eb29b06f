package textgen

import (
	"os"

	chart "github.com/wcharczuk/go-chart"
)

// ChartPlotter renders an observed-vs-expected bar chart for a finished
// run: per table symbol, one bar for the frequency observed in the
// generated text next to one bar for the sampler's normalized weight.
type ChartPlotter struct {
	width  int
	height int
	title  string
}

func NewChartPlotter(props Properties, defaultTitle string) (*ChartPlotter, error) {
	width, err := props.GetInt64Default(PropertyChartWidth, PropertyChartWidthDefault)
	if err != nil {
		return nil, err
	}
	height, err := props.GetInt64Default(PropertyChartHeight, PropertyChartHeightDefault)
	if err != nil {
		return nil, err
	}
	return &ChartPlotter{
		width:  int(width),
		height: int(height),
		title:  props.GetDefault(PropertyChartTitle, defaultTitle),
	}, nil
}

func (self *ChartPlotter) Render(sampler Sampler, reporter *FrequencyReporter, file string) error {
	symbols := sampler.Symbols()
	bars := make([]chart.Value, 0, len(symbols)*2)
	var maxValue float64
	for _, symbol := range symbols {
		expected, err := sampler.WeightOf(symbol)
		if err != nil {
			return err
		}
		observed := reporter.FrequencyOf(symbol)
		if expected > maxValue {
			maxValue = expected
		}
		if observed > maxValue {
			maxValue = observed
		}
		bars = append(bars,
			chart.Value{
				Value: observed,
				Label: symbol,
				Style: chart.Style{
					Show:      true,
					FillColor: chart.ColorBlue,
				},
			},
			chart.Value{
				Value: expected,
				Style: chart.Style{
					Show:      true,
					FillColor: chart.ColorRed,
				},
			})
	}

	graph := chart.BarChart{
		Title:      self.title,
		TitleStyle: chart.StyleShow(),
		Width:      self.width,
		Height:     self.height,
		BarWidth:   20,
		BarSpacing: 10,
		XAxis:      chart.StyleShow(),
		YAxis: chart.YAxis{
			Name:      "frequency",
			NameStyle: chart.StyleShow(),
			Style:     chart.StyleShow(),
			Range: &chart.ContinuousRange{
				Min: 0,
				Max: maxValue * 1.2,
			},
		},
		Bars: bars,
	}

	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer f.Close()
	return graph.Render(chart.PNG, f)
}
