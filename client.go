package textgen

import (
	"os"
	"strconv"
	"strings"
	"time"

	strftime "github.com/hhkbp2/go-strftime"
	g "github.com/hhkbp2/textgen/generator"
)

const (
	OperationDraw = "DRAW"
)

type Client interface {
	Main()
}

// Sampler is the surface the generation loop and the plotter consume:
// repeated draws plus the normalized weight lookup used for validation.
// Both table-backed generators satisfy it.
type Sampler interface {
	NextString() string
	WeightOf(symbol string) (float64, error)
	Symbols() []string
}

// GeneratorClient runs one full generation pass: load the table, draw
// the configured number of symbols, write the synthesized text, tally
// observed frequencies and optionally render the comparison chart.
// Everything it needs comes in through its Arguments; it holds no
// process-wide state.
type GeneratorClient struct {
	args *Arguments
}

func NewGeneratorClient(args *Arguments) *GeneratorClient {
	return &GeneratorClient{
		args: args,
	}
}

func (self *GeneratorClient) Main() {
	props := self.args.Properties
	sampler, err := makeSampler(self.args.Command, props)
	if err != nil {
		ExitOnError("fail to load frequency table, error: %s", err)
	}
	count, err := props.GetInt64Default(PropertySymbolCount, PropertySymbolCountDefault)
	if err != nil {
		ExitOnError(err.Error())
	}
	if count <= 0 {
		ExitOnError("invalid symbol count: %d", count)
	}

	measurements := NewDefaultMeasurements(props)
	symbols := drawSymbols(sampler, count, measurements)
	text := assembleText(self.args.Command, symbols)

	outputFile := props.GetDefault(PropertyOutputFile, PropertyOutputFileDefault)
	if err = os.WriteFile(outputFile, []byte(text), 0644); err != nil {
		ExitOnError("fail to write generated text, error: %s", err)
	}
	Infof("%s wrote %d symbols to %s",
		strftime.Format("%Y-%m-%d %H:%M:%S", time.Now()), count, outputFile)

	reporter := NewFrequencyReporter()
	switch self.args.Command {
	case "bigrams":
		reporter.ConsumeBigrams(text)
	case "words":
		reporter.ConsumeWords(text)
	}
	for _, symbol := range sampler.Symbols() {
		expected, err := sampler.WeightOf(symbol)
		if err != nil {
			ExitOnError("fail to look up symbol weight, error: %s", err)
		}
		Debugf("symbol %q observed=%g expected=%g",
			symbol, reporter.FrequencyOf(symbol), expected)
	}

	chartFile := props.GetDefault(PropertyChartFile, PropertyChartFileDefault)
	if len(chartFile) > 0 {
		plotter, err := NewChartPlotter(props, self.args.Command)
		if err != nil {
			ExitOnError(err.Error())
		}
		if err = plotter.Render(sampler, reporter, chartFile); err != nil {
			ExitOnError("fail to render chart, error: %s", err)
		}
		Infof("%s wrote chart to %s",
			strftime.Format("%Y-%m-%d %H:%M:%S", time.Now()), chartFile)
	}

	if err = exportMeasurements(measurements, props); err != nil {
		ExitOnError("fail to export measurements, error: %s", err)
	}
}

func makeSampler(command string, props Properties) (Sampler, error) {
	tableFile := props.Get(PropertyTableFile)
	var sampler Sampler
	var reseed func(int64)
	switch command {
	case "bigrams":
		bigrams, err := g.NewBigramGenerator(tableFile)
		if err != nil {
			return nil, err
		}
		sampler, reseed = bigrams, bigrams.Reseed
	case "words":
		words, err := g.NewWordGenerator(tableFile)
		if err != nil {
			return nil, err
		}
		sampler, reseed = words, words.Reseed
	default:
		return nil, g.NewErrorf("unsupported command: %s", command)
	}
	if seedStr := props.GetDefault(PropertySeed, PropertySeedDefault); len(seedStr) > 0 {
		seed, err := strconv.ParseInt(seedStr, 10, 64)
		if err != nil {
			return nil, g.NewErrorf("invalid value for property %s: %s", PropertySeed, seedStr)
		}
		reseed(seed)
	}
	return sampler, nil
}

func drawSymbols(sampler Sampler, count int64, measurements Measurements) []string {
	symbols := make([]string, 0, count)
	for i := int64(0); i < count; i++ {
		start := time.Now()
		symbol := sampler.NextString()
		latency := time.Since(start).Microseconds()
		measurements.Measure(OperationDraw, latency)
		symbols = append(symbols, symbol)
	}
	return symbols
}

// Bigram symbols concatenate verbatim; word symbols join with single
// spaces so the reporter can split them back apart.
func assembleText(command string, symbols []string) string {
	switch command {
	case "words":
		return strings.Join(symbols, " ")
	default:
		return strings.Join(symbols, "")
	}
}

func exportMeasurements(measurements Measurements, props Properties) error {
	out := OutputDest
	if exportFile := props.Get(PropertyExportFile); len(exportFile) > 0 {
		f, err := os.Create(exportFile)
		if err != nil {
			return err
		}
		out = f
	}
	exporterName := props.GetDefault(PropertyExporter, PropertyExporterDefault)
	exporter, err := NewMeasurementExporter(exporterName, out)
	if err != nil {
		return err
	}
	if err = measurements.ExportMeasurements(exporter); err != nil {
		exporter.Close()
		return err
	}
	return exporter.Close()
}
