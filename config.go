package textgen

const (
	// The path of the frequency table file to load. Each command has its
	// own default.
	PropertyTableFile               = "table"
	PropertyTableFileBigramsDefault = "bigrams.txt"
	PropertyTableFileWordsDefault   = "words.txt"

	// The number of symbols to draw in one run.
	PropertySymbolCount        = "symbolcount"
	PropertySymbolCountDefault = "1000"

	// The path of the generated text output file.
	PropertyOutputFile        = "outputfile"
	PropertyOutputFileDefault = "generated.txt"

	// The path of the rendered observed-vs-expected chart.
	// An empty value disables chart rendering.
	PropertyChartFile        = "chartfile"
	PropertyChartFileDefault = ""

	// Chart dimensions in pixels.
	PropertyChartWidth         = "chart.width"
	PropertyChartWidthDefault  = "1024"
	PropertyChartHeight        = "chart.height"
	PropertyChartHeightDefault = "512"
	// The chart title. Defaults to the command name.
	PropertyChartTitle = "chart.title"

	// The seed for the sampler's random source. Empty means seeding
	// from the clock; draw sequences are then not reproducible.
	PropertySeed        = "seed"
	PropertySeedDefault = ""

	// The log level: one of quiet, error, warn, info, debug, verbose.
	PropertyLogLevel        = "loglevel"
	PropertyLogLevelDefault = "info"

	// measurement
	PropertyMeasurementType        = "measurementtype"
	PropertyMeasurementTypeDefault = "hdrhistogram"
	// The exporter used to write the run summary.
	PropertyExporter        = "exporter"
	PropertyExporterDefault = "TextMeasurementExporter"
	// If set to the path of a file, this file will be written instead
	// of stdout.
	PropertyExportFile = "exportfile"
	// What percentile values to output for draw latency.
	PropertyPercentiles        = "hdrhistogram.percentiles"
	PropertyPercentilesDefault = "95,99"
	// Upper bound and precision of the latency histogram.
	PropertyHdrHistogramMax        = "hdrhistogram.max"
	PropertyHdrHistogramMaxDefault = "1000000"
	PropertyHdrHistogramSig        = "hdrhistogram.sig"
	PropertyHdrHistogramSigDefault = "3"
)
