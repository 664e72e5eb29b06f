package textgen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hhkbp2/testify/require"
)

func TestParsePercentileValues(t *testing.T) {
	values := parsePercentileValues("95,99", PropertyPercentilesDefault)
	require.Equal(t, []int64{95, 99}, values)
	// invalid input falls back to the default
	values = parsePercentileValues("oops", PropertyPercentilesDefault)
	require.Equal(t, []int64{95, 99}, values)
}

func TestOrdinal(t *testing.T) {
	require.Equal(t, "1st", ordinal(1))
	require.Equal(t, "2nd", ordinal(2))
	require.Equal(t, "3rd", ordinal(3))
	require.Equal(t, "11th", ordinal(11))
	require.Equal(t, "90th", ordinal(90))
	require.Equal(t, "99th", ordinal(99))
}

func TestHdrHistogramMeasurement(t *testing.T) {
	props := NewProperties()
	m, err := NewOneMeasurementHdrHistogram(OperationDraw, props)
	require.Nil(t, err)
	for i := int64(1); i <= 100; i++ {
		m.Measure(i)
	}
	summary := m.GetSummary()
	require.True(t, strings.Contains(summary, "Count=100"))
	require.Equal(t, OperationDraw, m.GetName())
}

func TestTextMeasurementExporter(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "measurements.txt")
	f, err := os.Create(filename)
	require.Nil(t, err)
	exporter, err := NewMeasurementExporter("TextMeasurementExporter", f)
	require.Nil(t, err)
	err = exporter.Write(OperationDraw, "Operations", int64(42))
	require.Nil(t, err)
	err = exporter.Close()
	require.Nil(t, err)
	content, err := os.ReadFile(filename)
	require.Nil(t, err)
	require.Equal(t, "[DRAW], Operations, 42\n", string(content))
}

func TestUnsupportedMeasurementExporter(t *testing.T) {
	_, err := NewMeasurementExporter("CSVMeasurementExporter", os.Stdout)
	require.NotNil(t, err)
}
