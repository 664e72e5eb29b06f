package generator

import (
	"strconv"
	"strings"
)

// Probabilities in word tables are given to one decimal place, so they
// scale to integer weights by a fixed factor of 10. Finer precision is
// truncated away, which existing table files rely on.
const wordWeightScale = 10

// WordGenerator samples whole-word symbols from a frequency table. Each
// table line holds `<index> <word> <word> <word> <decimalProbability>`;
// only the second and the fifth field are consumed, and the probability
// accepts either `.` or `,` as decimal separator.
type WordGenerator struct {
	*WeightedSampler
}

func NewWordGenerator(file string) (*WordGenerator, error) {
	sampler, err := newWeightedSamplerFromFile(file, parseWordRecord)
	if err != nil {
		return nil, err
	}
	return &WordGenerator{
		WeightedSampler: sampler,
	}, nil
}

func parseWordRecord(fields []string) (*Entry, error) {
	if len(fields) < 5 {
		return nil, NewErrorf("expect 5 fields, got %d", len(fields))
	}
	probability, err := strconv.ParseFloat(
		strings.Replace(fields[4], ",", ".", 1), 64)
	if err != nil {
		return nil, err
	}
	if probability < 0 {
		return nil, NewErrorf("negative probability: %g", probability)
	}
	return &Entry{
		Symbol: fields[1],
		Weight: int64(probability * wordWeightScale),
	}, nil
}
