package generator

import (
	"strconv"
)

// BigramGenerator samples two-character symbols from a frequency table.
// Each table line holds `<index> <bigram> <integerWeight>`; only the
// bigram and the weight are consumed.
type BigramGenerator struct {
	*WeightedSampler
}

func NewBigramGenerator(file string) (*BigramGenerator, error) {
	sampler, err := newWeightedSamplerFromFile(file, parseBigramRecord)
	if err != nil {
		return nil, err
	}
	return &BigramGenerator{
		WeightedSampler: sampler,
	}, nil
}

func parseBigramRecord(fields []string) (*Entry, error) {
	if len(fields) < 3 {
		return nil, NewErrorf("expect 3 fields, got %d", len(fields))
	}
	weight, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return nil, err
	}
	if weight < 0 {
		return nil, NewErrorf("negative weight: %d", weight)
	}
	return &Entry{
		Symbol: fields[1],
		Weight: weight,
	}, nil
}
