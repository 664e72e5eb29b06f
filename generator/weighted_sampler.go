package generator

import (
	"bufio"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"
)

var (
	// SourceNotFound is returned when the table source file does not
	// exist. It is checked before any parsing is attempted.
	SourceNotFound = errors.New("table source file not found")
	// MalformedRecord is returned when a table line cannot be parsed.
	// Any one bad line aborts the whole load; there is no partial table.
	MalformedRecord = errors.New("malformed table record")
	// ZeroTotalWeight is returned when the weights of a table sum to
	// zero, which would make the draw range degenerate.
	ZeroTotalWeight = errors.New("table total weight is zero")
	// SymbolNotFound is returned by WeightOf for a symbol absent from
	// the table.
	SymbolNotFound = errors.New("symbol not found in table")
)

// Entry is one (symbol, weight) pair of a sampling table. Symbols are
// opaque byte sequences, never normalized, so non-ASCII content passes
// through untouched.
type Entry struct {
	Symbol string
	Weight int64
}

// recordFunc parses the whitespace-split fields of one table line into
// an Entry.
type recordFunc func(fields []string) (*Entry, error)

// WeightedSampler draws symbols from an immutable table proportional to
// their recorded weight. The table order defines the cumulative-weight
// partition used for sampling and is preserved exactly as read. The
// sampler owns its random source; it offers no internal synchronization.
type WeightedSampler struct {
	entries     []*Entry
	totalWeight int64
	random      *rand.Rand
	lastValue   string
}

func NewWeightedSampler(entries []*Entry) (*WeightedSampler, error) {
	var total int64
	for _, e := range entries {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: negative weight %d for %q",
				MalformedRecord, e.Weight, e.Symbol)
		}
		total += e.Weight
	}
	if total == 0 {
		return nil, fmt.Errorf("%w: %d entries", ZeroTotalWeight, len(entries))
	}
	return &WeightedSampler{
		entries:     entries,
		totalWeight: total,
		random:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

func newWeightedSamplerFromFile(file string, parse recordFunc) (*WeightedSampler, error) {
	entries, err := loadTable(file, parse)
	if err != nil {
		return nil, err
	}
	return NewWeightedSampler(entries)
}

func loadTable(file string, parse recordFunc) ([]*Entry, error) {
	if _, err := os.Stat(file); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", SourceNotFound, file)
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	entries := make([]*Entry, 0)
	scanner := bufio.NewScanner(f)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}
		entry, err := parse(strings.Fields(line))
		if err != nil {
			return nil, fmt.Errorf("%w: %s line %d: %s",
				MalformedRecord, file, lineNumber, err)
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// Reseed replaces the sampler's random source with one seeded by the
// given value. Draw sequences carry no reproducibility guarantee unless
// the caller reseeds explicitly.
func (self *WeightedSampler) Reseed(seed int64) {
	self.random = rand.New(rand.NewSource(seed))
}

// NextString draws one symbol. Over many independent calls the
// empirical frequency of each symbol converges to weight/totalWeight:
// a uniform target in [0, totalWeight) falls into exactly one entry's
// half-open weight interval under the cumulative walk. Linear in table
// size per draw, which is fine at the table sizes in use.
func (self *WeightedSampler) NextString() string {
	target := self.random.Int63n(self.totalWeight)
	var cumulative int64
	for _, e := range self.entries {
		cumulative += e.Weight
		if target < cumulative {
			self.lastValue = e.Symbol
			return e.Symbol
		}
	}
	// unreachable: the intervals partition [0, totalWeight) exactly.
	self.lastValue = ""
	return ""
}

func (self *WeightedSampler) LastString() string {
	if len(self.lastValue) == 0 {
		self.lastValue = self.NextString()
	}
	return self.lastValue
}

// WeightOf returns the normalized weight of the given symbol as a value
// in [0, 1]. On duplicate symbols the first entry in table order wins;
// the result is never an aggregate. Pure and deterministic.
func (self *WeightedSampler) WeightOf(symbol string) (float64, error) {
	for _, e := range self.entries {
		if e.Symbol == symbol {
			return float64(e.Weight) / float64(self.totalWeight), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", SymbolNotFound, symbol)
}

// Symbols returns the table's symbols in insertion order.
func (self *WeightedSampler) Symbols() []string {
	ret := make([]string, 0, len(self.entries))
	for _, e := range self.entries {
		ret = append(ret, e.Symbol)
	}
	return ret
}

func (self *WeightedSampler) Size() int {
	return len(self.entries)
}

func (self *WeightedSampler) TotalWeight() int64 {
	return self.totalWeight
}
