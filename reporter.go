package textgen

import (
	"strings"
)

// FrequencyReporter consumes generated text and tallies the observed
// frequency of every symbol in it. Symbols are remembered in first-seen
// order so reports line up with the generated sequence.
type FrequencyReporter struct {
	counts map[string]int64
	order  []string
	total  int64
}

func NewFrequencyReporter() *FrequencyReporter {
	return &FrequencyReporter{
		counts: make(map[string]int64),
		order:  make([]string, 0),
	}
}

// AddSymbol tallies one observed symbol.
func (self *FrequencyReporter) AddSymbol(symbol string) {
	if _, ok := self.counts[symbol]; !ok {
		self.order = append(self.order, symbol)
	}
	self.counts[symbol]++
	self.total++
}

// ConsumeBigrams tallies a text of concatenated two-character symbols,
// splitting on rune pairs. A trailing odd rune is ignored.
func (self *FrequencyReporter) ConsumeBigrams(text string) {
	runes := []rune(text)
	for i := 0; i+1 < len(runes); i += 2 {
		self.AddSymbol(string(runes[i : i+2]))
	}
}

// ConsumeWords tallies a text of whitespace-separated word symbols.
func (self *FrequencyReporter) ConsumeWords(text string) {
	for _, word := range strings.Fields(text) {
		self.AddSymbol(word)
	}
}

// FrequencyOf returns the observed frequency of the given symbol in
// [0, 1]. A symbol never seen observes frequency 0.
func (self *FrequencyReporter) FrequencyOf(symbol string) float64 {
	if self.total == 0 {
		return 0
	}
	return float64(self.counts[symbol]) / float64(self.total)
}

func (self *FrequencyReporter) CountOf(symbol string) int64 {
	return self.counts[symbol]
}

// Symbols returns the observed symbols in first-seen order.
func (self *FrequencyReporter) Symbols() []string {
	return self.order
}

func (self *FrequencyReporter) Total() int64 {
	return self.total
}
