package session

import (
	"fmt"
	"strings"

	"github.com/corpuslab/redfort/pkg/redfort/internalerr"
)

// PlotType selects which pipeline path the engine runs. The set is closed:
// each variant maps to exactly one sequence of analysis stages.
type PlotType int

const (
	PlotSpeechLength PlotType = iota
	PlotFrequentWords
	PlotImportantWords
	PlotSentimentWords
	PlotNetSentiment
	PlotWordTrend
)

var plotNames = map[PlotType]string{
	PlotSpeechLength:   "Speech Length",
	PlotFrequentWords:  "Most Frequent Words",
	PlotImportantWords: "Most Important Words",
	PlotSentimentWords: "+/- Sentiment Words",
	PlotNetSentiment:   "Net Sentiment",
	PlotWordTrend:      "Specific Word Trend",
}

// explanations are the fixed user-facing descriptions shown under each plot.
var explanations = map[PlotType]string{
	PlotSpeechLength:   "'Speech Length' is a simple count of all words in a speech over time.",
	PlotFrequentWords:  "'Most Frequent Words' plots the most frequent words among included speeches, after excluding a generic list of stopwords (a, the, etc). It can be faceted by variables like year, party, or prime minister.",
	PlotImportantWords: "'Most Important Words' sorts words according to TF-IDF, which is a statistic that attempts to measure the 'importance' of a word in a speech by adjusting the frequency of a word by how rarely it is otherwise used.",
	PlotSentimentWords: "'+/- Sentiment Words' uses an opinion lexicon to label words among included speeches as either positive or negative. It then plots the most frequent positive and/or negative words.",
	PlotNetSentiment:   "'Net Sentiment' plots the difference between the number of positive and negative words as determined by an opinion lexicon.",
	PlotWordTrend:      "'Specific Word Trend' plots the counts of any user-given word. 'freedom' is provided as an example.",
}

// PlotTypes lists every variant in display order.
func PlotTypes() []PlotType {
	return []PlotType{
		PlotSpeechLength,
		PlotFrequentWords,
		PlotImportantWords,
		PlotSentimentWords,
		PlotNetSentiment,
		PlotWordTrend,
	}
}

func (p PlotType) String() string {
	if name, ok := plotNames[p]; ok {
		return name
	}
	return fmt.Sprintf("PlotType(%d)", int(p))
}

// Explanation returns the fixed description for the plot type.
func (p PlotType) Explanation() string {
	return explanations[p]
}

// ParsePlotType maps a display name to its variant, case-insensitively.
func ParsePlotType(name string) (PlotType, error) {
	trimmed := strings.TrimSpace(name)
	for p, display := range plotNames {
		if strings.EqualFold(display, trimmed) {
			return p, nil
		}
	}
	return PlotSpeechLength, fmt.Errorf("%w: unknown plot type %q", internalerr.ErrInvalidInput, name)
}
