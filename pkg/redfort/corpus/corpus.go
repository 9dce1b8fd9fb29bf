// Package corpus loads the annual speech corpus and selects subsets of it.
//
// The corpus is a fixed CSV of one row per year. It is loaded once at process
// start and treated as read-only for the process lifetime; every selection
// copies rows out rather than mutating the source.
package corpus

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/corpuslab/redfort/pkg/redfort/internalerr"
)

// MissingYears are years where no speech text survives. The corpus carries
// metadata rows for them but they contribute nothing to any analysis.
var MissingYears = map[int]bool{
	1962: true,
	1995: true,
}

// MissingNote is the fixed caption shown alongside every plot.
const MissingNote = "1962 and 1995 are missing from the data set."

// Speech is one annual speech with its metadata. Text is empty for the
// missing years.
type Speech struct {
	Year     int
	PM       string
	Party    string
	Title    string
	Footnote string
	Source   string
	URL      string
	Text     string
}

// Entry is a speech projected to the columns the analysis pipeline consumes.
// Selection always yields this shape, regardless of row count.
type Entry struct {
	Year  int    `json:"year"`
	PM    string `json:"pm"`
	Party string `json:"party"`
	Text  string `json:"-"`
}

// requiredColumns is the CSV header the loader insists on. Order in the file
// is free; absence of any column is fatal.
var requiredColumns = []string{"year", "pm", "party", "title", "footnote", "source", "url", "text"}

// Corpus is the loaded speech collection.
type Corpus struct {
	speeches []Speech
}

// New wraps an already-assembled speech list, e.g. one read from a store.
func New(speeches []Speech) *Corpus {
	return &Corpus{speeches: speeches}
}

// Load reads the corpus CSV from path.
func Load(path string) (*Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus %s: %w", path, err)
	}
	defer f.Close()

	c, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read corpus %s: %w", path, err)
	}
	return c, nil
}

// Read parses corpus CSV content. The header row must contain every required
// column; rows with an unparseable year are rejected rather than skipped.
func Read(r io.Reader) (*Corpus, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(strings.ToLower(name))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", internalerr.ErrBadSchema, col)
		}
	}

	field := func(record []string, col string) string {
		i := idx[col]
		if i >= len(record) {
			return ""
		}
		return record[i]
	}

	var speeches []Speech
	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		year, err := strconv.Atoi(strings.TrimSpace(field(record, "year")))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w: bad year %q", line, internalerr.ErrBadSchema, field(record, "year"))
		}

		speeches = append(speeches, Speech{
			Year:     year,
			PM:       field(record, "pm"),
			Party:    field(record, "party"),
			Title:    field(record, "title"),
			Footnote: field(record, "footnote"),
			Source:   field(record, "source"),
			URL:      field(record, "url"),
			Text:     field(record, "text"),
		})
	}

	return &Corpus{speeches: speeches}, nil
}

// Speeches returns the full speech list in file order.
func (c *Corpus) Speeches() []Speech {
	return c.speeches
}

// Len returns the number of corpus rows, including the missing years.
func (c *Corpus) Len() int {
	return len(c.speeches)
}

// SpeechCount returns the number of speeches with actual text. This is the
// total quoted in inclusion notes (77 for the full corpus: 79 rows minus the
// two missing years).
func (c *Corpus) SpeechCount() int {
	n := 0
	for _, s := range c.speeches {
		if s.Text != "" {
			n++
		}
	}
	return n
}

// YearBounds returns the minimum and maximum year in the corpus.
func (c *Corpus) YearBounds() (min, max int) {
	if len(c.speeches) == 0 {
		return 0, 0
	}
	min, max = c.speeches[0].Year, c.speeches[0].Year
	for _, s := range c.speeches[1:] {
		if s.Year < min {
			min = s.Year
		}
		if s.Year > max {
			max = s.Year
		}
	}
	return min, max
}

// PMs returns the distinct prime minister names, sorted.
func (c *Corpus) PMs() []string {
	return c.distinct(func(s Speech) string { return s.PM })
}

// Parties returns the distinct party names, sorted.
func (c *Corpus) Parties() []string {
	return c.distinct(func(s Speech) string { return s.Party })
}

func (c *Corpus) distinct(get func(Speech) string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, s := range c.speeches {
		v := get(s)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// InclusionNote describes how many speeches a selection kept, measured
// against the count of speeches with text.
func (c *Corpus) InclusionNote(n int) string {
	total := c.SpeechCount()
	if n == total {
		return fmt.Sprintf("%d speeches included.", total)
	}
	return fmt.Sprintf("%d of %d speeches included.", n, total)
}
