package corpus

// Selection is one user's filter state: an inclusive year range plus the
// prime ministers and parties to keep. Empty PM or party lists select
// nothing, which is a valid state, not an error.
type Selection struct {
	FromYear int      `json:"from_year"`
	ToYear   int      `json:"to_year"`
	PMs      []string `json:"pms"`
	Parties  []string `json:"parties"`
}

// Empty reports whether the selection can match nothing because one of the
// membership lists is empty.
func (sel Selection) Empty() bool {
	return len(sel.PMs) == 0 || len(sel.Parties) == 0
}

// Clamp restricts the year range to the corpus bounds and repairs an
// inverted range. The membership lists are left alone.
func (sel *Selection) Clamp(c *Corpus) {
	min, max := c.YearBounds()
	if sel.FromYear > sel.ToYear {
		sel.FromYear, sel.ToYear = sel.ToYear, sel.FromYear
	}
	if sel.FromYear < min {
		sel.FromYear = min
	}
	if sel.ToYear > max {
		sel.ToYear = max
	}
}

// Filter returns the speeches matching the selection, projected to the
// analysis columns. Input order is preserved and the corpus is not mutated.
func (c *Corpus) Filter(sel Selection) []Entry {
	pms := toSet(sel.PMs)
	parties := toSet(sel.Parties)

	entries := []Entry{}
	if sel.Empty() {
		return entries
	}

	for _, s := range c.speeches {
		if s.Year < sel.FromYear || s.Year > sel.ToYear {
			continue
		}
		if _, ok := pms[s.PM]; !ok {
			continue
		}
		if _, ok := parties[s.Party]; !ok {
			continue
		}
		entries = append(entries, Entry{
			Year:  s.Year,
			PM:    s.PM,
			Party: s.Party,
			Text:  s.Text,
		})
	}
	return entries
}

func toSet(in []string) map[string]struct{} {
	set := make(map[string]struct{}, len(in))
	for _, v := range in {
		set[v] = struct{}{}
	}
	return set
}
