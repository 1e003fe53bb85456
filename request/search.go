package request

import (
	"fmt"
	"strconv"
	"strings"
)

// SearchMode selects how a literal value is turned into a match pattern.
type SearchMode int

const (
	ContainFull SearchMode = iota
	ContainOrder
	ContainSingle
	ContainAny
	Start
	End
	StartSingle
	EndSingle
	PartMatch
	NoContain
	NoPartMatch
)

var searchModeNames = [...]string{
	ContainFull:   "contain_full",
	ContainOrder:  "contain_order",
	ContainSingle: "contain_single",
	ContainAny:    "contain_any",
	Start:         "start",
	End:           "end",
	StartSingle:   "start_single",
	EndSingle:     "end_single",
	PartMatch:     "part_match",
	NoContain:     "no_contain",
	NoPartMatch:   "no_part_match",
}

func (m SearchMode) String() string {
	if m >= 0 && int(m) < len(searchModeNames) {
		return searchModeNames[m]
	}
	return "search_mode(" + strconv.Itoa(int(m)) + ")"
}

// SearchModes returns every known mode in tag order.
func SearchModes() []SearchMode {
	modes := make([]SearchMode, len(searchModeNames))
	for i := range modes {
		modes[i] = SearchMode(i)
	}
	return modes
}

// ParseSearchMode accepts a mode name (case-insensitive, '-' or '_') or its
// integer tag. An empty string selects ContainFull.
func ParseSearchMode(s string) (SearchMode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ContainFull, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n >= len(searchModeNames) {
			return 0, fmt.Errorf("unknown search mode: %d", n)
		}
		return SearchMode(n), nil
	}
	s = strings.ReplaceAll(s, "-", "_")
	for i, name := range searchModeNames {
		if name == s {
			return SearchMode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown search mode: %s", s)
}

// Search builds the pattern for value with case folding requested.
func Search(value string, mode SearchMode) string {
	return *SearchPattern(&value, mode, true)
}

// SearchPattern builds the match pattern for value. A nil value yields nil.
//
// ignoreCase is a hint for the engine that consumes the pattern and does not
// change the pattern itself. ContainAny and PartMatch have no pattern of their
// own yet and produce the ContainFull pattern.
func SearchPattern(value *string, mode SearchMode, ignoreCase bool) *string {
	if value == nil {
		return nil
	}
	key := *value

	var p string
	switch mode {
	case ContainSingle:
		p = "_" + key + "_"
	case ContainOrder:
		var b strings.Builder
		b.WriteByte('%')
		for _, r := range key {
			b.WriteRune(r)
			b.WriteByte('%')
		}
		p = b.String()
	case Start:
		p = key + "%"
	case End:
		p = "%" + key
	case StartSingle:
		p = key + "_"
	case EndSingle:
		p = "_" + key
	case NoContain:
		p = "[^" + key + "]"
	case NoPartMatch:
		var b strings.Builder
		for _, r := range key {
			c := string(r)
			b.WriteString(*SearchPattern(&c, NoContain, ignoreCase))
		}
		p = b.String()
	default:
		p = "%" + key + "%"
	}
	return &p
}

// SearchKey appends SearchSuffix to key unless it is already present.
func SearchKey(key string) string {
	if strings.HasSuffix(key, SearchSuffix) {
		return key
	}
	return key + SearchSuffix
}
