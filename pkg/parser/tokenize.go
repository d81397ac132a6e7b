package parser

import (
	"sort"
	"strings"
)

// Argument prefixes.
const (
	prefixName        = "n/"
	prefixPhone       = "p/"
	prefixEmail       = "e/"
	prefixRole        = "r/"
	prefixAddress     = "a/"
	prefixTag         = "t/"
	prefixDate        = "d/"
	prefixLocation    = "l/"
	prefixWedding     = "w/"
	prefixIndex       = "i/"
	prefixDescription = "d/"
)

// arguments is the tokenized tail of a command line: the text before the
// first prefix, then every value seen for each prefix in order.
type arguments struct {
	preamble string
	values   map[string][]string
}

type mark struct {
	pos    int
	prefix string
}

// tokenize splits s on the given prefixes. A prefix only counts at the start
// of s or after whitespace, so "a@x.com" never starts an address.
func tokenize(s string, prefixes ...string) arguments {
	return split(s, findMarks(s, prefixes))
}

// tokenizeFreeText is tokenize for commands whose free text value may itself
// contain prefixes. Inside the value of free, a prefix that was already given
// is kept as text, so "w/W1 d/Call florist w/ roses" has one wedding.
func tokenizeFreeText(s, free string, prefixes ...string) arguments {
	var kept []mark
	seen := map[string]bool{}
	inFree := false
	for _, m := range findMarks(s, prefixes) {
		if inFree && seen[m.prefix] {
			continue
		}
		seen[m.prefix] = true
		inFree = m.prefix == free
		kept = append(kept, m)
	}
	return split(s, kept)
}

func findMarks(s string, prefixes []string) []mark {
	var marks []mark
	for _, p := range prefixes {
		for from := 0; from < len(s); {
			i := strings.Index(s[from:], p)
			if i < 0 {
				break
			}
			pos := from + i
			if pos == 0 || s[pos-1] == ' ' || s[pos-1] == '\t' {
				marks = append(marks, mark{pos: pos, prefix: p})
			}
			from = pos + len(p)
		}
	}
	sort.Slice(marks, func(i, j int) bool { return marks[i].pos < marks[j].pos })
	return marks
}

func split(s string, marks []mark) arguments {
	out := arguments{values: map[string][]string{}}
	if len(marks) == 0 {
		out.preamble = strings.TrimSpace(s)
		return out
	}
	out.preamble = strings.TrimSpace(s[:marks[0].pos])
	for i, m := range marks {
		end := len(s)
		if i+1 < len(marks) {
			end = marks[i+1].pos
		}
		out.values[m.prefix] = append(out.values[m.prefix], strings.TrimSpace(s[m.pos+len(m.prefix):end]))
	}
	return out
}

// value returns the last value for prefix.
func (a arguments) value(prefix string) (string, bool) {
	v := a.values[prefix]
	if len(v) == 0 {
		return "", false
	}
	return v[len(v)-1], true
}

func (a arguments) all(prefix string) []string {
	return a.values[prefix]
}

func (a arguments) has(prefix string) bool {
	return len(a.values[prefix]) > 0
}
