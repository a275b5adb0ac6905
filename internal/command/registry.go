// Package command resolves typed text commands, tolerating aliases,
// prefixes and small typos.
package command

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Canonical command names.
const (
	North   = "north"
	South   = "south"
	East    = "east"
	West    = "west"
	Attack  = "attack"
	Heal    = "heal"
	Run     = "run"
	Shop    = "shop"
	Buy     = "buy"
	Potion  = "potion"
	Status  = "status"
	Restart = "restart"
	Quit    = "quit"
)

// Def declares a command and the other words that mean the same.
type Def struct {
	Canonical string
	Aliases   []string
}

// Match is the result of resolving one line of input.
type Match struct {
	Canonical string
	Input     string  // The word that was matched
	Score     float64 // 1 exact, 0.97 alias, 0.9 prefix, lower for typos
	Source    string  // "exact", "alias", "prefix" or "lev"
}

type phrase struct {
	canonical string
	alias     string
}

// Registry holds the known commands.
type Registry struct {
	phrases []phrase
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Default returns a registry with every game command.
func Default() *Registry {
	r := NewRegistry()
	for _, d := range []Def{
		// No single-letter moves: the keyboard's a/n mean attack and
		// new game in some modes, and typed commands have no mode.
		{North, []string{"up"}},
		{South, []string{"down"}},
		{East, []string{"right"}},
		{West, []string{"left"}},
		{Attack, []string{"hit", "fight", "strike"}},
		{Heal, []string{"h", "rest", "recover"}},
		{Run, []string{"flee", "r", "escape"}},
		{Shop, []string{"i", "store", "open"}},
		{Buy, []string{"b", "purchase"}},
		{Potion, []string{"p", "drink", "quaff"}},
		{Status, []string{"stats", "look", "?"}},
		{Restart, []string{"new", "again"}},
		{Quit, []string{"q", "exit", "bye"}},
	} {
		r.Register(d)
	}
	return r
}

// Register adds a command and its aliases.
func (r *Registry) Register(d Def) {
	c := normalise(d.Canonical)
	if c == "" {
		return
	}
	r.phrases = append(r.phrases, phrase{canonical: c, alias: c})
	for _, a := range d.Aliases {
		if n := normalise(a); n != "" {
			r.phrases = append(r.phrases, phrase{canonical: c, alias: n})
		}
	}
}

// Resolve finds the best command for the first word of input.
// Exact names win over aliases, aliases over prefixes, prefixes over typos.
func (r *Registry) Resolve(input string) (Match, bool) {
	fields := strings.Fields(normalise(input))
	if len(fields) == 0 {
		return Match{}, false
	}
	word := fields[0]

	var cands []Match
	for _, p := range r.phrases {
		switch {
		case word == p.alias && p.alias == p.canonical:
			cands = append(cands, Match{Canonical: p.canonical, Input: word, Score: 1, Source: "exact"})
		case word == p.alias:
			cands = append(cands, Match{Canonical: p.canonical, Input: word, Score: 0.97, Source: "alias"})
		case len(word) >= 2 && strings.HasPrefix(p.alias, word):
			cands = append(cands, Match{Canonical: p.canonical, Input: word, Score: 0.9, Source: "prefix"})
		case len(word) >= 3:
			dist := levenshtein.ComputeDistance(word, p.alias)
			if dist > levenshteinLimit(len(p.alias)) {
				continue
			}
			cands = append(cands, Match{Canonical: p.canonical, Input: word, Score: 0.72 - 0.08*float64(dist), Source: "lev"})
		}
	}
	if len(cands) == 0 {
		return Match{}, false
	}

	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].Score == cands[j].Score {
			return cands[i].Canonical < cands[j].Canonical
		}
		return cands[i].Score > cands[j].Score
	})

	best := cands[0]
	// Two different commands tied on a guess is ambiguous.
	if best.Source != "exact" && best.Source != "alias" {
		for _, c := range cands[1:] {
			if c.Score < best.Score {
				break
			}
			if c.Canonical != best.Canonical {
				return Match{}, false
			}
		}
	}
	return best, true
}

// levenshteinLimit is the largest edit distance accepted for a word of length n.
func levenshteinLimit(n int) int {
	switch {
	case n <= 4:
		return 1
	case n <= 8:
		return 2
	default:
		return 3
	}
}

func normalise(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
