package ats

import (
	"regexp"
	"sort"
	"strings"
)

// tokenPattern keeps letters, digits and the symbol suffixes that matter in
// skill names (c++, c#, .net loses its dot but stays findable as "net").
var tokenPattern = regexp.MustCompile(`[a-z0-9+#]+`)

// stopwords are tokens too common to carry signal when mining a job
// description for significant terms.
var stopwords = map[string]struct{}{
	"a": {}, "about": {}, "above": {}, "after": {}, "all": {}, "also": {},
	"an": {}, "and": {}, "any": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"been": {}, "being": {}, "best": {}, "both": {}, "but": {}, "by": {},
	"can": {}, "could": {}, "do": {}, "does": {}, "each": {}, "etc": {},
	"for": {}, "from": {}, "had": {}, "has": {}, "have": {}, "he": {},
	"her": {}, "here": {}, "his": {}, "how": {}, "if": {}, "in": {},
	"into": {}, "is": {}, "it": {}, "its": {}, "job": {}, "more": {},
	"most": {}, "must": {}, "new": {}, "no": {}, "not": {}, "of": {},
	"on": {}, "or": {}, "other": {}, "our": {}, "out": {}, "over": {},
	"own": {}, "per": {}, "plus": {}, "role": {}, "she": {}, "should": {},
	"so": {}, "some": {}, "such": {}, "than": {}, "that": {}, "the": {},
	"their": {}, "them": {}, "then": {}, "there": {}, "these": {},
	"they": {}, "this": {}, "those": {}, "through": {}, "to": {}, "up": {},
	"us": {}, "was": {}, "we": {}, "well": {}, "were": {}, "what": {},
	"when": {}, "where": {}, "which": {}, "while": {}, "who": {},
	"will": {}, "with": {}, "within": {}, "work": {}, "would": {},
	"years": {}, "you": {}, "your": {},
}

// tokenize lowercases text and splits it into word tokens.
func tokenize(text string) []string {
	return tokenPattern.FindAllString(strings.ToLower(text), -1)
}

// extractKeywords returns up to limit significant terms from text, ordered
// by frequency and then by first appearance so the result is deterministic
// for identical input.
func extractKeywords(text string, limit int) []string {
	type termStat struct {
		term  string
		count int
		first int
	}
	stats := make(map[string]*termStat)
	order := []*termStat{}
	for i, tok := range tokenize(text) {
		if len(tok) < 3 {
			continue
		}
		if _, skip := stopwords[tok]; skip {
			continue
		}
		if s, ok := stats[tok]; ok {
			s.count++
			continue
		}
		s := &termStat{term: tok, count: 1, first: i}
		stats[tok] = s
		order = append(order, s)
	}
	sort.SliceStable(order, func(i, j int) bool {
		if order[i].count != order[j].count {
			return order[i].count > order[j].count
		}
		return order[i].first < order[j].first
	})
	if len(order) > limit {
		order = order[:limit]
	}
	out := make([]string, len(order))
	for i, s := range order {
		out[i] = s.term
	}
	return out
}

// containsTerm reports whether the lowercased haystack contains term as a
// whole token.
func containsTerm(tokens map[string]struct{}, term string) bool {
	for _, part := range tokenize(term) {
		if _, ok := tokens[part]; !ok {
			return false
		}
	}
	return len(term) > 0
}

// tokenSet builds a membership set from text for repeated term lookups.
func tokenSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range tokenize(text) {
		set[tok] = struct{}{}
	}
	return set
}
