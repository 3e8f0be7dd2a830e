package service

import "strings"

// Two tag-match scoring strategies coexist on purpose. ScoreExact weights
// whole-tag equality and backs the content selector and the sitemap filter;
// ScoreContains weights substring containment and backs the content-card
// listing path. They produce different orderings, so every call site names
// the one it uses.

// ScoreExact computes the relevance of an item's keywords against a domain's
// tag configuration using case-insensitive equality: +10 for every primary
// tag present among the keywords, +5 for every secondary tag.
//
// Counting is per tag occurrence: a tag listed twice in the configuration
// scores twice against a single matching keyword. That mirrors the behavior
// the per-domain orderings were tuned against and is deliberately not
// deduplicated here.
func ScoreExact(keywords, primaryTags, secondaryTags []string) int {
	if len(keywords) == 0 {
		return 0
	}

	kw := make(map[string]struct{}, len(keywords))
	for _, k := range keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" {
			continue
		}
		kw[k] = struct{}{}
	}

	score := 0
	for _, t := range primaryTags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := kw[t]; ok {
			score += 10
		}
	}
	for _, t := range secondaryTags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := kw[t]; ok {
			score += 5
		}
	}
	return score
}

// ScoreContains computes relevance using case-insensitive substring
// containment: every keyword that contains some primary tag adds 3, every
// keyword that contains some secondary tag adds 1. One keyword scores at
// most once per tier regardless of how many tags it contains.
func ScoreContains(keywords, primaryTags, secondaryTags []string) int {
	score := 0
	for _, k := range keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" {
			continue
		}
		if containsAnyTag(k, primaryTags) {
			score += 3
		}
		if containsAnyTag(k, secondaryTags) {
			score += 1
		}
	}
	return score
}

func containsAnyTag(keyword string, tags []string) bool {
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if strings.Contains(keyword, t) {
			return true
		}
	}
	return false
}

// MatchesPrimaryTags reports whether any keyword equals (case-insensitively)
// any of the given primary tags. The sitemap generator uses it to decide
// which item URLs a domain emits.
func MatchesPrimaryTags(keywords, primaryTags []string) bool {
	return ScoreExact(keywords, primaryTags, nil) > 0
}
