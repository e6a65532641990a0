package rules

import (
	"fmt"
	"strconv"
	"strings"
)

// TargetAll is the selector matching every consumer application.
const TargetAll = "all"

// Rule forces a category and/or anime category into consideration for a
// specific indexer on the selected consumer(s), independent of the default
// category-overlap policy. A rule with neither category set still forces
// the indexer to be included.
type Rule struct {
	// Target selects the consumer the rule applies to: a consumer name,
	// or TargetAll. Matching is case-insensitive.
	Target string
	// IndexerID is the source indexer the rule applies to.
	IndexerID int
	// Category is the forced category, or 0 if none.
	Category int
	// AnimeCategory is the forced anime category, or 0 if none.
	AnimeCategory int
}

// RuleSet is an immutable collection of override rules. It is loaded once at
// process start and shared read-only by every concurrent consumer run.
type RuleSet struct {
	rules []Rule
}

// NewRuleSet creates a rule set from the given rules.
func NewRuleSet(rules ...Rule) RuleSet {
	copied := make([]Rule, len(rules))
	copy(copied, rules)
	return RuleSet{rules: copied}
}

// Len returns the number of rules in the set.
func (rs RuleSet) Len() int {
	return len(rs.rules)
}

// Matching returns every rule whose selector matches the given consumer name
// and whose indexer id matches. All matching rules apply cumulatively.
func (rs RuleSet) Matching(app string, indexerID int) []Rule {
	var matched []Rule
	for _, r := range rs.rules {
		if r.IndexerID != indexerID {
			continue
		}
		if strings.EqualFold(r.Target, TargetAll) || strings.EqualFold(r.Target, app) {
			matched = append(matched, r)
		}
	}
	return matched
}

// Matches reports whether at least one rule in the set matches the given
// consumer and indexer.
func (rs RuleSet) Matches(app string, indexerID int) bool {
	return len(rs.Matching(app, indexerID)) > 0
}

// Parse parses a single rule in the form
// "target:indexerID:category[:animeCategory]". An empty category segment
// means no category is forced (e.g. "sonarr:12::5030").
func Parse(s string) (Rule, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 4 {
		return Rule{}, fmt.Errorf("invalid rule %q: want target:indexerID:category[:animeCategory]", s)
	}

	target := strings.ToLower(strings.TrimSpace(parts[0]))
	if target == "" {
		return Rule{}, fmt.Errorf("invalid rule %q: empty target", s)
	}

	indexerID, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || indexerID <= 0 {
		return Rule{}, fmt.Errorf("invalid rule %q: bad indexer id", s)
	}

	rule := Rule{Target: target, IndexerID: indexerID}

	if len(parts) >= 3 {
		rule.Category, err = parseCategory(parts[2])
		if err != nil {
			return Rule{}, fmt.Errorf("invalid rule %q: %w", s, err)
		}
	}
	if len(parts) == 4 {
		rule.AnimeCategory, err = parseCategory(parts[3])
		if err != nil {
			return Rule{}, fmt.Errorf("invalid rule %q: %w", s, err)
		}
	}

	return rule, nil
}

// ParseList parses a comma-separated list of rules. Empty segments are
// ignored so trailing commas in configuration are harmless.
func ParseList(s string) (RuleSet, error) {
	var parsed []Rule
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		rule, err := Parse(part)
		if err != nil {
			return RuleSet{}, err
		}
		parsed = append(parsed, rule)
	}
	return NewRuleSet(parsed...), nil
}

func parseCategory(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	cat, err := strconv.Atoi(s)
	if err != nil || cat < 0 {
		return 0, fmt.Errorf("bad category %q", s)
	}
	return cat, nil
}
