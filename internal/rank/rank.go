// Package rank orders projects for the interactive switcher by combining
// a query match tier, activation recency, and declaration order.
package rank

import (
	"sort"
	"strings"

	"pivot/internal/config"
)

// Match tiers, best first. Projects outside every tier are excluded.
const (
	tierNamePrefix = iota
	tierIDPrefix
	tierNameSubstring
	tierIDSubstring
	tierNoMatch
)

// Rank filters and orders projects for display.
//
// history is a most-recent-first list of project-id activations. A
// project's recency rank is the index of its first occurrence; projects
// absent from the history rank after every history-backed entry. Ties break
// on the order projects were declared in the config, so the result is fully
// deterministic.
//
// An empty (or blank) query keeps every project, ordered by recency then
// declaration order. A non-empty query is matched case-insensitively
// against name and id, classified into tiers: name prefix, id prefix, name
// substring, id substring. Non-matching projects are excluded.
func Rank(projects []config.ProjectConfig, query string, history []string) []config.ProjectConfig {
	recency := recencyRanks(history)

	type candidate struct {
		project config.ProjectConfig
		tier    int
		rank    int
		declIdx int
	}

	query = strings.ToLower(strings.TrimSpace(query))

	candidates := make([]candidate, 0, len(projects))
	for i, p := range projects {
		tier := matchTier(p, query)
		if tier == tierNoMatch {
			continue
		}
		rank, ok := recency[p.ID]
		if !ok {
			rank = len(history)
		}
		candidates = append(candidates, candidate{
			project: p,
			tier:    tier,
			rank:    rank,
			declIdx: i,
		})
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		ca, cb := candidates[a], candidates[b]
		if ca.tier != cb.tier {
			return ca.tier < cb.tier
		}
		if ca.rank != cb.rank {
			return ca.rank < cb.rank
		}
		return ca.declIdx < cb.declIdx
	})

	out := make([]config.ProjectConfig, len(candidates))
	for i, c := range candidates {
		out[i] = c.project
	}
	return out
}

// recencyRanks maps each id in the history to the index of its first
// occurrence.
func recencyRanks(history []string) map[string]int {
	ranks := make(map[string]int, len(history))
	for i, id := range history {
		if _, seen := ranks[id]; !seen {
			ranks[id] = i
		}
	}
	return ranks
}

// matchTier classifies how well a project matches the lowercased query.
func matchTier(p config.ProjectConfig, query string) int {
	if query == "" {
		return tierNamePrefix
	}

	name := strings.ToLower(p.Name)
	id := strings.ToLower(p.ID)

	switch {
	case strings.HasPrefix(name, query):
		return tierNamePrefix
	case strings.HasPrefix(id, query):
		return tierIDPrefix
	case strings.Contains(name, query):
		return tierNameSubstring
	case strings.Contains(id, query):
		return tierIDSubstring
	default:
		return tierNoMatch
	}
}
