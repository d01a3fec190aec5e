package rank

import (
	"reflect"
	"testing"

	"pivot/internal/config"
)

func projects(names ...string) []config.ProjectConfig {
	out := make([]config.ProjectConfig, len(names))
	for i, name := range names {
		out[i] = config.ProjectConfig{ID: name, Name: name, Path: "/" + name}
	}
	return out
}

func ids(projects []config.ProjectConfig) []string {
	out := make([]string, len(projects))
	for i, p := range projects {
		out[i] = p.ID
	}
	return out
}

func TestRank_EmptyQueryUsesRecencyThenDeclOrder(t *testing.T) {
	got := Rank(projects("a", "b", "c"), "", []string{"b", "a"})
	want := []string{"b", "a", "c"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Errorf("Rank() = %v, want %v", ids(got), want)
	}
}

func TestRank_EmptyHistoryKeepsDeclOrder(t *testing.T) {
	got := Rank(projects("z", "a", "m"), "", nil)
	want := []string{"z", "a", "m"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Errorf("Rank() = %v, want %v", ids(got), want)
	}
}

func TestRank_QueryFiltersNonMatches(t *testing.T) {
	got := Rank(projects("alpha", "beta", "gamma"), "gam", []string{"alpha"})
	want := []string{"gamma"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Errorf("Rank() = %v, want %v", ids(got), want)
	}
}

func TestRank_MatchTiers(t *testing.T) {
	list := []config.ProjectConfig{
		{ID: "x-api", Name: "Server"},    // id substring
		{ID: "svc", Name: "Main API"},    // name substring
		{ID: "api-gw", Name: "Gateway"},  // id prefix
		{ID: "edge", Name: "API Server"}, // name prefix
		{ID: "web", Name: "Frontend"},    // no match
	}

	got := Rank(list, "api", nil)
	want := []string{"edge", "api-gw", "svc", "x-api"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Errorf("Rank() = %v, want %v", ids(got), want)
	}
}

func TestRank_QueryIsCaseInsensitiveAndTrimmed(t *testing.T) {
	list := projects("Tooling", "other")
	list[0].Name = "Tooling"

	got := Rank(list, "  TOOL  ", nil)
	if len(got) != 1 || got[0].ID != "Tooling" {
		t.Errorf("Rank() = %v, want [Tooling]", ids(got))
	}
}

func TestRank_RecencyBreaksTiesWithinTier(t *testing.T) {
	list := projects("app-one", "app-two", "app-three")

	got := Rank(list, "app", []string{"app-two"})
	want := []string{"app-two", "app-one", "app-three"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Errorf("Rank() = %v, want %v", ids(got), want)
	}
}

func TestRank_FirstOccurrenceWinsInHistory(t *testing.T) {
	// A repeated activation must not demote an id recorded earlier.
	got := Rank(projects("a", "b"), "", []string{"b", "a", "b", "b"})
	want := []string{"b", "a"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Errorf("Rank() = %v, want %v", ids(got), want)
	}
}

func TestRank_UnknownHistoryIDsIgnored(t *testing.T) {
	got := Rank(projects("a", "b"), "", []string{"deleted", "b"})
	want := []string{"b", "a"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Errorf("Rank() = %v, want %v", ids(got), want)
	}
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	list := projects("c", "b", "a")
	Rank(list, "", []string{"a"})
	if !reflect.DeepEqual(ids(list), []string{"c", "b", "a"}) {
		t.Error("Rank must not reorder its input slice")
	}
}
