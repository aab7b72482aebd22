package nav

import (
	"testing"

	"github.com/treeline-ui/treeline/pkg/pathmatch"
)

func docsTree() []Item {
	return []Item{
		{Label: "Home", URL: "/", ExactMatch: true},
		{
			Label: "Docs",
			URL:   "/docs",
			Children: []Item{
				{Label: "Install", URL: "/docs/install"},
				{Label: "Guides", URL: "/docs/guides"},
			},
		},
		{Label: "Blog", URL: "/blog"},
	}
}

func TestResolveMarksActivePath(t *testing.T) {
	states := Resolve(docsTree(), "/docs/install")

	if states[0].Active {
		t.Error("Home should not be active on /docs/install")
	}
	if !states[1].Active {
		t.Error("Docs should be active on /docs/install")
	}
	if !states[1].Children[0].Active {
		t.Error("Install should be active on /docs/install")
	}
	if states[1].Children[1].Active {
		t.Error("Guides should not be active on /docs/install")
	}
	if states[2].Active {
		t.Error("Blog should not be active on /docs/install")
	}
}

func TestResolveParentActiveThroughChild(t *testing.T) {
	items := []Item{
		{
			Label:      "Section",
			URL:        "/x",
			ExactMatch: true,
			Children: []Item{
				{Label: "Leaf", URL: "/x/y"},
			},
		},
	}

	states := Resolve(items, "/x/y/")
	if !states[0].Active {
		t.Error("parent should be active when a child matches")
	}
}

func TestResolveSingleMatchPerSiblingGroup(t *testing.T) {
	// Both /docs and /docs/install prefix-match the location; only the
	// longer one gets the flag.
	states := Resolve([]Item{
		{Label: "Docs", URL: "/docs"},
		{Label: "Install", URL: "/docs/install"},
	}, "/docs/install/extra")

	if states[0].Matches {
		t.Error("shorter sibling should not carry Matches")
	}
	if !states[1].Matches {
		t.Error("longest matching sibling should carry Matches")
	}

	count := 0
	for _, st := range states {
		if st.Matches {
			count++
		}
	}
	if count != 1 {
		t.Errorf("Matches count = %d, want 1", count)
	}
}

func TestResolveNoMatches(t *testing.T) {
	states := Resolve(docsTree(), "/nowhere")
	for _, st := range states {
		if st.Active || st.Matches {
			t.Errorf("entry %q unexpectedly highlighted", st.Item.Label)
		}
	}
}

func TestResolveEmpty(t *testing.T) {
	if states := Resolve(nil, "/docs"); states != nil {
		t.Errorf("Resolve(nil) = %v, want nil", states)
	}
}

func TestResolveForcedOverride(t *testing.T) {
	states := Resolve([]Item{
		{Label: "Pinned", URL: "/pinned", ForcedMatch: pathmatch.Forced(true)},
		{Label: "Hidden", URL: "/docs", ForcedMatch: pathmatch.Forced(false)},
	}, "/docs/install")

	if !states[0].Active {
		t.Error("forced-true entry should always be active")
	}
	if states[1].Active {
		t.Error("forced-false entry should never be active")
	}
}

func TestItemRule(t *testing.T) {
	it := Item{
		URL:          "/docs",
		ExactMatch:   true,
		MatchPaths:   []string{"/guides"},
		ExcludePaths: []string{"/docs/legacy"},
	}
	rule := it.Rule()
	if rule.URL != "/docs" || !rule.ExactMatch {
		t.Errorf("Rule() = %+v, lost url or exact flag", rule)
	}
	if len(rule.MatchPaths) != 1 || len(rule.ExcludePaths) != 1 {
		t.Errorf("Rule() = %+v, lost path lists", rule)
	}
}
