// Copyright (C) 2025 the travel-agency maintainers
// See root-dir/LICENSE for more information

package content

import (
	"testing"

	"github.com/JuanCarriles/travel-agency/internal/model"
)

func TestCollectionByID(t *testing.T) {
	a := &model.Module{ID: "salta-norte"}
	b := &model.Module{ID: "patagonia-sur"}
	c := NewCollection([]*model.Module{a, b})

	tt := []struct {
		name  string
		id    string
		want  *model.Module
		found bool
	}{
		{name: "first", id: "salta-norte", want: a, found: true},
		{name: "second", id: "patagonia-sur", want: b, found: true},
		{name: "missing", id: "iguazu", found: false},
		{name: "empty id", id: "", found: false},
		{name: "case sensitive", id: "Salta-Norte", found: false},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := c.ByID(tc.id)
			if ok != tc.found {
				t.Fatalf("ByID(%q) found = %v, want %v", tc.id, ok, tc.found)
			}
			if tc.found && got != tc.want {
				t.Fatalf("ByID(%q) returned the wrong module", tc.id)
			}
		})
	}
}

func TestCollectionOrder(t *testing.T) {
	mods := []*model.Module{{ID: "c"}, {ID: "a"}, {ID: "b"}}
	c := NewCollection(mods)

	if c.Len() != 3 {
		t.Fatalf("Len = %d, want 3", c.Len())
	}
	for i, m := range c.Modules() {
		if m.ID != mods[i].ID {
			t.Fatalf("document order not preserved at %d: got %q", i, m.ID)
		}
	}
}
