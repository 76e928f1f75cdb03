// SPDX-License-Identifier: MPL-2.0

package registry

import (
	"testing"
)

func identities(descs []Descriptor) []string {
	ids := make([]string, len(descs))
	for i, d := range descs {
		ids[i] = d.Identity()
	}
	return ids
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name     string
		all      []Descriptor
		criteria Criteria
		want     []string
	}{
		{
			name: "no criteria selects everything not reserved",
			all: []Descriptor{
				{Group: "git", Name: "sync"},
				{Group: "docs", Name: "gen"},
			},
			want: []string{"git/sync", "docs/gen"},
		},
		{
			name: "duplicates collapse to the first occurrence",
			all: []Descriptor{
				{Group: "git", Name: "sync", Description: "first"},
				{Group: "git", Name: "sync", Description: "second"},
				{Group: "docs", Name: "gen"},
			},
			want: []string{"git/sync", "docs/gen"},
		},
		{
			name: "group filter",
			all: []Descriptor{
				{Group: "git", Name: "sync"},
				{Group: "docs", Name: "gen"},
				{Group: "git", Name: "log"},
			},
			criteria: Criteria{Group: "git"},
			want:     []string{"git/sync", "git/log"},
		},
		{
			name: "command filter",
			all: []Descriptor{
				{Group: "git", Name: "sync"},
				{Group: "backup", Name: "sync"},
				{Group: "docs", Name: "gen"},
			},
			criteria: Criteria{Command: "sync"},
			want:     []string{"git/sync", "backup/sync"},
		},
		{
			name: "group and command pin one descriptor",
			all: []Descriptor{
				{Group: "git", Name: "sync"},
				{Group: "git", Name: "log"},
			},
			criteria: Criteria{Group: "git", Command: "sync"},
			want:     []string{"git/sync"},
		},
		{
			name: "no match yields empty selection",
			all: []Descriptor{
				{Group: "g", Name: "other"},
			},
			criteria: Criteria{Group: "g", Command: "missing"},
			want:     nil,
		},
		{
			name: "reserved identities never selected",
			all: []Descriptor{
				{Group: "eject"},
				{Group: "version"},
				{Group: "git", Name: "sync"},
			},
			want: []string{"git/sync"},
		},
		{
			name: "explicit request for a reserved identity yields nothing",
			all: []Descriptor{
				{Group: "eject"},
			},
			criteria: Criteria{Group: "eject"},
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := identities(Select(tt.all, tt.criteria))
			if len(got) != len(tt.want) {
				t.Fatalf("Select() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Select()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSelectFirstOccurrenceWinsOnDuplicate(t *testing.T) {
	all := []Descriptor{
		{Group: "git", Name: "sync", Description: "keep me"},
		{Group: "git", Name: "sync", Description: "drop me"},
	}

	got := Select(all, Criteria{})
	if len(got) != 1 {
		t.Fatalf("Select() returned %d descriptors, want 1", len(got))
	}
	if got[0].Description != "keep me" {
		t.Errorf("Select() kept %q, want the first occurrence", got[0].Description)
	}
}

func TestCriteriaIsSingleTarget(t *testing.T) {
	if (Criteria{Group: "g"}).IsSingleTarget() {
		t.Error("group-only criteria should not be a single target")
	}
	if (Criteria{Command: "c"}).IsSingleTarget() {
		t.Error("command-only criteria should not be a single target")
	}
	if !(Criteria{Group: "g", Command: "c"}).IsSingleTarget() {
		t.Error("group+command criteria should be a single target")
	}
}
