// SPDX-License-Identifier: MPL-2.0

package registry

// Reserved command identities. The built-in commands must never be selected
// for ejection, even when criteria explicitly request them.
const (
	ReservedEjectIdentity   = "eject/"
	ReservedVersionIdentity = "version/"
)

// Criteria optionally restricts selection to one group and/or one command
// name. Both fields empty means "select everything not reserved".
type Criteria struct {
	Group   string
	Command string
}

// IsSingleTarget reports whether the criteria pin down exactly one command
// (both group and command name specified).
func (c Criteria) IsSingleTarget() bool {
	return c.Group != "" && c.Command != ""
}

// Select filters the command list down to the descriptors eligible for
// ejection. Duplicates by identity key are dropped (first occurrence wins),
// reserved identities never appear, and the output preserves the input's
// relative order.
func Select(all []Descriptor, criteria Criteria) []Descriptor {
	seen := map[string]struct{}{
		ReservedEjectIdentity:   {},
		ReservedVersionIdentity: {},
	}

	var selected []Descriptor
	for _, d := range all {
		id := d.Identity()
		if _, ok := seen[id]; ok {
			continue
		}
		if criteria.Group != "" && criteria.Group != string(d.Group) {
			continue
		}
		if criteria.Command != "" && criteria.Command != string(d.Name) {
			continue
		}
		seen[id] = struct{}{}
		selected = append(selected, d)
	}

	return selected
}
