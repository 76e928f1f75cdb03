// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"crowbar-cli/pkg/types"
)

// FileName is the package manifest file name at the project root.
const FileName = "package.json"

// Manifest section names, used in Overwrite records and warning output.
const (
	SectionDependencies    = "dependencies"
	SectionDevDependencies = "devDependencies"
	SectionScripts         = "scripts"
)

type (
	// Document is the subset of a package manifest that crowbar touches.
	// Top-level keys outside the three managed sections are preserved
	// verbatim across a load/save round trip.
	Document struct {
		Dependencies    map[string]string
		DevDependencies map[string]string
		Scripts         map[string]string

		rest map[string]json.RawMessage
	}

	// Requirements is the set of manifest entries a command wants merged
	// into the host project when it ejects. TOML tags match the
	// [eject.manifest] table of a plugin descriptor.
	Requirements struct {
		Dependencies    map[string]string `toml:"dependencies"`
		DevDependencies map[string]string `toml:"dev_dependencies"`
		Scripts         map[string]string `toml:"scripts"`
	}

	// Overwrite records a key collision resolved by last-write-wins.
	Overwrite struct {
		Section string
		Key     string
		Old     string
		New     string
	}
)

// IsEmpty reports whether the Requirements carry no entries at all.
func (r Requirements) IsEmpty() bool {
	return len(r.Dependencies) == 0 && len(r.DevDependencies) == 0 && len(r.Scripts) == 0
}

// LoadDocument reads and parses the manifest file at path.
func LoadDocument(path types.FilesystemPath) (Document, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return Document{}, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Document{}, fmt.Errorf("parsing manifest %s: %w", path, err)
	}

	doc := Document{rest: raw}
	if err := popSection(raw, SectionDependencies, &doc.Dependencies); err != nil {
		return Document{}, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	if err := popSection(raw, SectionDevDependencies, &doc.DevDependencies); err != nil {
		return Document{}, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	if err := popSection(raw, SectionScripts, &doc.Scripts); err != nil {
		return Document{}, fmt.Errorf("parsing manifest %s: %w", path, err)
	}

	return doc, nil
}

// Save writes the document to path as 2-space-indented JSON with a trailing
// newline, the conventional package.json formatting.
func (d Document) Save(path types.FilesystemPath) error {
	out := make(map[string]json.RawMessage, len(d.rest)+3)
	for k, v := range d.rest {
		out[k] = v
	}
	if err := putSection(out, SectionDependencies, d.Dependencies); err != nil {
		return err
	}
	if err := putSection(out, SectionDevDependencies, d.DevDependencies); err != nil {
		return err
	}
	if err := putSection(out, SectionScripts, d.Scripts); err != nil {
		return err
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(string(path), data, 0o644); err != nil {
		return fmt.Errorf("writing manifest %s: %w", path, err)
	}
	return nil
}

// Merge applies the requirements to a copy of doc, last write wins. It
// returns the merged document together with one Overwrite record per key
// that already existed, in deterministic (section, then key) order.
func Merge(doc Document, req Requirements) (Document, []Overwrite) {
	merged := Document{
		Dependencies:    copyMap(doc.Dependencies),
		DevDependencies: copyMap(doc.DevDependencies),
		Scripts:         copyMap(doc.Scripts),
		rest:            doc.rest,
	}

	var overwrites []Overwrite
	overwrites = mergeSection(merged.Dependencies, req.Dependencies, SectionDependencies, overwrites)
	overwrites = mergeSection(merged.DevDependencies, req.DevDependencies, SectionDevDependencies, overwrites)
	overwrites = mergeSection(merged.Scripts, req.Scripts, SectionScripts, overwrites)

	return merged, overwrites
}

func mergeSection(dst, src map[string]string, section string, overwrites []Overwrite) []Overwrite {
	keys := make([]string, 0, len(src))
	for k := range src {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if old, ok := dst[k]; ok {
			overwrites = append(overwrites, Overwrite{Section: section, Key: k, Old: old, New: src[k]})
		}
		dst[k] = src[k]
	}
	return overwrites
}

func copyMap(src map[string]string) map[string]string {
	dst := make(map[string]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func popSection(raw map[string]json.RawMessage, key string, into *map[string]string) error {
	msg, ok := raw[key]
	if !ok {
		*into = map[string]string{}
		return nil
	}
	delete(raw, key)
	if err := json.Unmarshal(msg, into); err != nil {
		return fmt.Errorf("section %q: %w", key, err)
	}
	return nil
}

func putSection(out map[string]json.RawMessage, key string, section map[string]string) error {
	if len(section) == 0 {
		return nil
	}
	msg, err := json.Marshal(section)
	if err != nil {
		return fmt.Errorf("encoding section %q: %w", key, err)
	}
	out[key] = msg
	return nil
}
