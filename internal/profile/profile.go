// Package profile loads named formatting profiles from a TOML file and
// applies them to a table. A profiles file looks like:
//
//	[profile.report]
//	separator = " | "
//	align     = "lrr"
//	trim      = true
//	dividers  = ["0:-", "-1:="]
package profile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"texttable"
)

// Profile is one named formatting configuration.
type Profile struct {
	Separator *string  `toml:"separator"`
	Align     string   `toml:"align"`
	Trim      bool     `toml:"trim"`
	Dividers  []string `toml:"dividers"`
}

// file mirrors the on-disk layout: one [profile.NAME] table per profile.
type file struct {
	Profiles map[string]Profile `toml:"profile"`
}

// Load reads every profile from the TOML file at path.
func Load(path string) (map[string]Profile, error) {
	var f file
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("loading profiles from %s: %w", path, err)
	}
	if f.Profiles == nil {
		f.Profiles = map[string]Profile{}
	}
	return f.Profiles, nil
}

// Apply configures t from the profile. Alignment and divider specs are
// validated as they are applied.
func (p Profile) Apply(t *texttable.Table) error {
	if p.Separator != nil {
		t.Separator(*p.Separator)
	}
	t.TrimTrailingWhitespace(p.Trim)
	if p.Align != "" {
		if err := t.Alignments(p.Align); err != nil {
			return err
		}
	}
	if len(p.Dividers) > 0 {
		ds := make([]texttable.Divider, 0, len(p.Dividers))
		for _, spec := range p.Dividers {
			d, err := ParseDivider(spec)
			if err != nil {
				return err
			}
			ds = append(ds, d)
		}
		t.Dividers(ds...)
	}
	return nil
}

// ParseDivider parses "INDEX:CHAR" or "INDEX:CHAR:sep" into a Divider.
// INDEX may be negative (end-relative). The trailing "sep" option makes
// the rule respect the column separator instead of running through it.
func ParseDivider(spec string) (texttable.Divider, error) {
	parts := strings.Split(spec, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return texttable.Divider{}, fmt.Errorf("malformed divider spec %q (want INDEX:CHAR[:sep])", spec)
	}
	idx, err := strconv.Atoi(parts[0])
	if err != nil {
		return texttable.Divider{}, fmt.Errorf("malformed divider index in %q: %w", spec, err)
	}
	chars := []rune(parts[1])
	if len(chars) != 1 {
		return texttable.Divider{}, fmt.Errorf("divider fill in %q must be a single character", spec)
	}
	d := texttable.Divider{Index: idx, Char: chars[0]}
	if len(parts) == 3 {
		if parts[2] != "sep" {
			return texttable.Divider{}, fmt.Errorf("unknown divider option %q in %q", parts[2], spec)
		}
		d.UseColumnSeparator = true
	}
	return d, nil
}
