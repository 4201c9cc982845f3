// Package stdparts resolves standard-part designations (bearing codes,
// metric fastener sizes) into the dimensional parameters a generator needs.
// The tables are embedded, loaded once and never mutated at runtime.
package stdparts

import (
	_ "embed"
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/partforge/mechdraw"
)

// Part families with standard tables.
const (
	FamilyBearing  = "bearing"
	FamilyFastener = "fastener"
)

// NotFoundError reports a designation with no table entry. Resolution never
// falls back to a zero-valued spec.
type NotFoundError struct {
	Family      string
	Designation string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no standard %s %q", e.Family, e.Designation)
}

// Bearing is a deep-groove ball bearing table row.
type Bearing struct {
	Bore  float32 `yaml:"bore"`
	Outer float32 `yaml:"outer"`
	Width float32 `yaml:"width"`
}

// Fastener is an ISO coarse metric fastener table row covering the bolt,
// nut and washer dimensions for one nominal size.
type Fastener struct {
	Diameter        float32 `yaml:"diameter"`
	Pitch           float32 `yaml:"pitch"`
	HeadWidth       float32 `yaml:"head_width"` // hex across flats
	HeadHeight      float32 `yaml:"head_height"`
	NutHeight       float32 `yaml:"nut_height"`
	WasherInner     float32 `yaml:"washer_inner"`
	WasherOuter     float32 `yaml:"washer_outer"`
	WasherThickness float32 `yaml:"washer_thickness"`
}

//go:embed tables.yaml
var tablesYAML []byte

type tables struct {
	Bearings  map[string]Bearing  `yaml:"bearings"`
	Fasteners map[string]Fastener `yaml:"fasteners"`
}

var (
	loadOnce sync.Once
	loaded   tables
	loadErr  error
)

func load() (*tables, error) {
	loadOnce.Do(func() {
		loadErr = yaml.Unmarshal(tablesYAML, &loaded)
	})
	if loadErr != nil {
		return nil, fmt.Errorf("loading standard part tables: %w", loadErr)
	}
	return &loaded, nil
}

// LookupBearing returns the bearing with the given designation, e.g. "6204".
func LookupBearing(designation string) (Bearing, error) {
	tb, err := load()
	if err != nil {
		return Bearing{}, err
	}
	b, ok := tb.Bearings[designation]
	if !ok {
		return Bearing{}, &NotFoundError{Family: FamilyBearing, Designation: designation}
	}
	return b, nil
}

// LookupFastener returns the fastener with the given size code, e.g. "M10".
func LookupFastener(designation string) (Fastener, error) {
	tb, err := load()
	if err != nil {
		return Fastener{}, err
	}
	f, ok := tb.Fasteners[designation]
	if !ok {
		return Fastener{}, &NotFoundError{Family: FamilyFastener, Designation: designation}
	}
	return f, nil
}

// Resolve returns the parameter record derived from a standard designation.
// Field names match what the corresponding generators consume.
func Resolve(family, designation string) (mechdraw.Params, error) {
	switch family {
	case FamilyBearing:
		b, err := LookupBearing(designation)
		if err != nil {
			return nil, err
		}
		return mechdraw.Params{
			"inner_diameter": b.Bore,
			"outer_diameter": b.Outer,
			"width":          b.Width,
		}, nil
	case FamilyFastener:
		f, err := LookupFastener(designation)
		if err != nil {
			return nil, err
		}
		return mechdraw.Params{
			"diameter":         f.Diameter,
			"pitch":            f.Pitch,
			"head_width":       f.HeadWidth,
			"head_height":      f.HeadHeight,
			"nut_height":       f.NutHeight,
			"washer_inner":     f.WasherInner,
			"washer_outer":     f.WasherOuter,
			"washer_thickness": f.WasherThickness,
		}, nil
	}
	return nil, &NotFoundError{Family: family, Designation: designation}
}

// Merge overlays resolved standard dimensions with the caller's explicit
// parameters. Explicitly supplied fields always win.
func Merge(resolved, explicit mechdraw.Params) mechdraw.Params {
	out := resolved.Clone()
	for k, v := range explicit {
		out[k] = v
	}
	return out
}

// Designations lists the known designations of a family in sorted order.
func Designations(family string) []string {
	tb, err := load()
	if err != nil {
		return nil
	}
	var names []string
	switch family {
	case FamilyBearing:
		for k := range tb.Bearings {
			names = append(names, k)
		}
	case FamilyFastener:
		for k := range tb.Fasteners {
			names = append(names, k)
		}
	}
	sort.Strings(names)
	return names
}
