package mosaic

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed tiers.yaml
var defaultTiersYAML []byte

// Tier fixes the density of the mosaic for a range of canvas widths.
type Tier struct {
	Name string `yaml:"name"`

	// MaxWidth is the exclusive upper bound of canvas widths this tier
	// serves. Zero on the last tier means unbounded.
	MaxWidth float64 `yaml:"maxWidth"`

	LogoScale   float64 `yaml:"logoScale"`
	TileRadius  float64 `yaml:"tileRadius"`
	TileSpacing float64 `yaml:"tileSpacing"`

	// Hit radii for the exact heart-shaped footprints around the cursor.
	MainHeartRadius        float64 `yaml:"mainHeartRadius"`
	SurroundingHeartRadius float64 `yaml:"surroundingHeartRadius"`
}

// TierSet is an ordered list of tiers keyed by width breakpoints.
type TierSet struct {
	Tiers []Tier `yaml:"tiers"`
}

// DefaultTiers returns the built-in mobile, tablet and desktop tiers.
func DefaultTiers() *TierSet {
	ts, err := LoadTiers(defaultTiersYAML)
	if err != nil {
		panic(fmt.Sprintf("mosaic: embedded tiers.yaml is invalid: %v", err))
	}
	return ts
}

// LoadTiers parses and validates a YAML tier document.
func LoadTiers(data []byte) (*TierSet, error) {
	var ts TierSet
	if err := yaml.Unmarshal(data, &ts); err != nil {
		return nil, fmt.Errorf("mosaic: failed to parse tiers: %w", err)
	}
	if err := ts.Validate(); err != nil {
		return nil, fmt.Errorf("mosaic: invalid tiers: %w", err)
	}
	return &ts, nil
}

// Validate checks that breakpoints ascend, only the last tier is unbounded,
// and every size is positive.
func (ts *TierSet) Validate() error {
	if len(ts.Tiers) == 0 {
		return fmt.Errorf("no tiers defined")
	}
	prev := 0.0
	for i, t := range ts.Tiers {
		last := i == len(ts.Tiers)-1
		switch {
		case !last && t.MaxWidth <= prev:
			return fmt.Errorf("tier %d (%s): maxWidth %.1f must exceed %.1f", i, t.Name, t.MaxWidth, prev)
		case last && t.MaxWidth != 0:
			return fmt.Errorf("tier %d (%s): last tier must not set maxWidth", i, t.Name)
		case t.LogoScale <= 0:
			return fmt.Errorf("tier %d (%s): logoScale must be positive", i, t.Name)
		case t.TileRadius <= 0:
			return fmt.Errorf("tier %d (%s): tileRadius must be positive", i, t.Name)
		case t.TileSpacing <= 0:
			return fmt.Errorf("tier %d (%s): tileSpacing must be positive", i, t.Name)
		case t.MainHeartRadius <= 0:
			return fmt.Errorf("tier %d (%s): mainHeartRadius must be positive", i, t.Name)
		case t.SurroundingHeartRadius < t.MainHeartRadius:
			return fmt.Errorf("tier %d (%s): surroundingHeartRadius %.1f is smaller than mainHeartRadius %.1f",
				i, t.Name, t.SurroundingHeartRadius, t.MainHeartRadius)
		}
		prev = t.MaxWidth
	}
	return nil
}

// Select returns the tier for a canvas width: the first tier whose
// breakpoint exceeds width, or the last tier.
func (ts *TierSet) Select(width float64) Tier {
	for _, t := range ts.Tiers {
		if t.MaxWidth > 0 && width < t.MaxWidth {
			return t
		}
	}
	return ts.Tiers[len(ts.Tiers)-1]
}
