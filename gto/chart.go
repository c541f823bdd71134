package gto

import (
	"sort"

	"github.com/preflop-tools/gtocoach/poker"
)

// Chart is the complete parsed chart: one GTORange per (position, scenario)
// column. Charts are built once by the parser and read-only thereafter, so a
// single Chart may be shared across any number of concurrent readers.
type Chart struct {
	Name   string
	ranges map[RangeKey]*GTORange
}

// Range returns the parsed range for a (position, scenario) pair.
func (c *Chart) Range(pos poker.Position, scenario Scenario) (*GTORange, bool) {
	r, ok := c.ranges[RangeKey{Position: pos, Scenario: scenario}]
	return r, ok
}

// Keys returns every (position, scenario) column in the chart, ordered by
// position acting order then scenario declaration order.
func (c *Chart) Keys() []RangeKey {
	keys := make([]RangeKey, 0, len(c.ranges))
	for k := range c.ranges {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Position != keys[j].Position {
			return keys[i].Position.Order() < keys[j].Position.Order()
		}
		return keys[i].Scenario < keys[j].Scenario
	})
	return keys
}

// ScenariosFor returns the scenarios the chart covers for a position, in
// declaration order.
func (c *Chart) ScenariosFor(pos poker.Position) []Scenario {
	var out []Scenario
	for _, s := range scenarios {
		if _, ok := c.ranges[RangeKey{Position: pos, Scenario: s}]; ok {
			out = append(out, s)
		}
	}
	return out
}

// PositionsFor returns the positions the chart covers for a scenario, in
// acting order.
func (c *Chart) PositionsFor(scenario Scenario) []poker.Position {
	all, _ := poker.PositionsForTableSize(6)
	var out []poker.Position
	for _, p := range all {
		if _, ok := c.ranges[RangeKey{Position: p, Scenario: scenario}]; ok {
			out = append(out, p)
		}
	}
	return out
}

// ToMap returns a plain key-value representation of every column.
func (c *Chart) ToMap() map[string]any {
	cols := make(map[string]any, len(c.ranges))
	for _, k := range c.Keys() {
		cols[k.String()] = c.ranges[k].ToMap()
	}
	return map[string]any{
		"name":   c.Name,
		"ranges": cols,
	}
}
