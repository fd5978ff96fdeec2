// Package metrics derives the dashboard and report view models from record
// sets. Every function is pure: the same input always yields the same output,
// including the order of ties.
package metrics

import "sort"

// KeyValue is one row of a grouped view.
type KeyValue struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// counter accumulates integer metrics per key and remembers the order in
// which keys were first seen.
type counter struct {
	index map[string]int
	rows  []KeyValue
}

func newCounter() *counter {
	return &counter{index: map[string]int{}}
}

func (c *counter) add(key string, n int) {
	i, ok := c.index[key]
	if !ok {
		i = len(c.rows)
		c.index[key] = i
		c.rows = append(c.rows, KeyValue{Name: key})
	}
	c.rows[i].Value += n
}

// descending returns the rows by value, largest first; ties keep first-seen
// order.
func (c *counter) descending() []KeyValue {
	out := make([]KeyValue, len(c.rows))
	copy(out, c.rows)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value > out[j].Value })
	return out
}

// byKey returns the rows sorted by key ascending.
func (c *counter) byKey() []KeyValue {
	out := make([]KeyValue, len(c.rows))
	copy(out, c.rows)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
