package analytics

import "sort"

// Bucket is one {category, count} entry of an aggregate result.
type Bucket struct {
	Label string
	Count int
}

// counter accumulates counts while remembering first-seen label order, so
// descending sorts stay stable for ties.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(label string) {
	if _, ok := c.counts[label]; !ok {
		c.order = append(c.order, label)
	}
	c.counts[label]++
}

// sortedDesc returns the buckets sorted by count descending; equal counts
// keep first-encountered order.
func (c *counter) sortedDesc() []Bucket {
	out := make([]Bucket, 0, len(c.order))
	for _, label := range c.order {
		out = append(out, Bucket{Label: label, Count: c.counts[label]})
	}
	sort.SliceStable(out, func(i, k int) bool {
		return out[i].Count > out[k].Count
	})
	return out
}
