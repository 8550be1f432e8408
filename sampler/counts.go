// SPDX-License-Identifier: MIT

package sampler

import "sort"

// Counts maps a big-endian bit label to the number of shots that observed it.
// Labels that were never observed are absent.
type Counts map[string]int

// Total returns the number of shots recorded.
func (c Counts) Total() int {
	var n int
	for _, v := range c {
		n += v
	}

	return n
}

// Keys returns the observed labels in ascending order.
func (c Counts) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// Frequency returns the observed fraction for label, or 0 for an empty Counts.
func (c Counts) Frequency(label string) float64 {
	total := c.Total()
	if total == 0 {
		return 0
	}

	return float64(c[label]) / float64(total)
}
