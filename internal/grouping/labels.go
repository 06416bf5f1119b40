package grouping

import "github.com/go-sif/dataset"

// Labels assigns an ordinal label to each unit, where a unit is a non-empty list of
// positions. Units are labelled by the values of their first position over cols, with
// labels 0, 1, 2... handed out in order of first occurrence. Two units share a label
// iff their values agree on every column in cols.
func Labels(t Table, units [][]int, cols []int) []int {
	g := newGroups(0)
	labels := make([]int, len(units))
	buf := make(dataset.GroupKey, len(cols))
	for u, unit := range units {
		for i, c := range cols {
			buf[i] = t.Value(unit[0], c)
		}
		labels[u] = g.insert(buf)
	}
	return labels
}

// CountDistinct returns the number of distinct value tuples over cols among positions
func CountDistinct(t Table, positions []int, cols []int) int {
	g := newGroups(0)
	buf := make(dataset.GroupKey, len(cols))
	for _, pos := range positions {
		for i, c := range cols {
			buf[i] = t.Value(pos, c)
		}
		g.insert(buf)
	}
	return g.Len()
}
