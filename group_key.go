package dataset

import "strings"

// A GroupKey is the tuple of values shared by every Row of a group,
// ordered like the columns it was computed over. Group identity is
// a value: two GroupKeys with equal values identify the same group.
type GroupKey []string

// Equal returns true iff this GroupKey holds the same values as another, in the same order
func (k GroupKey) Equal(other GroupKey) bool {
	if len(k) != len(other) {
		return false
	}
	for i := range k {
		if k[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of this GroupKey
func (k GroupKey) Clone() GroupKey {
	if k == nil {
		return nil
	}
	res := make(GroupKey, len(k))
	copy(res, k)
	return res
}

// String returns a textual representation of this GroupKey
func (k GroupKey) String() string {
	return "(" + strings.Join(k, ", ") + ")"
}
