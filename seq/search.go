// SPDX-License-Identifier: MIT

package seq

import gcssort "github.com/galudino/gcs/sort"

// Search returns the index of the first element comparing equal to v per
// the policy's Compare, or -1 if none does.
func (s *Sequence[T]) Search(v T) int {
	nilCheck(s, "Search")
	cmp := resolveCompare(s.policy)
	for i := 0; i < s.length; i++ {
		if cmp(s.data[i], v) == 0 {
			return i
		}
	}
	return -1
}

// Sort orders the live elements in place via the external sort routine
// (gcs/sort.Stable), using the policy's Compare.
func (s *Sequence[T]) Sort() {
	nilCheck(s, "Sort")
	gcssort.Stable(s.data[:s.length], resolveCompare(s.policy))
}
