// SPDX-License-Identifier: MIT

// Package sort implements the external sort routine: an in-place
// iterative bottom-up merge sort over a raw element slice, parametrised
// by a comparator. It has no dependency on gcs.Policy or gcs.Sequence —
// it is a pure function any caller can use directly, and
// gcs/seq.Sequence.Sort is simply a thin wrapper around it.
package sort
