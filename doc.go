// Package suffixidx builds and searches two classical full-text indexes
// over a sentinel-terminated byte string: a suffix array constructed with
// SA-IS (induced sorting) and a suffix tree constructed with Ukkonen's
// online algorithm. Both indexes expose substring search, and either can be
// converted into the other: tree to array in linear time, array to tree in
// linear time apart from its suffix-link pass (see TreeFromArray). The LCP
// array is a first-class
// companion structure to the suffix array and is also derivable from the
// tree via a depth-first traversal.
//
// The package treats the input as opaque bytes. Callers are responsible for
// appending a sentinel byte — by convention 0x00 — that does not occur
// anywhere else in the text; Build rejects texts that violate this.
package suffixidx
