// Package report filters, orders, and renders rated titles.
//
// Output is deliberately byte-stable: the same extracted titles and
// threshold always render identically, so repeated runs against an
// unchanged source can be diffed or snapshotted.
package report
