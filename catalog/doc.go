// Package catalog provides a registry of named scales with an inverted
// interval index.
//
// A Catalog maps names to muzze.Scale values and maintains one roaring
// bitmap per semitone interval, holding the IDs of every registered scale
// containing that interval. Queries such as Containing(3, 7) intersect the
// per-interval bitmaps, so lookup cost is driven by the number of query
// intervals rather than the catalog size.
//
// Builtin returns a catalog pre-loaded with the named scale constants.
package catalog
