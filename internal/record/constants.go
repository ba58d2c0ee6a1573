// Package record provides the entry type stored in every table slot and the
// vocabulary used when a table is rendered.
package record

// DeletedMarker is rendered in place of a tombstoned entry
const DeletedMarker = "Deleted"

// EmptyMarker is rendered for a slot that never held an entry
const EmptyMarker = "null"

// ChainTerminator closes every rendered chain
const ChainTerminator = "null"
