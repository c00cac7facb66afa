// Package chart defines the seating-chart data model: sections that hold
// either theatre rows or banquet tables, the seats they carry, and the
// geometry helpers the interaction engine needs to treat them uniformly.
//
// # Sections
//
// A [Section] groups elements that share a color or pricing tier. Its
// [Container] is a tagged variant: exactly one of [RowList] or [TableList].
// The JSON form keeps the familiar containerType field but decoding rejects
// any section that carries both arrays or disagrees with its declared type.
//
// # Snapshots
//
// Hosts own the canonical chart. The engine receives a [Chart] value per
// interaction frame and never mutates it; helpers such as [Table.WithCapacity]
// and [Section.WithTable] return modified copies that are handed back to the
// host through callbacks.
//
// # Special Areas
//
// A [Table] with capacity 0 is a special area (stage, dance floor, buffet).
// It never carries seats, uses a larger default footprint, and is the only
// element that can be resized.
package chart
