// Package model defines the small value types shared across windowrpq:
// vertex and state identifiers, edge labels, half-open time intervals, and
// the streaming tuple shapes that flow between the driver, the product-graph
// index, and the delta index.
//
// Nothing in this package depends on any other windowrpq package; it exists
// so every other package can share one definition of "what a tuple is"
// without import cycles.
package model
