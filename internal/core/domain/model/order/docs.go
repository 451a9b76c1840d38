// Package order implements the Order aggregate and its lifecycle state machine.
//
// An order moves through a fixed status graph from placement to delivery or
// rejection. The aggregate owns the canonical status field: every mutation goes
// through a transition method that validates the move against the graph, so an
// order can never reach a state the business flow does not allow. Line items
// are fixed at creation time and snapshot menu prices, which keeps historical
// orders immune to later menu changes.
package order
