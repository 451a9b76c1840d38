// Package agent implements the DeliveryAgent aggregate.
//
// A delivery agent is a shared mutable resource: its availability flag is the
// one piece of state contended by concurrent order acceptances. Reserve and
// Release express the pool semantics at the aggregate level; the repository
// layer supplies the cross-request exclusivity by locking candidate rows
// inside the reservation transaction.
package agent
