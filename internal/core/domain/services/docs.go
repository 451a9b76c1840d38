// Package services contains domain services that coordinate behavior across
// aggregates. Domain services hold no state of their own; they express rules
// that do not belong to a single aggregate, such as matching an order with a
// delivery agent.
package services
