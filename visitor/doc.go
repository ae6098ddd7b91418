// Package visitor offers callback based iteration over scene graph components.
// It provides slice, children and depth first visitors with early termination.
package visitor
