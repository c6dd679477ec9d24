// Package ports defines the interfaces the compliance engine depends on.
// Domain logic depends on these abstractions; the policy package supplies
// the default implementations.
package ports
