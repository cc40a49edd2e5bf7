// Package queries contains read-only operations over the order store.
package queries
