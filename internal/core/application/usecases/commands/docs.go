// Package commands contains business operations that modify orders.
// Every command follows the same pattern: a guarded command value built by its
// constructor, and a handler that validates it and delegates to the
// ports.OrderRepository.
package commands
