// Package order provides the Order aggregate of the tracking service and the
// rules that guard it.
//
// The package includes:
//   - Order: an immutable record of id, title and status
//   - Status: the closed set of lifecycle states
//   - Patch: a partial update applied with truthy-field semantics
//   - CreatePayload / UpdatePayload: typed results of validating untrusted JSON
//
// Key business rules:
//   - Order ids are assigned by the store and never change
//   - Status must be one of PROCESSING, IN_TRANSIT or DELIVERED
//   - An update only overwrites fields whose new value is non-empty
//   - Payloads are narrowed to title and status before they touch state
package order
