// Package repository contains data access implementations.
//
// Repositories are the only components that touch persisted rows.
// They own query construction, enforce the domain's identity and
// relationship invariants, and classify storage errors into the
// application taxonomy exactly once at this boundary.
package repository
