// Package domain contains the core entities of Stellar Insights.
//
// Entities are plain structs serialized directly to JSON by the
// handlers. Input types carry validation tags and are distinct from
// the entities so that partial updates can distinguish "absent" from
// "set to zero".
package domain
