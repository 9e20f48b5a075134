// Package errors provides application error types for Stellar Insights.
//
// This package defines:
//   - AppError type with error classification
//   - Error constructors for common error types
//   - Error type checking helpers
//   - HTTP status code mapping
//
// # Error Types
//
//   - NotFound: Resource does not exist (404)
//   - Validation: Invalid input data (400)
//   - Conflict: Uniqueness violation (409)
//   - Unavailable: Storage or infrastructure fault (500)
//   - Integrity: Data violates a documented invariant (500)
//
// # Usage
//
// Create errors using constructor functions:
//
//	return apperrors.NotFound("anchor")
//	return apperrors.Validation("stellarAccount is required")
//
// Check error types:
//
//	if apperrors.IsNotFound(err) {
//	    // Handle not found
//	}
//
// # Error Wrapping
//
// Errors support wrapping with fmt.Errorf:
//
//	return fmt.Errorf("operation failed: %w", apperrors.NotFound("anchor"))
package errors
