// Package handler contains HTTP request handlers for Stellar Insights.
//
// Handlers are the entry point for HTTP requests, responsible for:
//   - Request parsing
//   - Calling the appropriate repository
//   - Response formatting
//   - Error response mapping
//
// # Error Handling
//
// Handlers convert domain errors to appropriate HTTP status codes
// using the apperrors package for consistent error responses.
// Input validation itself lives in the repositories; handlers only
// reject requests that cannot be parsed at all.
//
// # Thread Safety
//
// All handlers are safe for concurrent use.
package handler
