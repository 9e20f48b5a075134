// Package validator wraps go-playground/validator with project-wide
// custom rules and JSON-friendly error formatting.
package validator
