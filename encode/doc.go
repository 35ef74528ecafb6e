// Package encode serializes ir trees to JSON text, compact by default,
// with optional indentation and terminal colors.
package encode
