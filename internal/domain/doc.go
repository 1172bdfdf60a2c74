// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (kinds, keys, candidates), contracts (interfaces) and
// the error taxonomy only.
package domain
