// Package sqlite provides the storefront persistence adapter backed by SQLite.
package sqlite
