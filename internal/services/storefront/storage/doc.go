// Package storage declares persistence contracts for storefront-owned state:
// visitor sessions and small runtime settings.
//
// Catalog and account data live in the remote backend and are never stored
// here.
package storage
