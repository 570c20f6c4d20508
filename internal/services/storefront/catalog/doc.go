// Package catalog models the remote product catalog and fetches its pages.
//
// A Source is one paginated REST endpoint returning the envelope
// {"data": [...], "pagination": {...}}. Products from different sources may
// share numeric ids, so rendering keys combine id and code.
package catalog
