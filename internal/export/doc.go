// Package export serializes merged season rows to the CSV feed consumed by
// the downstream prediction service.
package export
