// Package season merges standings and advanced team stats into the rows the
// export feed is built from.
package season
