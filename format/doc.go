// Package format names the textual forms a query tree can be read from
// or written to.
package format
