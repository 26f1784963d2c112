// Package qtree matches query trees against patterns.
//
// A pattern is itself a tree, usually parsed from a query string.  A
// document matches when every field of the pattern is present in the
// document with a matching value:
//
//	doc := parse.Parse("q=go&page=2&f[tag][]=x")
//	ok := qtree.Match(doc, parse.Parse("f[tag][]=x"))  // true
//
// The tree, parser and encoders live in the ir, parse and encode
// packages.
package qtree
