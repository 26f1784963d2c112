// Package kpath provides kinded path parsing for query trees.
//
// Kinded paths encode both navigation and structure type in the syntax:
//   - .field - Object field access
//   - [index] - Array index
//   - .* / [*] - Wildcards
//
// Fields which would not otherwise parse, such as those containing
// dots, brackets or spaces, are written as Go-quoted strings:
//
//	filter."a.b"[0]
//
// # Usage
//
//	kp, err := kpath.Parse("filter.tags[0]")
//	fmt.Println(kp.String())
//
// # Related Packages
//
//   - github.com/signadot/qtree/ir - the tree addressed by kinded paths
package kpath
