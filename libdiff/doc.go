// Package libdiff computes structural differences between query trees.
//
// # Usage
//
//	from := parse.Parse("a[]=x&b=hello")
//	to := parse.Parse("a[]=x&a[]=y&b=hallo")
//	for _, c := range libdiff.Diff(from, to) {
//		fmt.Println(c)
//	}
//	// + a[1]: "y"
//	// ~ b: h[-e-]{+a+}llo
//
// Object fields are aligned by name in order, arrays by index, and
// string values are diffed character by character.
//
// # Related Packages
//
//   - github.com/signadot/qtree/ir - the tree
package libdiff
