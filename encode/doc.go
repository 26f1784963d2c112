// Package encode renders query trees as text.
//
// # Usage
//
//	node := parse.Parse("a[]=x&a[]=y&b[c]=z")
//
//	// indented JSON, the default
//	err := encode.Encode(node, os.Stdout)
//
//	// compact JSON
//	err = encode.Encode(node, os.Stdout, encode.EncodeWire(true))
//
//	// YAML
//	err = encode.Encode(node, os.Stdout, encode.EncodeFormat(format.YAMLFormat))
//
//	// back to a query string: a[0]=x&a[1]=y&b[c]=z
//	err = encode.Encode(node, os.Stdout, encode.EncodeFormat(format.QueryFormat))
//
// Object fields are always written in tree order.
//
// # Related Packages
//
//   - github.com/signadot/qtree/ir - the tree
//   - github.com/signadot/qtree/parse - query strings to trees
package encode
