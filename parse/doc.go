// Package parse turns a raw URL query string into a tree.
//
// Structure is expressed with bracket notation in keys:
//
//	a=1                  {a: "1"}
//	a[b]=1&a[c]=2        {a: {b: "1", c: "2"}}
//	a[]=x&a[]=y          {a: ["x", "y"]}
//	a[x][0]=v            {a: {x: ["v"]}}
//
// Parsing happens in two passes.  The first decodes the whole string,
// splits it into segments and walks each key's bracket path, creating
// objects as needed.  The second is Normalize, which turns every nested
// object whose keys all parse as integers into an array of its values
// in insertion order.  The root object is never turned into an array
// unless PromoteRoot is given.
//
// Parse never fails.  Malformed escapes, brackets and segments end up
// as literal keys and values.
//
// # Duplicates
//
// A key without brackets keeps its first value; later segments with
// the same key are dropped.  A bracketed path overwrites whatever was
// previously at that exact path.
//
// # Values containing '='
//
// The key is the text before the first '=' of a segment and the value
// is the text after the last '='.  So "a=b=c" gives {a: "c"}.  Use
// SplitFirstEquals(true) to get {a: "b=c"} instead.
package parse
