// Package ir provides the tree produced by parsing a query string.
//
// # Node Structure
//
// A Node is a recursive tagged union.  The Type field says which of
// the other fields hold the value:
//
//   - StringType: a scalar, held in String
//   - ObjectType: an ordered mapping; Fields[i] is the key (a string
//     node) of Values[i]
//   - ArrayType: an ordered sequence held in Values
//   - NullType: used only when converting from generic values
//
// Objects keep the order in which their fields were added.  Keys
// are unique within an object when built by the parse package.
//
// Each node maintains links to its parent (Parent, ParentIndex and
// ParentField) so that KPath can report where a node lives:
//
//	n, err := root.GetKPath("filter.tags[0]")
//	fmt.Println(n.KPath()) // filter.tags[0]
//
// # Generic values
//
// ToAny converts a tree to string, map[string]any and []any values,
// which is the form used for expression evaluation and JSON interop.
// FromAny goes the other way and also accepts yaml.MapSlice to keep
// field order.
//
// # Thread Safety
//
// Nodes are not safe for concurrent mutation.  Parsing builds a fresh
// tree per call, so distinct trees may be used from distinct goroutines.
package ir
