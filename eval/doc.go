// Package eval evaluates expressions against query trees.
//
// Expressions use the expr language (github.com/expr-lang/expr).  The
// top level fields of the tree are the variables of the expression;
// fields which are absent evaluate to nil rather than failing:
//
//	root := parse.Parse("user[name]=ann&tags[]=a&tags[]=b")
//	res, err := eval.Eval(root, `user.name + ":" + string(len(tags))`)
//	// res is the string "ann:2"
//
//	ok, err := eval.Match(root, `"b" in tags && page == nil`)
//	// ok is true
//
// A tree whose root is an array is exposed as the variable "root".
package eval
