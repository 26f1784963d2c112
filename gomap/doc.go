// Package gomap maps query trees to Go values and back.
//
// Struct fields are matched by their `qt` tag, or by name ignoring case
// when there is no tag.  A tag of "-" skips the field and the option
// "omitempty" leaves zero values out when encoding:
//
//	type Search struct {
//		Q     string   `qt:"q"`
//		Page  int      `qt:"page,omitempty"`
//		Tags  []string `qt:"tags"`
//		Debug bool     `qt:"-"`
//	}
//
//	var s Search
//	err := gomap.Load("q=go&page=2&tags[]=a&tags[]=b", &s)
//
// Scalars in a tree are always strings; they are converted to the kind
// of the destination with strconv.  A single value decoded into a slice
// gives a slice of length one.
package gomap
