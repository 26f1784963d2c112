package parse

type parseOpts struct {
	splitFirstEquals bool
	promoteRoot      bool
}

type ParseOption func(*parseOpts)

// SplitFirstEquals makes the value of a segment the text after its
// first '=' rather than after its last one.
func SplitFirstEquals(v bool) ParseOption {
	return func(o *parseOpts) { o.splitFirstEquals = v }
}

// PromoteRoot lets Normalize turn the root itself into an array when
// all top level keys are integers.
func PromoteRoot(v bool) ParseOption {
	return func(o *parseOpts) { o.promoteRoot = v }
}
