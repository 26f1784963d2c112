// Package patch applies JSON Patch (RFC 6902) and JSON Merge Patch
// (RFC 7386) documents to query trees.
//
// Patch documents may be written in JSON or YAML.  Since trees only
// hold strings, numbers and booleans in a patch become strings.
// Fields of the result keep the order of the input tree; fields added
// by the patch follow, sorted.
package patch
