package kpath

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrSyntax = errors.New("kpath syntax error")

// KPath represents one segment of a kinded path, linked to the
// rest of the path through Next.  Exactly one of Field, FieldAll,
// Index or IndexAll is set.
type KPath struct {
	Field    *string // Object field name
	FieldAll bool    // Object field wildcard .*
	Index    *int    // Array index
	IndexAll bool    // Array wildcard [*]
	Next     *KPath
}

func Field(name string) *KPath {
	return &KPath{Field: &name}
}

func Index(i int) *KPath {
	return &KPath{Index: &i}
}

// Append returns a copy of p with seg added at the end.
func (p *KPath) Append(seg *KPath) *KPath {
	if p == nil {
		return seg.copySegment()
	}
	res := p.copySegment()
	tail := res
	for x := p.Next; x != nil; x = x.Next {
		tail.Next = x.copySegment()
		tail = tail.Next
	}
	tail.Next = seg.copySegment()
	return res
}

func (p *KPath) copySegment() *KPath {
	res := &KPath{FieldAll: p.FieldAll, IndexAll: p.IndexAll}
	if p.Field != nil {
		f := *p.Field
		res.Field = &f
	}
	if p.Index != nil {
		i := *p.Index
		res.Index = &i
	}
	return res
}

// String returns the kinded path string representation of this KPath.
func (p *KPath) String() string {
	if p == nil {
		return ""
	}
	buf := bytes.NewBuffer(nil)
	for x := p; x != nil; x = x.Next {
		switch {
		case x.FieldAll:
			if buf.Len() > 0 {
				buf.WriteByte('.')
			}
			buf.WriteByte('*')
		case x.Field != nil:
			if buf.Len() > 0 {
				buf.WriteByte('.')
			}
			buf.WriteString(QuoteField(*x.Field))
		case x.IndexAll:
			buf.WriteString("[*]")
		case x.Index != nil:
			fmt.Fprintf(buf, "[%d]", *x.Index)
		}
	}
	return buf.String()
}

// QuoteField returns f quoted if it would not parse back as a bare field.
func QuoteField(f string) string {
	if f == "" || f == "*" || strings.ContainsAny(f, ".[]\"' \t\n") {
		return strconv.Quote(f)
	}
	return f
}

// Parse parses a kinded path string into a KPath structure.
// The empty string is the root path and parses to nil.
func Parse(kp string) (*KPath, error) {
	if kp == "" {
		return nil, nil
	}
	var (
		head, tail *KPath
		i          int
	)
	add := func(seg *KPath) {
		if head == nil {
			head = seg
		} else {
			tail.Next = seg
		}
		tail = seg
	}
	for i < len(kp) {
		switch {
		case kp[i] == '[':
			seg, n, err := parseIndex(kp[i:])
			if err != nil {
				return nil, err
			}
			add(seg)
			i += n
		case kp[i] == '.' && head != nil:
			seg, n, err := parseField(kp[i+1:])
			if err != nil {
				return nil, err
			}
			add(seg)
			i += n + 1
		case head == nil:
			seg, n, err := parseField(kp)
			if err != nil {
				return nil, err
			}
			add(seg)
			i += n
		default:
			return nil, fmt.Errorf("%w: unexpected %q at %d in %q", ErrSyntax, kp[i], i, kp)
		}
	}
	return head, nil
}

func parseIndex(s string) (*KPath, int, error) {
	end := strings.IndexByte(s, ']')
	if end == -1 {
		return nil, 0, fmt.Errorf("%w: unterminated index in %q", ErrSyntax, s)
	}
	inner := s[1:end]
	if inner == "*" {
		return &KPath{IndexAll: true}, end + 1, nil
	}
	i, err := strconv.Atoi(inner)
	if err != nil || i < 0 {
		return nil, 0, fmt.Errorf("%w: bad index %q", ErrSyntax, inner)
	}
	return Index(i), end + 1, nil
}

func parseField(s string) (*KPath, int, error) {
	if s == "" {
		return nil, 0, fmt.Errorf("%w: empty field", ErrSyntax)
	}
	if s[0] == '"' {
		end := 1
		for end < len(s) {
			if s[end] == '\\' {
				end += 2
				continue
			}
			if s[end] == '"' {
				break
			}
			end++
		}
		if end >= len(s) {
			return nil, 0, fmt.Errorf("%w: unterminated quote in %q", ErrSyntax, s)
		}
		f, err := strconv.Unquote(s[:end+1])
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %w", ErrSyntax, err)
		}
		return Field(f), end + 1, nil
	}
	end := strings.IndexAny(s, ".[")
	if end == -1 {
		end = len(s)
	}
	if end == 0 {
		return nil, 0, fmt.Errorf("%w: empty field in %q", ErrSyntax, s)
	}
	f := s[:end]
	if f == "*" {
		return &KPath{FieldAll: true}, end, nil
	}
	return Field(f), end, nil
}
