// Package xmldoc parses an XML filing into a small element tree that supports
// the lookups the extractor needs: first descendant by name, all descendants
// by name, following sibling by name, and text content.
package xmldoc

import (
	"encoding/xml"
	"strings"
)

// Element is one XML element. Names are local names; namespace prefixes are
// dropped because IRS e-file documents use a single default namespace.
type Element struct {
	Name     string
	Space    string
	Attrs    []xml.Attr
	Children []*Element

	parent *Element
	runs   []textRun
}

// textRun is character data that appeared before child number `before`.
type textRun struct {
	before int
	text   string
}

// Find returns the first descendant named name in document order, or nil.
// The receiver itself is not considered. A nil receiver yields nil.
func (e *Element) Find(name string) *Element {
	if e == nil {
		return nil
	}
	for _, c := range e.Children {
		if c.Name == name {
			return c
		}
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every descendant named name in document order, including
// matches nested inside other matches.
func (e *Element) FindAll(name string) []*Element {
	if e == nil {
		return nil
	}
	var out []*Element
	e.walk(func(el *Element) {
		if el.Name == name {
			out = append(out, el)
		}
	})
	return out
}

func (e *Element) walk(fn func(*Element)) {
	for _, c := range e.Children {
		fn(c)
		c.walk(fn)
	}
}

// NextSibling returns the first sibling after e named name, or nil.
func (e *Element) NextSibling(name string) *Element {
	if e == nil || e.parent == nil {
		return nil
	}
	siblings := e.parent.Children
	for i, s := range siblings {
		if s != e {
			continue
		}
		for _, next := range siblings[i+1:] {
			if next.Name == name {
				return next
			}
		}
		break
	}
	return nil
}

// Text returns the concatenated character data of e and all its descendants,
// in document order, untrimmed. A nil receiver yields "".
func (e *Element) Text() string {
	if e == nil {
		return ""
	}
	var sb strings.Builder
	e.writeText(&sb)
	return sb.String()
}

func (e *Element) writeText(sb *strings.Builder) {
	r := 0
	for i, c := range e.Children {
		for r < len(e.runs) && e.runs[r].before <= i {
			sb.WriteString(e.runs[r].text)
			r++
		}
		c.writeText(sb)
	}
	for ; r < len(e.runs); r++ {
		sb.WriteString(e.runs[r].text)
	}
}
