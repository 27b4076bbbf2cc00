package xmldoc

import (
	"fmt"
	"io"

	xpp "github.com/mmcdole/goxpp"
	"golang.org/x/net/html/charset"
)

// Parse reads a whole XML document and returns a document node whose single
// child is the root element, so Find on the result also matches the root.
func Parse(r io.Reader) (*Element, error) {
	p := xpp.NewXMLPullParser(r, true, charset.NewReaderLabel)

	doc := &Element{}
	cur := doc
	for {
		event, err := p.Next()
		if err != nil {
			return nil, fmt.Errorf("parse xml: %w", err)
		}

		switch event {
		case xpp.StartTag:
			el := &Element{
				Name:   p.Name,
				Space:  p.Space,
				Attrs:  p.Attrs,
				parent: cur,
			}
			cur.Children = append(cur.Children, el)
			cur = el
		case xpp.EndTag:
			if cur.parent == nil {
				return nil, fmt.Errorf("parse xml: unexpected end tag </%s>", p.Name)
			}
			cur = cur.parent
		case xpp.Text:
			if cur == doc {
				continue
			}
			cur.runs = append(cur.runs, textRun{before: len(cur.Children), text: p.Text})
		case xpp.EndDocument:
			if cur != doc {
				return nil, fmt.Errorf("parse xml: unexpected end of document inside <%s>", cur.Name)
			}
			if len(doc.Children) == 0 {
				return nil, fmt.Errorf("parse xml: no root element")
			}
			return doc, nil
		}
	}
}
