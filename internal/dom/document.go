package dom

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// controlDefault is the parse-time state of a form control. Form.Reset
// restores controls to it.
type controlDefault struct {
	value    string
	hasValue bool
	checked  bool
}

// Document is a parsed HTML page that handlers can query and mutate.
//
// A Document is not safe for concurrent use. It is meant to be owned by a
// single goroutine (the UI update loop or a one-shot command), the same way
// a browser confines its DOM to the UI thread.
type Document struct {
	root     *html.Node
	elements map[*html.Node]*Element
	defaults map[*html.Node]controlDefault

	active     *Element
	scrollTo   *Element
	navigation *string
}

// Parse reads HTML markup and builds a Document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	d := &Document{
		root:     root,
		elements: make(map[*html.Node]*Element),
		defaults: make(map[*html.Node]controlDefault),
	}
	walk(root, func(n *html.Node) bool {
		if isControl(n) {
			v, ok := attr(n, "value")
			_, checked := attr(n, "checked")
			d.defaults[n] = controlDefault{value: v, hasValue: ok, checked: checked}
		}
		return true
	})
	return d, nil
}

// ParseString is a convenience wrapper around Parse.
func ParseString(markup string) (*Document, error) {
	return Parse(strings.NewReader(markup))
}

// Render writes the current state of the document as HTML.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// Root returns the <html> element.
func (d *Document) Root() *Element {
	for c := d.root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return d.wrap(c)
		}
	}
	return nil
}

// ElementByID returns the first element whose id attribute equals id, or nil.
func (d *Document) ElementByID(id string) *Element {
	var found *html.Node
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode {
			if v, ok := attr(n, "id"); ok && v == id {
				found = n
				return false
			}
		}
		return true
	})
	if found == nil {
		return nil
	}
	return d.wrap(found)
}

// ElementsByName returns the elements whose name attribute equals name, in
// document order.
func (d *Document) ElementsByName(name string) []*Element {
	return d.collect(d.root, func(n *html.Node) bool {
		v, ok := attr(n, "name")
		return ok && v == name
	})
}

// ElementsByClass returns the elements carrying class, in document order.
func (d *Document) ElementsByClass(class string) []*Element {
	return d.collect(d.root, func(n *html.Node) bool {
		return hasClass(n, class)
	})
}

// ElementsByTag returns the elements with the given tag name, in document order.
func (d *Document) ElementsByTag(tag string) []*Element {
	tag = strings.ToLower(tag)
	return d.collect(d.root, func(n *html.Node) bool { return n.Data == tag })
}

// Checked returns the value of the first checked control named name.
func (d *Document) Checked(name string) (string, bool) {
	for _, el := range d.ElementsByName(name) {
		if el.Checked() {
			return el.Value(), true
		}
	}
	return "", false
}

// CheckedValues returns the values of every checked control named name.
func (d *Document) CheckedValues(name string) []string {
	var out []string
	for _, el := range d.ElementsByName(name) {
		if el.Checked() {
			out = append(out, el.Value())
		}
	}
	return out
}

// ActiveElement returns the focused element, or nil.
func (d *Document) ActiveElement() *Element {
	return d.active
}

// ScrollTarget returns the element most recently scrolled into view.
func (d *Document) ScrollTarget() *Element {
	return d.scrollTo
}

// TakeScrollTarget returns the pending scroll target and clears it.
func (d *Document) TakeScrollTarget() *Element {
	el := d.scrollTo
	d.scrollTo = nil
	return el
}

// NavigationRequested reports whether an unprevented form submission asked
// the host to navigate away, and to which action URL.
func (d *Document) NavigationRequested() (string, bool) {
	if d.navigation == nil {
		return "", false
	}
	return *d.navigation, true
}

// TakeNavigation returns the pending navigation request and clears it.
func (d *Document) TakeNavigation() (string, bool) {
	action, ok := d.NavigationRequested()
	d.navigation = nil
	return action, ok
}

func (d *Document) wrap(n *html.Node) *Element {
	if n == nil {
		return nil
	}
	if el, ok := d.elements[n]; ok {
		return el
	}
	el := &Element{doc: d, node: n}
	d.elements[n] = el
	return el
}

func (d *Document) collect(from *html.Node, match func(*html.Node) bool) []*Element {
	var out []*Element
	walk(from, func(n *html.Node) bool {
		if n != from && n.Type == html.ElementNode && match(n) {
			out = append(out, d.wrap(n))
		}
		return true
	})
	return out
}

// walk visits n and its descendants depth-first in document order until fn
// returns false.
func walk(n *html.Node, fn func(*html.Node) bool) bool {
	if !fn(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, fn) {
			return false
		}
	}
	return true
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func hasClass(n *html.Node, class string) bool {
	v, ok := attr(n, "class")
	if !ok {
		return false
	}
	for _, c := range strings.Fields(v) {
		if c == class {
			return true
		}
	}
	return false
}

// isControl reports whether n is an <input>. Other form-associated elements
// are not modelled.
func isControl(n *html.Node) bool {
	return n.Type == html.ElementNode && n.Data == "input"
}
