package dom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Element wraps an element node of a Document. Element values are stable:
// looking up the same node twice yields the same *Element, so listeners
// registered through one lookup fire for the other.
type Element struct {
	doc       *Document
	node      *html.Node
	listeners map[string][]Listener
}

// Tag returns the lower-case tag name.
func (e *Element) Tag() string { return e.node.Data }

// ID returns the id attribute.
func (e *Element) ID() string { return e.Attr("id") }

// Name returns the name attribute.
func (e *Element) Name() string { return e.Attr("name") }

// Type returns the lower-cased type attribute. Inputs default to "text" and
// buttons to "submit".
func (e *Element) Type() string {
	t := strings.ToLower(e.Attr("type"))
	if t != "" {
		return t
	}
	switch e.node.Data {
	case "input":
		return "text"
	case "button":
		return "submit"
	}
	return ""
}

// Attr returns the value of the named attribute, or "".
func (e *Element) Attr(key string) string {
	v, _ := attr(e.node, key)
	return v
}

// HasAttr reports whether the named attribute is present.
func (e *Element) HasAttr(key string) bool {
	_, ok := attr(e.node, key)
	return ok
}

// SetAttr sets or replaces an attribute.
func (e *Element) SetAttr(key, val string) {
	for i, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == key {
			e.node.Attr[i].Val = val
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: key, Val: val})
}

// RemoveAttr deletes an attribute if present.
func (e *Element) RemoveAttr(key string) {
	attrs := e.node.Attr[:0]
	for _, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == key {
			continue
		}
		attrs = append(attrs, a)
	}
	e.node.Attr = attrs
}

// ClassName returns the raw class attribute.
func (e *Element) ClassName() string { return e.Attr("class") }

// SetClassName replaces the class attribute.
func (e *Element) SetClassName(class string) { e.SetAttr("class", class) }

// Classes returns the class list.
func (e *Element) Classes() []string { return strings.Fields(e.ClassName()) }

// HasClass reports whether class is in the class list.
func (e *Element) HasClass(class string) bool { return hasClass(e.node, class) }

// AddClass appends each class not already present.
func (e *Element) AddClass(classes ...string) {
	list := e.Classes()
	for _, c := range classes {
		if !e.HasClass(c) {
			list = append(list, c)
			e.SetClassName(strings.Join(list, " "))
		}
	}
}

// RemoveClass drops each given class from the class list.
func (e *Element) RemoveClass(classes ...string) {
	if !e.HasAttr("class") {
		return
	}
	drop := make(map[string]struct{}, len(classes))
	for _, c := range classes {
		drop[c] = struct{}{}
	}
	kept := make([]string, 0, len(e.Classes()))
	for _, c := range e.Classes() {
		if _, ok := drop[c]; !ok {
			kept = append(kept, c)
		}
	}
	e.SetClassName(strings.Join(kept, " "))
}

// TextContent returns the concatenated text of all descendant text nodes.
func (e *Element) TextContent() string {
	var b strings.Builder
	walk(e.node, func(n *html.Node) bool {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		return true
	})
	return b.String()
}

// SetTextContent replaces all children with a single text node. An empty
// string leaves the element with no children.
func (e *Element) SetTextContent(text string) {
	e.removeChildren()
	if text != "" {
		e.node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	}
}

// InnerHTML serializes the element's children.
func (e *Element) InnerHTML() string {
	var b strings.Builder
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		_ = html.Render(&b, c)
	}
	return b.String()
}

// SetInnerHTML replaces the element's children with the parsed fragment.
// Markup that fails to parse is inserted as text.
func (e *Element) SetInnerHTML(markup string) {
	nodes, err := html.ParseFragment(strings.NewReader(markup), e.fragmentContext())
	e.removeChildren()
	if err != nil {
		e.SetTextContent(markup)
		return
	}
	for _, n := range nodes {
		e.node.AppendChild(n)
	}
}

// fragmentContext returns a node usable as the context for ParseFragment.
// Nodes created outside the parser may lack DataAtom, which the fragment
// parser requires.
func (e *Element) fragmentContext() *html.Node {
	if e.node.DataAtom != 0 {
		return e.node
	}
	return &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
}

// Hidden reports whether the hidden attribute is present.
func (e *Element) Hidden() bool { return e.HasAttr("hidden") }

// SetHidden adds or removes the hidden attribute.
func (e *Element) SetHidden(hidden bool) {
	if hidden {
		e.SetAttr("hidden", "")
		return
	}
	e.RemoveAttr("hidden")
}

// Value returns the current value of a control. Checkboxes and radios
// without a value attribute report "on".
func (e *Element) Value() string {
	v, ok := attr(e.node, "value")
	if !ok && e.isCheckable() {
		return "on"
	}
	return v
}

// SetValue sets the current value of a control.
func (e *Element) SetValue(v string) { e.SetAttr("value", v) }

// Checked reports whether a checkbox or radio is checked.
func (e *Element) Checked() bool {
	return e.isCheckable() && e.HasAttr("checked")
}

// SetChecked checks or unchecks a checkbox or radio. Checking a radio
// unchecks every other radio of the same name in the same form.
func (e *Element) SetChecked(checked bool) {
	if !e.isCheckable() {
		return
	}
	if !checked {
		e.RemoveAttr("checked")
		return
	}
	if e.Type() == "radio" && e.Name() != "" {
		for _, other := range e.doc.ElementsByName(e.Name()) {
			if other != e && other.Type() == "radio" && other.Form() == e.Form() {
				other.RemoveAttr("checked")
			}
		}
	}
	e.SetAttr("checked", "")
}

func (e *Element) isCheckable() bool {
	if e.node.Data != "input" {
		return false
	}
	t := e.Type()
	return t == "checkbox" || t == "radio"
}

// Form returns the nearest ancestor <form>, or nil.
func (e *Element) Form() *Element {
	for p := e.node.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode && p.Data == "form" {
			return e.doc.wrap(p)
		}
	}
	return nil
}

// Label returns the trimmed text of the label describing a control: the
// enclosing <label>, or else the <label for=id>.
func (e *Element) Label() string {
	for p := e.node.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode && p.Data == "label" {
			return collapseSpace(e.doc.wrap(p).TextContent())
		}
	}
	if id := e.ID(); id != "" {
		for _, l := range e.doc.ElementsByTag("label") {
			if l.Attr("for") == id {
				return collapseSpace(l.TextContent())
			}
		}
	}
	return ""
}

// ElementsByTag returns descendant elements with the given tag name.
func (e *Element) ElementsByTag(tag string) []*Element {
	tag = strings.ToLower(tag)
	return e.doc.collect(e.node, func(n *html.Node) bool { return n.Data == tag })
}

// ElementsByClass returns descendant elements carrying class.
func (e *Element) ElementsByClass(class string) []*Element {
	return e.doc.collect(e.node, func(n *html.Node) bool { return hasClass(n, class) })
}

// Contains reports whether other is e or one of its descendants.
func (e *Element) Contains(other *Element) bool {
	if other == nil {
		return false
	}
	for n := other.node; n != nil; n = n.Parent {
		if n == e.node {
			return true
		}
	}
	return false
}

// Focus makes e the document's active element.
func (e *Element) Focus() { e.doc.active = e }

// Blur clears focus if e is the active element.
func (e *Element) Blur() {
	if e.doc.active == e {
		e.doc.active = nil
	}
}

// ScrollIntoView asks the host to bring e into view.
func (e *Element) ScrollIntoView() { e.doc.scrollTo = e }

func (e *Element) removeChildren() {
	for c := e.node.FirstChild; c != nil; {
		next := c.NextSibling
		e.node.RemoveChild(c)
		c = next
	}
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
