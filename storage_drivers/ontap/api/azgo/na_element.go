// Copyright 2025 NetApp, Inc. All Rights Reserved.

package azgo

import (
	"encoding/xml"
	"strings"
)

// NaElement is a generic ZAPI element.  Requests are built from NaElements and every response is parsed back
// into one, so callers never need a generated type per API.
type NaElement struct {
	XMLName  xml.Name
	Attrs    []xml.Attr   `xml:",any,attr"`
	Content  string       `xml:",chardata"`
	Children []*NaElement `xml:",any"`
}

// NewNaElement creates an element with the given name and optional text content.
func NewNaElement(name string, content ...string) *NaElement {
	e := &NaElement{XMLName: xml.Name{Local: name}}
	if len(content) > 0 {
		e.Content = content[0]
	}
	return e
}

// Name returns the element's local name.
func (e *NaElement) Name() string {
	return e.XMLName.Local
}

// AddChild appends an existing element and returns the receiver for chaining.
func (e *NaElement) AddChild(child *NaElement) *NaElement {
	if child != nil {
		e.Children = append(e.Children, child)
	}
	return e
}

// AddNewChild appends a new text element and returns the receiver for chaining.
func (e *NaElement) AddNewChild(name, content string) *NaElement {
	return e.AddChild(NewNaElement(name, content))
}

// SetAttr sets or replaces an attribute.
func (e *NaElement) SetAttr(name, value string) *NaElement {
	for i := range e.Attrs {
		if e.Attrs[i].Name.Local == name {
			e.Attrs[i].Value = value
			return e
		}
	}
	e.Attrs = append(e.Attrs, xml.Attr{Name: xml.Name{Local: name}, Value: value})
	return e
}

// GetAttr returns the value of an attribute, or an empty string if it is not set.
func (e *NaElement) GetAttr(name string) string {
	if e == nil {
		return ""
	}
	for _, attr := range e.Attrs {
		if attr.Name.Local == name {
			return attr.Value
		}
	}
	return ""
}

// GetContent returns the element's text with surrounding whitespace removed.
func (e *NaElement) GetContent() string {
	if e == nil {
		return ""
	}
	return strings.TrimSpace(e.Content)
}

// ChildGetElement returns the first direct child with the given name, or nil.
func (e *NaElement) ChildGetElement(name string) *NaElement {
	if e == nil {
		return nil
	}
	for _, child := range e.Children {
		if child.XMLName.Local == name {
			return child
		}
	}
	return nil
}

// ChildGetString returns the content of the first direct child with the given name.
func (e *NaElement) ChildGetString(name string) string {
	return e.ChildGetElement(name).GetContent()
}

// HasChildren reports whether the element contains any nested elements.
func (e *NaElement) HasChildren() bool {
	return e != nil && len(e.Children) > 0
}

// ToXML serializes the element.  Namespaces picked up while parsing are dropped so a parsed element can be
// resent inside a new envelope.
func (e *NaElement) ToXML() (string, error) {
	output, err := xml.Marshal(e.stripNamespaces())
	if err != nil {
		return "", err
	}
	return string(output), nil
}

func (e *NaElement) stripNamespaces() *NaElement {
	clone := &NaElement{
		XMLName: xml.Name{Local: e.XMLName.Local},
		Content: e.Content,
	}
	if e.HasChildren() {
		// Whitespace between child elements is not content.
		clone.Content = strings.TrimSpace(e.Content)
	}
	for _, attr := range e.Attrs {
		if attr.Name.Space == "xmlns" || attr.Name.Local == "xmlns" {
			continue
		}
		clone.Attrs = append(clone.Attrs, xml.Attr{Name: xml.Name{Local: attr.Name.Local}, Value: attr.Value})
	}
	for _, child := range e.Children {
		clone.Children = append(clone.Children, child.stripNamespaces())
	}
	return clone
}
