package http

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"encoding/xml"
	"strings"

	"github.com/valyala/fastjson"
)

// BodyKind tags the shape of a decoded request body.
type BodyKind int

const (
	// KindEmpty marks a body that carried no content.
	KindEmpty BodyKind = iota

	// KindObject marks a body decoded into named fields.
	KindObject

	// KindList marks a body decoded into an ordered sequence.
	KindList

	// KindScalar marks a body decoded into a single value.
	KindScalar
)

// Body is the structured value decoded from the raw request body: a tagged tree of
// maps, sequences and scalars, so downstream field access stays type-checked instead
// of going through a loosely-typed blob.
type Body struct {
	kind   BodyKind
	fields map[string]any
	list   []any
	scalar any
}

func (b *Body) Kind() BodyKind {
	return b.kind
}

func (b *Body) IsEmpty() bool {
	return b.kind == KindEmpty
}

// Fields returns the named fields of an object body. It is empty, never nil, for
// the other kinds.
func (b *Body) Fields() map[string]any {
	if b.fields == nil {
		return map[string]any{}
	}

	return b.fields
}

// Field looks up a single named field of an object body.
func (b *Body) Field(name string) (any, bool) {
	value, ok := b.fields[name]

	return value, ok
}

// List returns the elements of a list body.
func (b *Body) List() []any {
	return b.list
}

// Scalar returns the value of a scalar body.
func (b *Body) Scalar() any {
	return b.scalar
}

// decodeBody sniffs raw body bytes into a structured value. The attempts run in a
// fixed order and the first success wins: empty, JSON, XML, gob, and finally a
// wrapper object holding the original text under a "text" field. Decode failures
// never surface to the caller because a plain-text or absent body is legitimate.
func decodeBody(raw []byte) *Body {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return &Body{kind: KindEmpty, fields: map[string]any{}}
	}

	if b, ok := tryJSON(trimmed); ok {
		return b
	}

	if b, ok := tryXML(trimmed); ok {
		return b
	}

	if b, ok := tryGob(raw); ok {
		return b
	}

	return &Body{kind: KindObject, fields: map[string]any{"text": string(raw)}}
}

func newBody(v any) *Body {
	switch value := v.(type) {
	case map[string]any:
		return &Body{kind: KindObject, fields: value}
	case []any:
		return &Body{kind: KindList, list: value}
	default:
		return &Body{kind: KindScalar, scalar: value}
	}
}

func tryJSON(raw []byte) (*Body, bool) {
	// fastjson validates without building the full tree, so non-JSON bodies are
	// rejected before committing to a decode.
	if fastjson.ValidateBytes(raw) != nil {
		return nil, false
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, false
	}

	return newBody(v), true
}

func tryXML(raw []byte) (*Body, bool) {
	dec := xml.NewDecoder(bytes.NewReader(raw))

	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, false
		}

		switch t := tok.(type) {
		case xml.StartElement:
			node, elemErr := xmlElement(dec, t)
			if elemErr != nil {
				return nil, false
			}

			return newBody(map[string]any{t.Name.Local: node}), true
		case xml.CharData:
			// Leading character data outside a root element means the body is
			// not XML.
			if len(bytes.TrimSpace(t)) > 0 {
				return nil, false
			}
		case xml.ProcInst, xml.Comment, xml.Directive:
			// Prolog; keep scanning for the root element.
		}
	}
}

// xmlElement consumes tokens up to the matching end element, producing a scalar for
// character-data-only elements and a map of attributes and children otherwise.
func xmlElement(dec *xml.Decoder, start xml.StartElement) (any, error) {
	children := make(map[string]any)

	for _, attr := range start.Attr {
		children[attr.Name.Local] = attr.Value
	}

	var text strings.Builder

	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			child, childErr := xmlElement(dec, t)
			if childErr != nil {
				return nil, childErr
			}

			addXMLChild(children, t.Name.Local, child)
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			if len(children) == 0 {
				return strings.TrimSpace(text.String()), nil
			}

			return children, nil
		}
	}
}

// addXMLChild collapses repeated sibling elements into a list under their shared name.
func addXMLChild(children map[string]any, name string, value any) {
	existing, ok := children[name]
	if !ok {
		children[name] = value

		return
	}

	if list, ok := existing.([]any); ok {
		children[name] = append(list, value)

		return
	}

	children[name] = []any{existing, value}
}

// tryGob handles bodies produced by gob-encoding a parameter map, the native
// serialization between Strut services.
func tryGob(raw []byte) (*Body, bool) {
	var m map[string]any

	if err := gob.NewDecoder(bytes.NewReader(raw)).Decode(&m); err != nil {
		return nil, false
	}

	return newBody(m), true
}
