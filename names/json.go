package names

import (
	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// marshalJX writes {"delimiter":"…","components":[…]} with masked components.
func marshalJX(e *jx.Encoder, n Components) {
	e.ObjStart()
	e.FieldStart("delimiter")
	e.Str(string(n.DelimiterCharacter()))
	e.FieldStart("components")
	e.ArrStart()
	for _, c := range components(n) {
		e.Str(c)
	}
	e.ArrEnd()
	e.ObjEnd()
}

func (doc *document) unmarshalJX(d *jx.Decoder) error {
	return d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "delimiter":
			val, err := d.Str()
			if err != nil {
				return errors.Wrap(err, "delimiter")
			}
			doc.Delimiter = val
		case "components":
			doc.Components = doc.Components[:0]
			return d.Arr(func(d *jx.Decoder) error {
				if d.Next() == jx.Null {
					return &InvalidArgumentError{Op: "unmarshal_json", Reason: "component is null"}
				}
				val, err := d.Str()
				if err != nil {
					return errors.Wrap(err, "component")
				}
				doc.Components = append(doc.Components, val)
				return nil
			})
		default:
			return d.Skip()
		}
		return nil
	})
}

// decodeDocumentJX reads a document; ok is false for a JSON null.
func decodeDocumentJX(d *jx.Decoder) (doc document, ok bool, err error) {
	if d.Next() == jx.Null {
		return document{}, false, d.Null()
	}
	if err := doc.unmarshalJX(d); err != nil {
		return document{}, false, decodeFailed("json", err)
	}
	return doc, true, nil
}

// MarshalJX writes the name directly to e.
func (n *StringArrayName) MarshalJX(e *jx.Encoder) {
	marshalJX(e, n)
}

// UnmarshalJX reads the name directly from d. A JSON null leaves n unchanged.
func (n *StringArrayName) UnmarshalJX(d *jx.Decoder) error {
	doc, ok, err := decodeDocumentJX(d)
	if err != nil || !ok {
		return err
	}
	return n.fromDocument("json", doc)
}

func (n *StringArrayName) MarshalJSON() ([]byte, error) {
	var e jx.Encoder
	n.MarshalJX(&e)
	return e.Bytes(), nil
}

func (n *StringArrayName) UnmarshalJSON(data []byte) error {
	return n.UnmarshalJX(jx.DecodeBytes(data))
}

func (n *StringName) MarshalJX(e *jx.Encoder) {
	marshalJX(e, n)
}

func (n *StringName) UnmarshalJX(d *jx.Decoder) error {
	doc, ok, err := decodeDocumentJX(d)
	if err != nil || !ok {
		return err
	}
	return n.fromDocument("json", doc)
}

func (n *StringName) MarshalJSON() ([]byte, error) {
	var e jx.Encoder
	n.MarshalJX(&e)
	return e.Bytes(), nil
}

func (n *StringName) UnmarshalJSON(data []byte) error {
	return n.UnmarshalJX(jx.DecodeBytes(data))
}
