package names

import (
	"github.com/go-faster/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/yaroher/structname/internal/help"
	"github.com/yaroher/structname/logger"
)

// document is the structured encoding of a name shared by the JSON and YAML
// codecs. Components are stored masked for Delimiter.
type document struct {
	Delimiter  string   `yaml:"delimiter,omitempty"`
	Components []string `yaml:"components"`
}

func documentOf(n Components) document {
	return document{
		Delimiter:  string(n.DelimiterCharacter()),
		Components: components(n),
	}
}

func (doc document) delimiter() (rune, error) {
	return DelimiterFromString(help.StringOrDefault(doc.Delimiter, string(DefaultDelimiter)))
}

// componentsFromDataString parses a data string and remasks its components
// for delimiter.
func componentsFromDataString(s string, delimiter rune) ([]string, error) {
	cs, err := ParseDataString(s)
	if err != nil {
		return nil, err
	}
	for i, c := range cs {
		r, err := Remask(c, DefaultDelimiter, delimiter)
		if err != nil {
			return nil, err
		}
		cs[i] = r
	}
	return cs, nil
}

func decodeFailed(format string, err error) error {
	logger.Debug("rejected encoded name", zap.String("format", format), zap.Error(err))
	return errors.Wrapf(err, "decode %s name", format)
}

func (n *StringArrayName) fromDocument(format string, doc document) error {
	d, err := doc.delimiter()
	if err != nil {
		return decodeFailed(format, err)
	}
	v, err := NewStringArrayName(doc.Components, WithDelimiter(d))
	if err != nil {
		return decodeFailed(format, err)
	}
	*n = *v
	return nil
}

func (n *StringName) fromDocument(format string, doc document) error {
	d, err := doc.delimiter()
	if err != nil {
		return decodeFailed(format, err)
	}
	v, err := NewStringNameFromComponents(doc.Components, WithDelimiter(d))
	if err != nil {
		return decodeFailed(format, err)
	}
	*n = *v
	return nil
}

// dataStringDocument builds the document for a data string decoded into a
// receiver whose delimiter is d.
func dataStringDocument(format, s string, d rune) (document, error) {
	cs, err := componentsFromDataString(s, d)
	if err != nil {
		return document{}, decodeFailed(format, err)
	}
	return document{Delimiter: string(d), Components: cs}, nil
}

// MarshalText encodes the name as its data string.
func (n *StringArrayName) MarshalText() ([]byte, error) {
	return []byte(n.AsDataString()), nil
}

// UnmarshalText decodes a data string, keeping the receiver's delimiter.
func (n *StringArrayName) UnmarshalText(b []byte) error {
	doc, err := dataStringDocument("text", string(b), n.DelimiterCharacter())
	if err != nil {
		return err
	}
	return n.fromDocument("text", doc)
}

func (n *StringName) MarshalText() ([]byte, error) {
	return []byte(n.AsDataString()), nil
}

func (n *StringName) UnmarshalText(b []byte) error {
	doc, err := dataStringDocument("text", string(b), n.DelimiterCharacter())
	if err != nil {
		return err
	}
	return n.fromDocument("text", doc)
}

// MarshalYAML encodes the name as a mapping with its delimiter and masked
// components.
func (n *StringArrayName) MarshalYAML() (any, error) {
	return documentOf(n), nil
}

// UnmarshalYAML accepts the mapping produced by MarshalYAML or a scalar data
// string.
func (n *StringArrayName) UnmarshalYAML(value *yaml.Node) error {
	doc, err := yamlDocument(value, n.DelimiterCharacter())
	if err != nil {
		return err
	}
	return n.fromDocument("yaml", doc)
}

func (n *StringName) MarshalYAML() (any, error) {
	return documentOf(n), nil
}

func (n *StringName) UnmarshalYAML(value *yaml.Node) error {
	doc, err := yamlDocument(value, n.DelimiterCharacter())
	if err != nil {
		return err
	}
	return n.fromDocument("yaml", doc)
}

func yamlDocument(value *yaml.Node, d rune) (document, error) {
	if value.Kind == yaml.ScalarNode {
		return dataStringDocument("yaml", value.Value, d)
	}
	var doc document
	if err := value.Decode(&doc); err != nil {
		return document{}, decodeFailed("yaml", err)
	}
	return doc, nil
}
