package persistence

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
	"github.com/goccy/go-yaml/token"

	"github.com/agentstation/omm/pkg/constants"
	"github.com/agentstation/omm/pkg/errors"
	"github.com/agentstation/omm/pkg/records"
)

// Decode parses a store document. The document is walked as a syntax tree
// rather than decoded into Go values so that every key and scalar keeps the
// text it was written with: an unquoted 12.0 key stays "12.0".
//
// An empty document is an empty store.
func Decode(data []byte, source string) (records.Store, error) {
	file, err := parser.ParseBytes(data, 0)
	if err != nil {
		return nil, errors.WrapParse("yaml", source, err)
	}

	var body ast.Node
	for _, doc := range file.Docs {
		if doc == nil || doc.Body == nil {
			continue
		}
		if body != nil {
			return nil, shapeError(source, doc.Body, "store must be a single document")
		}
		body = doc.Body
	}

	body = unwrap(body)
	if body == nil {
		return records.Store{}, nil
	}
	if _, ok := body.(*ast.NullNode); ok {
		return records.Store{}, nil
	}

	seq, ok := body.(*ast.SequenceNode)
	if !ok {
		return nil, shapeError(source, body, "store must be a list of records")
	}

	store := make(records.Store, 0, len(seq.Values))
	for i, item := range seq.Values {
		rec, err := decodeRecord(source, i+1, item)
		if err != nil {
			return nil, err
		}
		store = append(store, rec)
	}

	return store, nil
}

func decodeRecord(source string, index int, node ast.Node) (records.Record, error) {
	pairs, ok := mappingValues(unwrap(node))
	if !ok {
		return records.Record{}, shapeError(source, node, fmt.Sprintf("record %d is not a mapping", index))
	}

	var rec records.Record
	hasName := false
	for _, pair := range pairs {
		key, ok := scalar(pair.Key)
		if !ok {
			return records.Record{}, shapeError(source, pair.Key, fmt.Sprintf("record %d has a key that is not a scalar", index))
		}

		switch key {
		case constants.FieldName:
			value, ok := scalar(pair.Value)
			if !ok {
				return records.Record{}, shapeError(source, pair.Value, fmt.Sprintf("record %d: name is not a scalar", index))
			}
			rec.Name, hasName = value, true
		case constants.FieldAuthor:
			value, ok := scalar(pair.Value)
			if !ok {
				return records.Record{}, shapeError(source, pair.Value, fmt.Sprintf("record %d: author is not a scalar", index))
			}
			rec.Author = value
		default:
			scope, err := decodeScope(source, index, key, pair.Value)
			if err != nil {
				return records.Record{}, err
			}
			rec.SetScope(key, scope)
		}
	}

	if !hasName {
		return records.Record{}, shapeError(source, node, fmt.Sprintf("record %d has no name", index))
	}
	return rec, nil
}

func decodeScope(source string, index int, version string, node ast.Node) (records.Scope, error) {
	node = unwrap(node)
	if _, ok := node.(*ast.NullNode); ok || node == nil {
		return records.Scope{}, nil
	}

	pairs, ok := mappingValues(node)
	if !ok {
		return records.Scope{}, shapeError(source, node,
			fmt.Sprintf("record %d: version %s is not a mapping", index, version))
	}

	fields := make([]records.Field, 0, len(pairs))
	for _, pair := range pairs {
		key, ok := scalar(pair.Key)
		if !ok {
			return records.Scope{}, shapeError(source, pair.Key,
				fmt.Sprintf("record %d: version %s has a key that is not a scalar", index, version))
		}
		value, ok := scalar(pair.Value)
		if !ok {
			return records.Scope{}, shapeError(source, pair.Value,
				fmt.Sprintf("record %d: version %s field %s is not a scalar", index, version, key))
		}
		fields = append(fields, records.Field{Key: key, Value: value})
	}
	return records.NewScope(fields...), nil
}

// mappingValues returns the key/value pairs of a block or flow mapping.
func mappingValues(node ast.Node) ([]*ast.MappingValueNode, bool) {
	switch n := node.(type) {
	case *ast.MappingNode:
		return n.Values, true
	case *ast.MappingValueNode:
		return []*ast.MappingValueNode{n}, true
	}
	return nil, false
}

// scalar returns the text of a scalar node as written, without quotes.
func scalar(node ast.Node) (string, bool) {
	node = unwrap(node)
	switch n := node.(type) {
	case nil, *ast.NullNode:
		return "", true
	case *ast.StringNode:
		return n.Value, true
	case *ast.LiteralNode:
		return n.Value.Value, true
	case *ast.MappingNode, *ast.MappingValueNode, *ast.SequenceNode:
		return "", false
	case *ast.MappingKeyNode:
		return scalar(n.Value)
	}
	tok := node.GetToken()
	if tok == nil {
		return "", false
	}
	return tok.Value, true
}

// unwrap strips tags and anchors.
func unwrap(node ast.Node) ast.Node {
	for {
		switch n := node.(type) {
		case *ast.TagNode:
			node = n.Value
		case *ast.AnchorNode:
			node = n.Value
		default:
			return node
		}
	}
}

func shapeError(source string, node ast.Node, message string) error {
	err := errors.NewParseError("yaml", source, message, nil)
	if node != nil {
		if tok := node.GetToken(); tok != nil && tok.Position != nil {
			err.Line = tok.Position.Line
		}
	}
	return err
}

// Encode renders a store with its key order intact: name, author, then the
// version scopes in stored order. Values that need quoting are single quoted,
// and values holding control characters or line breaks are double quoted.
func Encode(store records.Store) ([]byte, error) {
	doc := make([]yaml.MapSlice, 0, len(store))
	for i := range store {
		rec := &store[i]
		item := yaml.MapSlice{
			{Key: constants.FieldName, Value: scalarValue(rec.Name)},
			{Key: constants.FieldAuthor, Value: scalarValue(rec.Author)},
		}
		for _, version := range rec.Versions() {
			scope, _ := rec.Scope(version)
			fields := scope.Fields()
			values := make(yaml.MapSlice, 0, len(fields))
			for _, f := range fields {
				values = append(values, yaml.MapItem{Key: f.Key, Value: scalarValue(f.Value)})
			}
			item = append(item, yaml.MapItem{Key: version, Value: values})
		}
		doc = append(doc, item)
	}

	data, err := yaml.MarshalWithOptions(doc,
		yaml.Indent(2),
		yaml.IndentSequence(false),
		yaml.UseSingleQuote(true),
	)
	if err != nil {
		return nil, errors.WrapParse("yaml", "", err)
	}
	return data, nil
}

// quotedScalar is a value written in an explicit quoting style so that it
// reads back unchanged.
type quotedScalar struct {
	value  string
	double bool
}

// MarshalYAML implements yaml.BytesMarshaler.
func (q quotedScalar) MarshalYAML() ([]byte, error) {
	if q.double {
		return []byte(strconv.Quote(q.value)), nil
	}
	return []byte("'" + strings.ReplaceAll(q.value, "'", "''") + "'"), nil
}

// scalarValue picks the representation of a string value. Plain scalars
// cannot carry tabs or line breaks, and block scalars lose values made only
// of line breaks, so those are double quoted. Everything the encoder would
// quote is single quoted here with YAML escaping.
func scalarValue(v string) any {
	if needsDoubleQuotes(v) {
		return quotedScalar{value: v, double: true}
	}
	if token.IsNeedQuoted(v) || strings.HasPrefix(v, "?") {
		return quotedScalar{value: v}
	}
	return v
}

func needsDoubleQuotes(v string) bool {
	if !utf8.ValidString(v) {
		return true
	}
	for _, r := range v {
		if unicode.IsControl(r) || r == '\u2028' || r == '\u2029' || r == '\ufeff' {
			return true
		}
	}
	return false
}
