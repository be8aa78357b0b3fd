package entities

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

// IDField is the key under which a document store exposes its generated identifier.
const IDField = "_id"

var ErrInvalidDocument = errors.New("document is not a JSON object")

// Field is a single key/value pair of a Document.
type Field struct {
	Key   string
	Value any
}

// Document is a schemaless record as stored in a collection.
// Field order is the order the store returned the keys in.
type Document []Field

// Keys returns the document keys in order.
func (d Document) Keys() []string {
	keys := make([]string, len(d))
	for i, f := range d {
		keys[i] = f.Key
	}
	return keys
}

// Get returns the value stored under key.
func (d Document) Get(key string) (any, bool) {
	for _, f := range d {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Without returns a copy of the document with every field named key removed.
func (d Document) Without(key string) Document {
	out := make(Document, 0, len(d))
	for _, f := range d {
		if f.Key != key {
			out = append(out, f)
		}
	}
	return out
}

// MarshalJSON encodes the document as a JSON object keeping field order.
func (d Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range d {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Key)
		if err != nil {
			return nil, fmt.Errorf("marshal key: %w", err)
		}
		value, err := json.Marshal(f.Value)
		if err != nil {
			return nil, fmt.Errorf("marshal field %q: %w", f.Key, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// DecodeDocument parses a JSON object into a Document keeping key order.
func DecodeDocument(raw []byte) (Document, error) {
	if !gjson.ValidBytes(raw) {
		return nil, ErrInvalidDocument
	}
	res := gjson.ParseBytes(raw)
	if !res.IsObject() {
		return nil, ErrInvalidDocument
	}

	var doc Document
	res.ForEach(func(key, value gjson.Result) bool {
		doc = append(doc, Field{Key: key.String(), Value: value.Value()})
		return true
	})
	if doc == nil {
		doc = Document{}
	}
	return doc, nil
}
