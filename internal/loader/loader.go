// Package loader decodes YAML query and schema documents into the abstract
// query and schema types consumed by dialects.
package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/sqlrender/pkg/core"
	"github.com/leapstack-labs/sqlrender/pkg/query"
)

// DocumentError represents a failure to load a query or schema document.
type DocumentError struct {
	File    string
	Message string
	Err     error
}

func (e *DocumentError) Error() string {
	msg := e.Message
	if e.Err != nil {
		if msg != "" {
			msg += ": "
		}
		msg += e.Err.Error()
	}
	if e.File != "" {
		return fmt.Sprintf("%s: %s", e.File, msg)
	}
	return msg
}

func (e *DocumentError) Unwrap() error {
	return e.Err
}

// ErrEmptyDocument is returned for a document with no content.
var ErrEmptyDocument = errors.New("empty document")

// decodeStrict decodes data into out, rejecting unknown fields.
func decodeStrict(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyDocument
		}
		return err
	}
	return nil
}

// ParseQuery decodes a query document.
func ParseQuery(data []byte) (*query.Query, error) {
	var doc queryDoc
	if err := decodeStrict(data, &doc); err != nil {
		return nil, &DocumentError{Message: "invalid query document", Err: err}
	}
	q, err := doc.build(core.KindInvalid)
	if err != nil {
		return nil, &DocumentError{Err: err}
	}
	return q, nil
}

// LoadQuery reads and decodes the query document at path.
func LoadQuery(path string) (*query.Query, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read query document: %w", err)
	}
	q, err := ParseQuery(data)
	if err != nil {
		return nil, withFile(err, path)
	}
	return q, nil
}

// ParseSchema decodes a schema document.
func ParseSchema(data []byte) (*core.Schema, error) {
	var doc schemaDoc
	if err := decodeStrict(data, &doc); err != nil {
		return nil, &DocumentError{Message: "invalid schema document", Err: err}
	}
	s, err := doc.build("")
	if err != nil {
		return nil, &DocumentError{Err: err}
	}
	return s, nil
}

// LoadSchema reads and decodes the schema document at path.
func LoadSchema(path string) (*core.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema document: %w", err)
	}
	s, err := ParseSchema(data)
	if err != nil {
		return nil, withFile(err, path)
	}
	return s, nil
}

func withFile(err error, path string) error {
	var docErr *DocumentError
	if errors.As(err, &docErr) {
		docErr.File = path
	}
	return err
}
