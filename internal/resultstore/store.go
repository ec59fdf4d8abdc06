// Package resultstore reads and publishes the JSON document the search engine
// leaves behind. Read failures are never returned to callers; they degrade to
// a small message or error document instead.
package resultstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
)

// NoDataMessage is returned under "message" when no result file exists yet.
const NoDataMessage = "No data available. Run a search to produce a result file."

// Document is an engine result, or one of the fallback documents.
type Document map[string]any

// Status tells how a Read ended.
type Status string

const (
	StatusOK        Status = "ok"
	StatusMissing   Status = "missing"
	StatusMalformed Status = "malformed"
)

var errNotObject = errors.New("result is not a JSON object")

// Store reads the result file at a fixed path.
type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// Load returns the stored document or a fallback document.
func (s *Store) Load() Document {
	doc, _ := s.Read()
	return doc
}

// Read is Load plus the status the document was produced with.
func (s *Store) Read() (Document, Status) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Document{"message": NoDataMessage}, StatusMissing
		}
		return errorDocument(err), StatusMalformed
	}

	doc, err := decode(data)
	if err != nil {
		return errorDocument(err), StatusMalformed
	}
	return doc, StatusOK
}

// Publish atomically replaces the result file with doc.
func (s *Store) Publish(doc Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create result dir: %w", err)
	}
	if err := atomic.WriteFile(s.path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("replace result: %w", err)
	}
	return nil
}

// Remove deletes the result file. A missing file is not an error.
func (s *Store) Remove() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func decode(data []byte) (Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after result document")
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, errNotObject
	}
	return Document(obj), nil
}

func errorDocument(err error) Document {
	return Document{"error": "Could not load data from file: " + err.Error()}
}
