package engine

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingField is wrapped by ValidationError for every absent or empty query field.
var ErrMissingField = errors.New("missing required field")

// Query is a single flight search request as supplied by the caller.
type Query struct {
	Source        string `json:"source" example:"JFK"`
	Destination   string `json:"destination" example:"LAX"`
	Day           string `json:"day" example:"monday"`
	DepartureTime string `json:"departure_time" example:"480"`
}

// ValidationError reports the query fields that were absent or empty.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s", ErrMissingField, strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrMissingField
}

// Validate performs presence checks only. Whitespace-only values count as empty.
func (q Query) Validate() error {
	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"source", q.Source},
		{"destination", q.Destination},
		{"day", q.Day},
		{"departure_time", q.DepartureTime},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

// Invocation describes one launch of the external search engine.
type Invocation struct {
	ExecutablePath string
	InputFile      string
	OutputFile     string
	Query          Query
}

// Args returns the full argument vector, executable first:
// executable, input file, output file, source, destination, day, departure time.
func (inv Invocation) Args() []string {
	return []string{
		inv.ExecutablePath,
		inv.InputFile,
		inv.OutputFile,
		inv.Query.Source,
		inv.Query.Destination,
		inv.Query.Day,
		inv.Query.DepartureTime,
	}
}
