// File: decode.go
// Role: Reading graph descriptions from YAML or JSON documents.

package core

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Decode reads one Description document from r. YAML is a superset of JSON,
// so both encodings are accepted. Unknown keys are rejected.
//
// Decode only parses; call Build to validate.
func Decode(r io.Reader) (Description, error) {
	var desc Description
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&desc); err != nil {
		if errors.Is(err, io.EOF) {
			return Description{}, fmt.Errorf("%w: empty document", ErrValidation)
		}
		return Description{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return desc, nil
}

// Load opens path and decodes it with Decode.
func Load(path string) (Description, error) {
	f, err := os.Open(path)
	if err != nil {
		return Description{}, fmt.Errorf("core: open graph description: %w", err)
	}
	defer f.Close()

	return Decode(f)
}
