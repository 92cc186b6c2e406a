package alerttree

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Decode reads one tree document (YAML or JSON) from r.
func Decode(r io.Reader) (Node, error) {
	var root Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return Node{}, fmt.Errorf("%w: empty document", ErrMalformed)
		}
		if errors.Is(err, ErrMalformed) {
			return Node{}, err
		}
		return Node{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return root, nil
}

// Load opens path and decodes it with Decode.
func Load(path string) (Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return Node{}, fmt.Errorf("alerttree: open tree: %w", err)
	}
	defer f.Close()

	return Decode(f)
}
