package gamedata

import (
	"encoding/json"
	"fmt"
)

// validator is implemented by data files that can check their own contents.
type validator interface {
	validate() error
}

// Load reads and unmarshals a JSON file from the embedded filesystem.
// Files that implement validator are checked before being returned.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("read embedded file %s: %w", filename, err)
	}

	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("parse JSON from %s: %w", filename, err)
	}

	if v, ok := any(&result).(validator); ok {
		if err := v.validate(); err != nil {
			return result, fmt.Errorf("validate %s: %w", filename, err)
		}
	}

	return result, nil
}
