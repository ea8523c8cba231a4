package core

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// LoadConfig decodes the TOML file at path into v. Fields absent from the
// file keep whatever v already holds, so callers pass a value filled with
// defaults. A missing file returns ErrConfigNotFound and leaves v untouched.
func LoadConfig(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return DecodeConfig(data, v)
}

// DecodeConfig decodes TOML data into v. Unknown keys are ignored.
func DecodeConfig(data []byte, v any) error {
	if err := toml.Unmarshal(data, v); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return fmt.Errorf("config %d:%d: %w", row, col, err)
		}
		return fmt.Errorf("failed to decode config: %w", err)
	}
	return nil
}
