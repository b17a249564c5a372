package registry

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/skillset/internal/errors"
	"github.com/thoreinstein/skillset/pkg/fileutil"
)

// decodeFile reads path and decodes it into v according to its extension.
func decodeFile(path string, v any) error {
	data, err := fileutil.ReadFile(path)
	if err != nil {
		return err
	}
	return decode(path, data, v)
}

func decode(path string, data []byte, v any) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, v); err != nil {
			return errors.Wrap(err, "parsing YAML")
		}
	case ".toml":
		if err := toml.Unmarshal(data, v); err != nil {
			return errors.Wrap(err, "parsing TOML")
		}
	default:
		std, err := hujson.Standardize(data)
		if err != nil {
			return errors.Wrap(err, "parsing JSON")
		}
		if err := json.Unmarshal(std, v); err != nil {
			return errors.Wrap(err, "parsing JSON")
		}
	}
	return nil
}
