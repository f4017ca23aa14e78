// Package variants loads the named build variants declared in
// cmake-variants.yaml.
package variants

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tanji-dg/cmt/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the variants file looked up in the working directory.
const DefaultFilename = "cmake-variants.yaml"

// FileVariantLoader implements ports.VariantLoader using a YAML file.
type FileVariantLoader struct {
	Filename string
}

// Load reads the variants file from the given working directory. A
// missing file is not an error and yields an empty map.
func (l *FileVariantLoader) Load(cwd string) (map[string]domain.VariantOptions, error) {
	name := l.Filename
	if name == "" {
		name = DefaultFilename
	}
	path := filepath.Join(cwd, name)

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]domain.VariantOptions{}, nil
	}
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read variants file")
	}
	return Parse(data)
}

// Parse validates and decodes a variants document. Settings keep the
// order they were declared in.
func Parse(data []byte) (map[string]domain.VariantOptions, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, zerr.Wrap(err, "failed to parse variants file")
	}
	if doc == nil {
		return map[string]domain.VariantOptions{}, nil
	}
	if err := validate(doc); err != nil {
		return nil, err
	}

	// Decode a second time through yaml.Node: the generic map loses the
	// declaration order of settings, the node tree keeps it.
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, zerr.Wrap(err, "failed to parse variants file")
	}

	out := make(map[string]domain.VariantOptions)
	mapping := root.Content[0]
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		name := mapping.Content[i].Value
		opts, err := decodeVariant(mapping.Content[i+1])
		if err != nil {
			return nil, zerr.With(err, "variant", name)
		}
		out[name] = opts
	}
	return out, nil
}

func decodeVariant(node *yaml.Node) (domain.VariantOptions, error) {
	var opts domain.VariantOptions
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		switch key.Value {
		case "buildType":
			opts.BuildType = value.Value
		case "linkage":
			opts.Linkage = domain.Linkage(value.Value)
		case "settings":
			settings, err := decodeSettings(value)
			if err != nil {
				return domain.VariantOptions{}, err
			}
			opts.Settings = settings
		}
	}
	return opts, nil
}

func decodeSettings(node *yaml.Node) ([]domain.Setting, error) {
	settings := make([]domain.Setting, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var value any
		if err := node.Content[i+1].Decode(&value); err != nil {
			return nil, zerr.Wrap(err, "failed to decode variant setting")
		}
		settings = append(settings, domain.Setting{
			Key:   node.Content[i].Value,
			Value: value,
		})
	}
	return settings, nil
}
