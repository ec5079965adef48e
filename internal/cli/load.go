package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hugr-lab/soma-go/dimension"
	"github.com/hugr-lab/soma-go/selection"
)

// DimensionsFile is the YAML layout of a dimension list:
//
//	dimensions:
//	  - name: soma_joinid
//	    type: int64
//	    min: 0
//	    max: 999
type DimensionsFile struct {
	Dimensions []DimensionDef `yaml:"dimensions"`
}

// DimensionDef declares one dimension. Min and Max are omitted for strings.
type DimensionDef struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
	Min  bound  `yaml:"min"`
	Max  bound  `yaml:"max"`
}

// bound keeps the literal text of a YAML scalar so 64-bit bounds are parsed
// without passing through float64.
type bound string

func (b *bound) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: domain bound must be a scalar", value.Line)
	}
	*b = bound(value.Value)
	return nil
}

// LoadDimensions reads a YAML dimension list.
func LoadDimensions(path string) (*dimension.StaticRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseDimensions(data)
}

// ParseDimensions decodes a YAML dimension list into a registry.
func ParseDimensions(data []byte) (*dimension.StaticRegistry, error) {
	var file DimensionsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse dimensions: %w", err)
	}
	if len(file.Dimensions) == 0 {
		return nil, fmt.Errorf("no dimensions declared")
	}

	dims := make([]dimension.Dimension, 0, len(file.Dimensions))
	for _, def := range file.Dimensions {
		typ, err := dimension.ParseScalarType(def.Type)
		if err != nil {
			return nil, fmt.Errorf("dimension %s: %w", def.Name, err)
		}
		d, err := dimension.ParseDimension(def.Name, typ, string(def.Min), string(def.Max))
		if err != nil {
			return nil, fmt.Errorf("dimension %s: %w", def.Name, err)
		}
		dims = append(dims, d)
	}
	return dimension.NewRegistry(dims...)
}

// isMsgpack reports whether path names a MessagePack request.
func isMsgpack(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".msgpack", ".mpk", ".zst":
		return true
	}
	return false
}

// requestEntries decodes a YAML mapping of dimension name to value list,
// keeping document order.
func requestEntries(data []byte) ([]string, []any, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("failed to parse request: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, nil, fmt.Errorf("request is empty")
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, nil, fmt.Errorf("line %d: request must be a mapping of dimension to values", root.Line)
	}

	names := make([]string, 0, len(root.Content)/2)
	values := make([]any, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		var v any
		if err := val.Decode(&v); err != nil {
			return nil, nil, fmt.Errorf("dimension %s: %w", key.Value, err)
		}
		names = append(names, key.Value)
		values = append(values, v)
	}
	return names, values, nil
}

// LoadPointRequest reads a point request from YAML or MessagePack.
func LoadPointRequest(path string) (selection.PointRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if isMsgpack(path) {
		return selection.DecodePointRequest(data)
	}

	names, values, err := requestEntries(data)
	if err != nil {
		return nil, err
	}
	req := make(selection.PointRequest, len(names))
	for i := range names {
		req[i] = selection.Points{Dim: names[i], Values: values[i]}
	}
	return req, nil
}

// LoadRangeRequest reads a range request from YAML or MessagePack.
func LoadRangeRequest(path string) (selection.RangeRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if isMsgpack(path) {
		return selection.DecodeRangeRequest(data)
	}

	names, values, err := requestEntries(data)
	if err != nil {
		return nil, err
	}
	req := make(selection.RangeRequest, len(names))
	for i := range names {
		req[i] = selection.Ranges{Dim: names[i], Pairs: values[i]}
	}
	return req, nil
}
