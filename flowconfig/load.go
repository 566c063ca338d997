package flowconfig

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/juju/errors"

	"github.com/sghaida/flowsvc/beans"
)

// Format is a configuration document syntax.
type Format string

const (
	FormatXML  Format = "xml"
	FormatYAML Format = "yaml"
	FormatHCL  Format = "hcl"
)

// FormatForPath picks the format from the file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xml":
		return FormatXML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".hcl":
		return FormatHCL, nil
	default:
		return "", errors.NotSupportedf("configuration file extension %q", filepath.Ext(path))
	}
}

// Load extracts elements from data in the given format. name labels sources.
func Load(data []byte, format Format, name string) ([]Element, error) {
	switch format {
	case FormatXML:
		return LoadXML(bytes.NewReader(data), name)
	case FormatYAML:
		return LoadYAML(bytes.NewReader(data), name)
	case FormatHCL:
		return LoadHCL(data, name)
	default:
		return nil, errors.NotSupportedf("configuration format %q", string(format))
	}
}

// LoadFile reads path and extracts its elements.
func LoadFile(path string) ([]Element, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Annotatef(err, "reading %s", path)
	}
	return Load(data, format, filepath.Clean(path))
}

// ParseElements resolves each element, keeping order.
func ParseElements(els []Element) []*beans.Definition {
	defs := make([]*beans.Definition, 0, len(els))
	for _, el := range els {
		defs = append(defs, ParseFlowBuilderServices(el))
	}
	return defs
}

// ParseDocument loads data and resolves every element in it.
func ParseDocument(data []byte, format Format, name string) ([]*beans.Definition, error) {
	els, err := Load(data, format, name)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return ParseElements(els), nil
}

// ParseFile loads path and resolves every element in it.
func ParseFile(path string) ([]*beans.Definition, error) {
	els, err := LoadFile(path)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return ParseElements(els), nil
}
