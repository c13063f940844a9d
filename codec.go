// FILE: lixenwraith/settings/codec.go
package settings

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format names a file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Codec converts a whole Document to and from its file representation.
// Decode failures must be reported as ErrCorruptData and encode failures
// caused by values the format cannot hold as ErrUnsupportedValue.
type Codec interface {
	Format() Format
	Ext() string
	Marshal(doc Document) ([]byte, error)
	Unmarshal(data []byte) (Document, error)
}

// CodecFor returns the codec for a format name. "" and "auto" select JSON.
func CodecFor(format string) (Codec, error) {
	switch Format(strings.ToLower(strings.TrimSpace(format))) {
	case "", "auto", FormatJSON, "jsonc":
		return jsonCodec{}, nil
	case FormatYAML, "yml":
		return yamlCodec{}, nil
	case FormatTOML:
		return tomlCodec{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// detectFileFormat returns the format implied by a file extension, or "".
func detectFileFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml", ".tml":
		return FormatTOML
	}
	return ""
}

// codecForPath picks a codec from the extension of path, defaulting to JSON.
func codecForPath(path string) Codec {
	c, _ := CodecFor(string(detectFileFormat(path)))
	return c
}
