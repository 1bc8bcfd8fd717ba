// SPDX-License-Identifier: MPL-2.0

package profile

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/winepack/winepack/pkg/cueutil"
)

const (
	FormatCUE  Format = "cue"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"

	// MaxFileSize caps profile files regardless of format.
	MaxFileSize = cueutil.DefaultMaxFileSize

	profileFileMode = 0o644
	profileDirMode  = 0o755
)

var (
	//go:embed profile_schema.cue
	profileSchema []byte

	// ErrUnsupportedFormat is the sentinel error wrapped by UnsupportedFormatError.
	ErrUnsupportedFormat = errors.New("unsupported profile format")
)

type (
	// Format is a profile file encoding.
	Format string

	// UnsupportedFormatError is returned for a file extension no decoder
	// handles.
	UnsupportedFormatError struct {
		Path string
	}

	// Loader reads and writes profile files through an afero filesystem so
	// tests can run against memory.
	Loader struct {
		Fs afero.Fs
	}
)

// NewLoader returns a Loader over fs, or over the OS filesystem when fs is nil.
func NewLoader(fs afero.Fs) *Loader {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Loader{Fs: fs}
}

// Formats lists the supported encodings.
func Formats() []Format {
	return []Format{FormatCUE, FormatJSON, FormatTOML, FormatYAML}
}

// FormatForPath picks the encoding from a file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".cue":
		return FormatCUE, nil
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", &UnsupportedFormatError{Path: path}
	}
}

// Load reads the profile at path and checks its structure.
func (l *Loader) Load(path string) (Profile, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return Profile{}, err
	}

	info, err := l.Fs.Stat(path)
	if err != nil {
		return Profile{}, fmt.Errorf("failed to read profile at %s: %w", path, err)
	}
	if info.Size() > MaxFileSize {
		return Profile{}, &cueutil.FileTooLargeError{Filename: path, Size: info.Size(), Max: MaxFileSize}
	}

	data, err := afero.ReadFile(l.Fs, path)
	if err != nil {
		return Profile{}, fmt.Errorf("failed to read profile at %s: %w", path, err)
	}
	return Decode(data, format, path)
}

// Save encodes p in the format implied by path's extension, creating the
// parent directory when needed.
func (l *Loader) Save(path string, p Profile) error {
	format, err := FormatForPath(path)
	if err != nil {
		return err
	}

	data, err := Encode(p, format)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := l.Fs.MkdirAll(dir, profileDirMode); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	if err := afero.WriteFile(l.Fs, path, data, profileFileMode); err != nil {
		return fmt.Errorf("failed to write profile to %s: %w", path, err)
	}
	return nil
}

// Exists reports whether a profile file is present at path.
func (l *Loader) Exists(path string) bool {
	_, err := l.Fs.Stat(path)
	return err == nil
}

// Decode parses data in the given format. Unknown fields are rejected in
// every format. filename only labels errors.
func Decode(data []byte, format Format, filename string) (Profile, error) {
	if err := cueutil.CheckFileSize(data, MaxFileSize, filename); err != nil {
		return Profile{}, err
	}

	var p Profile
	switch format {
	case FormatCUE:
		result, err := cueutil.ParseAndDecode[Profile](profileSchema, data, "#Profile", cueutil.WithFilename(filename))
		if err != nil {
			return Profile{}, err
		}
		p = *result.Value
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&p); err != nil {
			return Profile{}, fmt.Errorf("%s: %w", filename, err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
		if err := dec.Decode(&p); err != nil {
			return Profile{}, fmt.Errorf("%s: %w", filename, err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
			return Profile{}, fmt.Errorf("%s: %w", filename, err)
		}
	default:
		return Profile{}, &UnsupportedFormatError{Path: filename}
	}

	if err := p.Validate(); err != nil {
		return Profile{}, fmt.Errorf("%s: %w", filename, err)
	}
	return p, nil
}

// Encode renders p in the given format.
func Encode(p Profile, format Format) ([]byte, error) {
	switch format {
	case FormatCUE:
		return cueutil.Encode(p)
	case FormatJSON:
		data, err := json.MarshalIndent(p, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode profile as JSON: %w", err)
		}
		return append(data, '\n'), nil
	case FormatTOML:
		data, err := toml.Marshal(p)
		if err != nil {
			return nil, fmt.Errorf("failed to encode profile as TOML: %w", err)
		}
		return data, nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(p); err != nil {
			return nil, fmt.Errorf("failed to encode profile as YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("failed to encode profile as YAML: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, &UnsupportedFormatError{Path: string(format)}
	}
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported profile format for %s (use .cue, .json, .toml, .yaml or .yml)", e.Path)
}

// Unwrap returns ErrUnsupportedFormat for errors.Is() compatibility.
func (e *UnsupportedFormatError) Unwrap() error { return ErrUnsupportedFormat }
