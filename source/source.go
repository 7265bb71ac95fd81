// Package source decodes candidate documents (JSON, YAML) into host
// containers: map[string]any, []any, json.Number, string, bool and nil.
package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Format names a document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var (
	// ErrEmpty is returned when the input holds no document.
	ErrEmpty = errors.New("source: empty input")
	// ErrUnknownFormat is returned for formats without a registered Decoder.
	ErrUnknownFormat = errors.New("source: unknown format")
	// ErrDuplicateKey is returned by a strict JSONDecoder for repeated object keys.
	ErrDuplicateKey = errors.New("source: duplicate object key")
)

// Decoder turns an encoded stream into one value per document.
type Decoder interface {
	Decode(r io.Reader) ([]any, error)
	Name() string
}

// Document is one decoded document of a file.
type Document struct {
	Path  string
	Index int
	Value any
}

var (
	decodersMu sync.RWMutex
	decoders   = map[Format]Decoder{
		FormatJSON: JSONDecoder{},
		FormatYAML: yamlDecoder{},
	}
)

// Register installs d for format f, replacing any previous Decoder. nil values
// are ignored.
func Register(f Format, d Decoder) {
	if d == nil {
		return
	}
	decodersMu.Lock()
	decoders[f] = d
	decodersMu.Unlock()
}

// Formats lists the registered formats in ascending order.
func Formats() []Format {
	decodersMu.RLock()
	defer decodersMu.RUnlock()
	out := make([]Format, 0, len(decoders))
	for f := range decoders {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func decoderFor(f Format) (Decoder, error) {
	decodersMu.RLock()
	d, ok := decoders[f]
	decodersMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	return d, nil
}

// ParseFormat validates a user supplied format name. "yml" is accepted as an
// alias of yaml.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "yml" {
		f = FormatYAML
	}
	if _, err := decoderFor(f); err != nil {
		return "", err
	}
	return f, nil
}

// FormatFromPath detects the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: no extension on %q", ErrUnknownFormat, path)
	}
	return ParseFormat(ext)
}

// Option adjusts a single Decode or Load call.
type Option func(*options)

type options struct {
	decoders map[Format]Decoder
}

// WithDecoder uses d for format f in this call only, leaving the registered
// decoders untouched.
func WithDecoder(f Format, d Decoder) Option {
	return func(o *options) {
		if d == nil {
			return
		}
		if o.decoders == nil {
			o.decoders = make(map[Format]Decoder)
		}
		o.decoders[f] = d
	}
}

// Strict rejects JSON documents with duplicate object keys.
func Strict() Option {
	return WithDecoder(FormatJSON, JSONDecoder{RejectDuplicateKeys: true})
}

func resolve(f Format, opts []Option) (Decoder, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if d, ok := o.decoders[f]; ok {
		return d, nil
	}
	return decoderFor(f)
}

// Decode reads every document of r using the Decoder registered for f.
func Decode(f Format, r io.Reader, opts ...Option) ([]any, error) {
	d, err := resolve(f, opts)
	if err != nil {
		return nil, err
	}
	return d.Decode(r)
}

// Bytes decodes an in-memory document stream.
func Bytes(f Format, b []byte, opts ...Option) ([]any, error) {
	return Decode(f, bytes.NewReader(b), opts...)
}

// Load reads the file at path. An empty format is detected from the extension.
func Load(path string, f Format, opts ...Option) ([]Document, error) {
	if f == "" {
		var err error
		if f, err = FormatFromPath(path); err != nil {
			return nil, err
		}
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("source: open %q: %w", path, err)
	}
	defer file.Close()

	values, err := Decode(f, file, opts...)
	if err != nil {
		return nil, fmt.Errorf("source: %q: %w", path, err)
	}
	docs := make([]Document, len(values))
	for i, v := range values {
		docs[i] = Document{Path: path, Index: i, Value: v}
	}
	return docs, nil
}
