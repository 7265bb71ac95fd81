package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	gojson "github.com/goccy/go-json"
)

// JSONDecoder decodes a single JSON document using goccy/go-json. Numbers are
// kept as json.Number so integer precision survives.
type JSONDecoder struct {
	// RejectDuplicateKeys fails documents in which an object repeats a key.
	RejectDuplicateKeys bool
}

func (JSONDecoder) Name() string { return "go-json" }

func (d JSONDecoder) Decode(r io.Reader) ([]any, error) {
	if d.RejectDuplicateKeys {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("read json: %w", err)
		}
		ptr, err := firstDuplicateKey(data)
		if err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
		if ptr != "" {
			return nil, fmt.Errorf("%w at %s", ErrDuplicateKey, ptr)
		}
		r = bytes.NewReader(data)
	}
	dec := gojson.NewDecoder(r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		return nil, fmt.Errorf("decode json: %w", err)
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, errors.New("decode json: unexpected data after top-level value")
	}
	return []any{v}, nil
}
