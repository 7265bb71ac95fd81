package source

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strconv"
	"strings"
)

type frame struct {
	object       bool
	keys         map[string]struct{}
	expectingKey bool
	key          string // current member of an object
	index        int    // next element of an array
}

// firstDuplicateKey walks the token stream of data and returns the JSON
// Pointer of the first repeated object key, or "" when keys are unique.
func firstDuplicateKey(data []byte) (string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var stack []frame

	// value marks the end of a value in the enclosing container.
	value := func() {
		if len(stack) == 0 {
			return
		}
		top := &stack[len(stack)-1]
		if top.object {
			top.expectingKey = true
		} else {
			top.index++
		}
	}

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return "", nil
		}
		if err != nil {
			return "", err
		}
		switch v := tok.(type) {
		case json.Delim:
			switch v {
			case '{':
				stack = append(stack, frame{object: true, keys: map[string]struct{}{}, expectingKey: true})
			case '[':
				stack = append(stack, frame{})
			case '}', ']':
				stack = stack[:len(stack)-1]
				value()
			}
		case string:
			if n := len(stack); n > 0 && stack[n-1].object && stack[n-1].expectingKey {
				top := &stack[n-1]
				top.key = v
				top.expectingKey = false
				if _, dup := top.keys[v]; dup {
					return pointer(stack), nil
				}
				top.keys[v] = struct{}{}
				continue
			}
			value()
		default:
			value()
		}
	}
}

// pointer renders the current location, including the member being read.
func pointer(stack []frame) string {
	var b strings.Builder
	esc := strings.NewReplacer("~", "~0", "/", "~1")
	for _, f := range stack {
		b.WriteByte('/')
		if f.object {
			b.WriteString(esc.Replace(f.key))
		} else {
			b.WriteString(strconv.Itoa(f.index))
		}
	}
	return b.String()
}
