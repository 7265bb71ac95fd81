package shapecheck_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	sc "github.com/reoring/shapecheck"
	"github.com/reoring/shapecheck/pred"
)

func TestValidator_ConcurrentUse(t *testing.T) {
	entries := []sc.Entry{
		sc.Field("name", sc.Assert(pred.String(), "name must be a string")),
		sc.Field("tags", sc.Optional(sc.TableOf(pred.String()))),
	}
	schema := sc.Table(entries...)
	// Mutating the caller's slice must not affect the built schema.
	entries[0] = sc.Present("other")

	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 200 {
				good := map[string]any{"name": fmt.Sprint(i, j), "tags": []any{"a"}}
				bad := map[string]any{"name": j}
				assert.True(t, schema.Validate(good, nil).OK)
				res := schema.Validate(bad, nil)
				assert.False(t, res.OK)
				assert.Equal(t, "name must be a string", res.Message)
			}
		}()
	}
	wg.Wait()
}
