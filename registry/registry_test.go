package registry_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/shapecheck/pred"
	"github.com/reoring/shapecheck/registry"
)

func TestRegistry(t *testing.T) {
	r := registry.New()
	require.NoError(t, r.Register("person", pred.Table(), "a person"))
	require.NoError(t, r.Register("order", pred.Table(), ""))

	assert.ErrorIs(t, r.Register("person", pred.Table(), ""), registry.ErrDuplicate)
	assert.ErrorIs(t, r.Register("", pred.Table(), ""), registry.ErrInvalid)
	assert.ErrorIs(t, r.Register("x", nil, ""), registry.ErrInvalid)

	v, err := r.Lookup("person")
	require.NoError(t, err)
	assert.True(t, v.Validate(map[string]any{}, nil).OK)
	assert.Equal(t, "a person", r.Description("person"))
	assert.Equal(t, []string{"order", "person"}, r.Names())

	_, err = r.Lookup("persn")
	require.ErrorIs(t, err, registry.ErrUnknownSchema)
	assert.Contains(t, err.Error(), `did you mean "person"?`)

	_, err = r.Lookup("completely-different")
	require.ErrorIs(t, err, registry.ErrUnknownSchema)
	assert.NotContains(t, err.Error(), "did you mean")
}

func TestSuggestOrdering(t *testing.T) {
	r := registry.New()
	for _, n := range []string{"cart", "card", "care", "zebra"} {
		r.MustRegister(n, pred.Table(), "")
	}
	assert.Equal(t, []string{"card", "care", "cart"}, r.Suggest("car"))
	assert.Panics(t, func() { r.MustRegister("card", pred.Table(), "") })
}

func TestConcurrentAccess(t *testing.T) {
	r := registry.New()
	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = r.Register(string(rune('a'+i)), pred.Table(), "")
			_ = r.Names()
			_, _ = r.Lookup("a")
		}()
	}
	wg.Wait()
	assert.Len(t, r.Names(), 16)
}
