package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	t.Cleanup(func() { SetLanguage("en") })

	assert.Equal(t, "Not a table!", T("not_table", nil))
	assert.Equal(t, "Element 'name' is corrupt!", T("corrupt_element", map[string]string{"key": "name"}))

	SetLanguage("ja-JP")
	assert.Equal(t, "テーブルではありません", T("not_table", nil))
	assert.Equal(t, "要素 'id' が不正です", T("corrupt_element", map[string]string{"key": "id"}))

	SetLanguage("fr")
	assert.Equal(t, "Not a table!", T("not_table", nil))
}

func TestTranslator_UnknownCodeEchoesCode(t *testing.T) {
	assert.Equal(t, "no_such_code", T("no_such_code", nil))
}

type upper struct{}

func (upper) Message(code string, _ map[string]string) string { return "X:" + code }

func TestSetTranslator(t *testing.T) {
	t.Cleanup(func() { SetTranslator(nil) })

	SetTranslator(upper{})
	assert.Equal(t, "X:not_table", T("not_table", nil))

	SetTranslator(nil)
	assert.Equal(t, "Not a table!", T("not_table", nil))
}
