package i18n

import (
	"strings"
	"sync/atomic"

	"golang.org/x/text/language"
)

// Translator retrieves localized messages for failure codes.
// data provides optional values substituted into "{name}" placeholders (for
// example, "key").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var dictionaries = map[string]map[string]string{
	"en": {
		"not_table":       "Not a table!",
		"corrupt_element": "Element '{key}' is corrupt!",
		"not_allowed":     "value is not allowed",
		"unknown_schema":  "unknown schema '{name}'",
	},
	"ja": {
		"not_table":       "テーブルではありません",
		"corrupt_element": "要素 '{key}' が不正です",
		"not_allowed":     "許可されていない値です",
		"unknown_schema":  "未知のスキーマ '{name}' です",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	msg, ok := dictionaries[t.lang][code]
	if !ok {
		msg, ok = dictionaries["en"][code]
	}
	if !ok {
		return code
	}
	return expand(msg, data)
}

// expand replaces "{name}" placeholders with values from data.
func expand(msg string, data map[string]string) string {
	if len(data) == 0 || !strings.Contains(msg, "{") {
		return msg
	}
	pairs := make([]string, 0, 2*len(data))
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

type holder struct{ tr Translator }

var current atomic.Pointer[holder]

func init() { current.Store(&holder{tr: dictTranslator{lang: "en"}}) }

var supported = language.NewMatcher([]language.Tag{language.English, language.Japanese})

// SetLanguage switches the built-in Translator language. tag is a BCP 47 tag
// ("en", "ja", "ja-JP", ...); anything unsupported falls back to English.
func SetLanguage(tag string) {
	lang := "en"
	if t, err := language.Parse(tag); err == nil {
		if _, idx, conf := supported.Match(t); conf != language.No && idx == 1 {
			lang = "ja"
		}
	}
	current.Store(&holder{tr: dictTranslator{lang: lang}})
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version). nil restores the English dictionary.
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	current.Store(&holder{tr: tr})
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	return current.Load().tr.Message(code, data)
}
