// Package i18n resolves dotted message keys such as "menu.practice" to
// localized display strings. Catalogs are YAML files embedded in the binary.
package i18n

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/viper"
)

// DefaultLocale is used for keys missing from the selected locale.
const DefaultLocale = "en"

// ErrUnknownLocale is returned when no catalog exists for a locale.
var ErrUnknownLocale = errors.New("unknown locale")

//go:embed locales/*.yaml
var locales embed.FS

// Translator turns a message key into display text.
type Translator interface {
	T(key string, params ...Param) string
}

// Param is a named placeholder value; ":name" in a message is replaced by Value.
type Param struct {
	Name  string
	Value string
}

// P builds a Param, formatting value with %v.
func P(name string, value any) Param {
	return Param{Name: name, Value: fmt.Sprint(value)}
}

// Catalog is a Translator backed by one locale, falling back to the
// default locale and finally to the key itself.
type Catalog struct {
	locale   string
	messages *viper.Viper
	fallback *Catalog
}

var _ Translator = (*Catalog)(nil)

// Load reads the embedded catalog for locale.
func Load(locale string) (*Catalog, error) {
	messages, err := read(locale)
	if err != nil {
		return nil, err
	}

	c := &Catalog{locale: locale, messages: messages}
	if locale != DefaultLocale {
		fallback, err := Load(DefaultLocale)
		if err != nil {
			return nil, err
		}
		c.fallback = fallback
	}
	return c, nil
}

func read(locale string) (*viper.Viper, error) {
	data, err := locales.ReadFile("locales/" + locale + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLocale, locale)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("failed to parse %s catalog: %w", locale, err)
	}
	return v, nil
}

// Locale returns the catalog's locale code.
func (c *Catalog) Locale() string {
	return c.locale
}

// T implements Translator. Unknown keys are returned unchanged.
func (c *Catalog) T(key string, params ...Param) string {
	return substitute(c.lookup(key), params)
}

func (c *Catalog) lookup(key string) string {
	if c.messages.IsSet(key) {
		if msg := c.messages.GetString(key); msg != "" {
			return msg
		}
	}
	if c.fallback != nil {
		return c.fallback.lookup(key)
	}
	return key
}

// substitute replaces ":name" placeholders, longest names first so that
// ":minimum" is never clobbered by ":min".
func substitute(msg string, params []Param) string {
	if len(params) == 0 {
		return msg
	}

	sorted := make([]Param, len(params))
	copy(sorted, params)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].Name) > len(sorted[j].Name)
	})

	pairs := make([]string, 0, 2*len(sorted))
	for _, p := range sorted {
		pairs = append(pairs, ":"+p.Name, p.Value)
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}
