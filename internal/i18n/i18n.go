// Package i18n provides internationalization support for the computer shop.
// It handles translation of the console messages printed by the shop.
package i18n

import (
	"fmt"
	"strings"
	"sync"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// Translatef translates key and formats it with args.
func (t *Translator) Translatef(key, locale string, args ...interface{}) string {
	return fmt.Sprintf(t.Translate(key, locale), args...)
}

// ResolveLocale normalizes a locale tag such as "uk-UA" or "EN" to a
// supported base language, falling back to DefaultLocale.
func ResolveLocale(tag string) string {
	lang := strings.ToLower(strings.TrimSpace(tag))
	if idx := strings.IndexAny(lang, "-_"); idx > 0 {
		lang = lang[:idx]
	}
	if _, ok := getDefaultMessages()[lang]; ok {
		return lang
	}
	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			KeyCatalogItem:       "Item available: %s",
			KeyOrderHeaderGaming: "--- [Facade] Preparing Gaming PC Order ---",
			KeyOrderHeaderOffice: "--- [Facade] Preparing Office PC Order ---",
			KeyOrderAssembled:    "Assembled: %s",
			KeyOrderCompleted:    "Order completed!",
		},
		"uk": {
			KeyCatalogItem:       "Товар у наявності: %s",
			KeyOrderHeaderGaming: "--- [Фасад] Готуємо замовлення ігрового ПК ---",
			KeyOrderHeaderOffice: "--- [Фасад] Готуємо замовлення офісного ПК ---",
			KeyOrderAssembled:    "Зібрано: %s",
			KeyOrderCompleted:    "Замовлення виконано!",
		},
	}
}
