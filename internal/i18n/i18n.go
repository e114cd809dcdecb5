// Copyright (c) 2026 genpwd Team
// genpwd - memorable passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package i18n provides the localized prompt and status messages of genpwd.
// It uses the go-i18n library with YAML catalogs embedded into the binary.
// The word corpus itself is never localized.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// localeFS embeds the YAML translation files from the 'locales' directory
// into the application binary.
//
//go:embed locales/*.yaml
var localeFS embed.FS

var (
	mu        sync.RWMutex
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	current   string
	available map[string]string
)

// Init loads every embedded catalog and selects lang. Unknown or malformed
// tags fall back to English.
func Init(lang string) {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	av := make(map[string]string)
	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + f.Name())
		if err != nil {
			continue
		}
		mf, err := b.ParseMessageFileBytes(data, f.Name())
		if err != nil {
			continue
		}
		tag := mf.Tag.String()
		av[tag] = displayName(mf.Tag)
	}

	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	code := tag.String()
	if _, ok := av[code]; !ok {
		base, _ := tag.Base()
		code = base.String()
		if _, ok := av[code]; !ok {
			code = language.English.String()
		}
	}

	mu.Lock()
	defer mu.Unlock()
	bundle = b
	available = av
	current = code
	localizer = i18n.NewLocalizer(b, code)
}

func displayName(tag language.Tag) string {
	switch tag {
	case language.German:
		return "Deutsch"
	default:
		return "English"
	}
}

func ensure() *i18n.Localizer {
	mu.RLock()
	l := localizer
	mu.RUnlock()
	if l == nil {
		Init("en")
		mu.RLock()
		l = localizer
		mu.RUnlock()
	}
	return l
}

// T translates messageID. A single map argument is used as template data;
// any other arguments are applied fmt-style to the translated text. A
// missing ID is returned as-is.
func T(messageID string, args ...any) string {
	cfg := &i18n.LocalizeConfig{MessageID: messageID}
	if len(args) == 1 {
		if data, ok := args[0].(map[string]any); ok {
			cfg.TemplateData = data
			args = nil
		}
	}
	msg, err := ensure().Localize(cfg)
	if err != nil {
		msg = messageID
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

// List translates messageID and splits the result on commas. Entries are
// trimmed and lower-cased.
func List(messageID string) []string {
	var out []string
	for _, part := range strings.Split(T(messageID), ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// SetLang changes the active language of the localizer.
func SetLang(lang string) {
	Init(lang)
}

// GetLang returns the active language code.
func GetLang() string {
	ensure()
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// GetAvailableLocales maps language codes to display names.
func GetAvailableLocales() map[string]string {
	ensure()
	mu.RLock()
	defer mu.RUnlock()
	out := make(map[string]string, len(available))
	for k, v := range available {
		out[k] = v
	}
	return out
}
