// Copyright (c) 2026 genpwd Team
// genpwd - memorable passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.
package i18n

import (
	"reflect"
	"testing"
)

func TestInitAndAvailableLocales(t *testing.T) {
	Init("en")
	if GetLang() != "en" {
		t.Fatalf("expected lang 'en', got %q", GetLang())
	}

	av := GetAvailableLocales()
	for _, k := range []string{"en", "de"} {
		if _, ok := av[k]; !ok {
			t.Fatalf("expected available locale %q to be present", k)
		}
	}
	if av["de"] != "Deutsch" {
		t.Fatalf("unexpected display name for de: %q", av["de"])
	}
}

func TestInit_FallsBackToEnglish(t *testing.T) {
	for _, lang := range []string{"xx-invalid-", "fr", ""} {
		Init(lang)
		if GetLang() != "en" {
			t.Fatalf("Init(%q): expected fallback to en, got %q", lang, GetLang())
		}
	}
	Init("de-AT")
	if GetLang() != "de" {
		t.Fatalf("expected regional tag to fall back to base de, got %q", GetLang())
	}
	Init("en")
}

func TestT_BasicAndFormatting(t *testing.T) {
	Init("en")
	defer Init("en")

	if got := T("prompt.invalid"); got != "Please answer y or n." {
		t.Fatalf("unexpected translation: %q", got)
	}
	if got := T("config.wrote", "/tmp/x"); got != "Wrote starter config to /tmp/x" {
		t.Fatalf("unexpected formatted translation: %q", got)
	}
	if got := T("no.such.key"); got != "no.such.key" {
		t.Fatalf("missing key must fall back to its ID, got %q", got)
	}

	SetLang("de")
	if got := T("prompt.invalid"); got != "Bitte mit j oder n antworten." {
		t.Fatalf("expected German text, got %q", got)
	}
}

func TestList(t *testing.T) {
	Init("de")
	defer Init("en")

	got := List("prompt.affirmative")
	want := []string{"j", "ja", "y", "yes"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}
