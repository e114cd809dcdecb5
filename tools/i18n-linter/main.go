// Copyright (c) 2026 genpwd Team
// genpwd - memorable passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks the prompt catalogs for missing or orphaned message
// IDs. It scans the Go sources for i18n.T and i18n.List calls and compares
// the IDs against the YAML locale files.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "active.en.yaml"
	projectRoot   = "."
)

// report is the outcome of one lint run.
type report struct {
	used     map[string]struct{}
	primary  map[string]struct{}
	orphaned []string
	// missing maps a secondary locale file to the primary IDs it lacks.
	missing map[string][]string
}

func (r report) failed() bool {
	for _, keys := range r.missing {
		if len(keys) > 0 {
			return true
		}
	}
	return false
}

func main() {
	r, err := lint(projectRoot, localesDir)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	printReport(os.Stdout, r)
	if r.failed() {
		os.Exit(1)
	}
}

// lint compares the IDs used under root with the catalogs in locales.
func lint(root, locales string) (report, error) {
	r := report{missing: make(map[string][]string)}

	var err error
	if r.used, err = findUsedKeys(root); err != nil {
		return r, fmt.Errorf("finding used keys: %w", err)
	}
	if r.primary, err = loadKeysFromLocale(filepath.Join(locales, primaryLocale)); err != nil {
		return r, fmt.Errorf("loading primary locale %q: %w", primaryLocale, err)
	}

	for key := range r.primary {
		if _, ok := r.used[key]; !ok {
			r.orphaned = append(r.orphaned, key)
		}
	}
	sort.Strings(r.orphaned)

	files, err := filepath.Glob(filepath.Join(locales, "*.yaml"))
	if err != nil {
		return r, fmt.Errorf("finding locale files: %w", err)
	}
	for _, file := range files {
		if filepath.Base(file) == primaryLocale {
			continue
		}
		keys, err := loadKeysFromLocale(file)
		if err != nil {
			return r, fmt.Errorf("loading %s: %w", file, err)
		}
		missing := []string{}
		for key := range r.primary {
			if _, ok := keys[key]; !ok {
				missing = append(missing, key)
			}
		}
		sort.Strings(missing)
		r.missing[file] = missing
	}
	return r, nil
}

func printReport(w io.Writer, r report) {
	fmt.Fprintf(w, "✅ Found %d unique translation keys used in source code.\n", len(r.used))
	fmt.Fprintf(w, "✅ Loaded %d keys from primary locale (%s).\n\n", len(r.primary), primaryLocale)

	fmt.Fprintln(w, "--- Orphaned Keys (in primary locale but not used in code) ---")
	for _, key := range r.orphaned {
		fmt.Fprintf(w, "  - Orphaned: %s\n", key)
	}
	if len(r.orphaned) == 0 {
		fmt.Fprintln(w, "  ✨ None found.")
	}

	fmt.Fprintln(w, "\n--- Missing Keys (in primary locale but not in others) ---")
	files := make([]string, 0, len(r.missing))
	for file := range r.missing {
		files = append(files, file)
	}
	sort.Strings(files)
	for _, file := range files {
		fmt.Fprintf(w, "Checking %s:\n", file)
		for _, key := range r.missing[file] {
			fmt.Fprintf(w, "  - Missing: %s\n", key)
		}
		if len(r.missing[file]) == 0 {
			fmt.Fprintln(w, "  ✨ All keys present.")
		}
	}
}

var usedKeyRe = regexp.MustCompile(`i18n\.(?:T|List)\("([^"]+)"`)

// findUsedKeys scans all non-test .go files below root for catalog lookups.
func findUsedKeys(root string) (map[string]struct{}, error) {
	keys := make(map[string]struct{})
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() && (info.Name() == "tools" || info.Name() == "_examples") {
			return filepath.SkipDir
		}
		if info.IsDir() || !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, match := range usedKeyRe.FindAllStringSubmatch(string(content), -1) {
			keys[match[1]] = struct{}{}
		}
		return nil
	})
	return keys, err
}

// loadKeysFromLocale reads a YAML file and returns a flat map of its keys.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var data map[string]interface{}
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}

	keys := make(map[string]struct{})
	flattenYAML("", data, keys)
	return keys, nil
}

// flattenYAML converts a nested map into a flat map with dot-separated keys.
func flattenYAML(prefix string, node interface{}, keys map[string]struct{}) {
	switch v := node.(type) {
	case map[string]interface{}:
		for k, val := range v {
			newPrefix := k
			if prefix != "" {
				newPrefix = prefix + "." + k
			}
			flattenYAML(newPrefix, val, keys)
		}
	default:
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
	}
}
