// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package script

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

// Language identifies the scripting language of a file by its extension.
type Language struct {
	Name       string
	Extensions []string
}

// DefaultLanguages lists the languages recognized out of the box.
func DefaultLanguages() []Language {
	return []Language{
		{Name: "BeanShell", Extensions: []string{".bsh"}},
		{Name: "Groovy", Extensions: []string{".groovy"}},
		{Name: "ImageJ Macro", Extensions: []string{".ijm"}},
		{Name: "JavaScript", Extensions: []string{".js"}},
		{Name: "Lua", Extensions: []string{".lua"}},
		{Name: "Python", Extensions: []string{".py"}},
		{Name: "Ruby", Extensions: []string{".rb"}},
		{Name: "Shell", Extensions: []string{".sh", ".bash"}},
	}
}

// Languages maps file extensions to languages.
type Languages struct {
	byExt map[string]Language
}

// NewLanguages indexes langs by extension. Extensions are matched without
// regard to case; two languages claiming one extension is an error.
func NewLanguages(langs ...Language) (*Languages, error) {
	l := &Languages{byExt: make(map[string]Language)}
	for _, lang := range langs {
		for _, ext := range lang.Extensions {
			ext = normalizeExt(ext)
			if prev, dup := l.byExt[ext]; dup {
				return nil, fmt.Errorf("extension '%s' claimed by both %s and %s", ext, prev.Name, lang.Name)
			}
			l.byExt[ext] = lang
		}
	}
	return l, nil
}

// Restrict returns the languages limited to the given extensions. Extensions
// no known language claims are handled as a language named after them.
func (l *Languages) Restrict(exts []string) *Languages {
	out := &Languages{byExt: make(map[string]Language, len(exts))}
	for _, ext := range exts {
		ext = normalizeExt(ext)
		lang, ok := l.byExt[ext]
		if !ok {
			lang = Language{Name: strings.TrimPrefix(ext, "."), Extensions: []string{ext}}
		}
		out.byExt[ext] = lang
	}
	return out
}

// ForFile returns the language handling the file name, if any.
func (l *Languages) ForFile(name string) (Language, bool) {
	ext := filepath.Ext(name)
	if ext == "" {
		return Language{}, false
	}
	lang, ok := l.byExt[normalizeExt(ext)]
	return lang, ok
}

// Extensions returns the handled extensions in sorted order.
func (l *Languages) Extensions() []string {
	exts := make([]string, 0, len(l.byExt))
	for ext := range l.byExt {
		exts = append(exts, ext)
	}
	slices.Sort(exts)
	return exts
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
