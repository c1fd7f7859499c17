// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package script

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/vk/modkit/internal/ctxlog"
	"github.com/vk/modkit/internal/fsutil"
)

// IconPath is the icon given to the menu entry of every discovered script.
const IconPath = "/icons/script_code.png"

// Info describes one discovered script.
type Info struct {
	// Path is the file as found during the crawl, not necessarily canonical.
	Path     string
	MenuPath MenuPath
	Language Language
}

// Title returns the name of the script's menu entry.
func (i *Info) Title() string {
	if leaf := i.MenuPath.Leaf(); leaf != nil {
		return leaf.Name
	}
	return filepath.Base(i.Path)
}

// Finder discovers scripts below a list of directories.
type Finder struct {
	Dirs      []string
	Languages *Languages
	// Prefixes maps a directory, as listed in Dirs, to the menu its scripts
	// are placed under.
	Prefixes map[string]MenuPath
}

// NewFinder creates a Finder recognizing the default languages.
func NewFinder(dirs ...string) *Finder {
	langs, err := NewLanguages(DefaultLanguages()...)
	if err != nil {
		panic(err)
	}
	return &Finder{Dirs: dirs, Languages: langs, Prefixes: make(map[string]MenuPath)}
}

type crawl struct {
	langs   *Languages
	scripts []*Info
	// files holds the canonical paths of scripts already found; dirs those of
	// directories already entered.
	files map[string]bool
	dirs  map[string]bool
}

// Find crawls every directory in order and returns the scripts found.
// Directories that do not exist are skipped. Unreadable sub-directories are
// logged and skipped.
func (f *Finder) Find(ctx context.Context) ([]*Info, error) {
	logger := ctxlog.FromContext(ctx)

	c := &crawl{
		langs: f.Languages,
		files: make(map[string]bool),
		dirs:  make(map[string]bool),
	}
	total := 0
	for _, dir := range f.Dirs {
		if err := ctx.Err(); err != nil {
			return c.scripts, err
		}

		ok, err := fsutil.IsDir(dir)
		if err != nil {
			return c.scripts, err
		}
		if !ok {
			abs, _ := filepath.Abs(dir)
			logger.Debug("Ignoring non-existent scripts directory.", "dir", abs)
			continue
		}

		n, err := c.discover(ctxlog.With(ctx, "scripts_dir", dir), dir, f.Prefixes[dir])
		if err != nil {
			return c.scripts, err
		}
		total += n
	}

	logger.Debug("Found scripts.", "count", total)
	return c.scripts, nil
}

func (c *crawl) discover(ctx context.Context, dir string, menu MenuPath) (int, error) {
	logger := ctxlog.FromContext(ctx)
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	if canon, err := fsutil.CanonicalPath(dir); err == nil {
		if c.dirs[canon] {
			return 0, nil
		}
		c.dirs[canon] = true
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Warn("Failed to read scripts directory.", "dir", dir, "error", err)
		return 0, nil
	}

	count := 0
	topLevel := len(menu) == 0
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		id := identity(path)
		if c.files[id] {
			continue
		}

		name := strings.ReplaceAll(entry.Name(), "_", " ")
		isDir, err := fsutil.IsDir(path)
		if err != nil {
			logger.Warn("Failed to stat script candidate.", "path", path, "error", err)
			continue
		}

		switch {
		case isDir:
			n, err := c.discover(ctx, path, menu.Append(name))
			if err != nil {
				return count, err
			}
			count += n
		case topLevel:
			continue
		default:
			lang, ok := c.langs.ForFile(entry.Name())
			if !ok {
				continue
			}
			leaf := menu.Append(stripExt(name))
			leaf.Leaf().IconPath = IconPath
			c.scripts = append(c.scripts, &Info{Path: path, MenuPath: leaf, Language: lang})
			c.files[id] = true
			count++
		}
	}
	return count, nil
}

// identity returns the canonical path of a file, falling back to its absolute
// path when links cannot be resolved.
func identity(path string) string {
	if canon, err := fsutil.CanonicalPath(path); err == nil {
		return canon
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

// stripExt drops the extension unless the only dot leads the name.
func stripExt(name string) string {
	dot := strings.LastIndex(name, ".")
	if dot <= 0 {
		return name
	}
	return name[:dot]
}
