// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package script discovers script files on disk and places them in the menu
// hierarchy.
//
// Every configured scripts directory is crawled recursively. Sub-directories
// become menus and script files become leaf entries, with underscores in
// names rendered as spaces and the file extension dropped:
//
//	scripts/
//	  Analyze/
//	    Count_Cells.py     -> Analyze > Count Cells
//	    Stacks/Project.js  -> Analyze > Stacks > Project
//	  setup.py             -> ignored
//
// Files placed directly in a directory that has no menu prefix are ignored.
// A script reachable through several directories or symlinks is reported
// once.
package script
