// Package project lists the source files of a workspace folder, for
// the sidebar listing shown before an analysis run.
package project

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// SourceExt is the extension of analyzable source files.
const SourceExt = ".rs"

// Scan lists source files in the folder root and its src/ directory,
// sorted by name. The two directories are scanned concurrently. A
// missing src/ is not an error; a missing folder is.
func Scan(folder string) ([]string, error) {
	if _, err := os.Stat(folder); err != nil {
		return nil, err
	}

	var mu sync.Mutex
	var files []string

	collect := func(dir string, required bool) func() error {
		return func() error {
			entries, err := os.ReadDir(dir)
			if err != nil {
				if required {
					return err
				}
				return nil
			}
			mu.Lock()
			defer mu.Unlock()
			for _, e := range entries {
				if !e.IsDir() && strings.HasSuffix(e.Name(), SourceExt) {
					files = append(files, e.Name())
				}
			}
			return nil
		}
	}

	var g errgroup.Group
	g.Go(collect(folder, true))
	g.Go(collect(filepath.Join(folder, "src"), false))
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}
