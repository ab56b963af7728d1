// Package version lists the server versions installed under versions/ and
// keeps the listing cached until the directory changes.
package version

import (
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Catalog caches the stems of versions/*.jar. A filesystem watcher
// invalidates the cache when jars are added or removed.
type Catalog struct {
	dir     string
	watcher *fsnotify.Watcher

	mu     sync.Mutex
	cached []string
	valid  bool
}

// Open builds a catalog over dir. The watcher is best-effort: if the
// directory cannot be watched (for example, it does not exist yet), the
// catalog simply rescans on every listing.
func Open(dir string) *Catalog {
	c := &Catalog{dir: dir}
	w, err := fsnotify.NewWatcher()
	if err == nil {
		if err := w.Add(dir); err != nil {
			w.Close()
			slog.Warn("version directory not watchable", "dir", dir, "error", err)
		} else {
			c.watcher = w
			go c.watch()
		}
	} else {
		slog.Warn("fsnotify unavailable", "error", err)
	}
	return c
}

func (c *Catalog) watch() {
	for {
		select {
		case _, ok := <-c.watcher.Events:
			if !ok {
				return
			}
			c.Invalidate()
		case err, ok := <-c.watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("version watcher error", "error", err)
		}
	}
}

// Invalidate drops the cached listing.
func (c *Catalog) Invalidate() {
	c.mu.Lock()
	c.valid = false
	c.mu.Unlock()
}

// List returns the installed version identifiers.
func (c *Catalog) List() ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.valid && c.watcher != nil {
		return append([]string(nil), c.cached...), nil
	}
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return nil, err
	}
	versions := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if name, ok := strings.CutSuffix(e.Name(), ".jar"); ok {
			versions = append(versions, name)
		}
	}
	c.cached = versions
	c.valid = true
	return append([]string(nil), versions...), nil
}

// Close stops the watcher.
func (c *Catalog) Close() {
	if c.watcher != nil {
		c.watcher.Close()
	}
}
