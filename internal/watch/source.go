package watch

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/vango-dev/routegen/internal/logging"
)

// Source delivers filesystem events. Both channels are closed after Close.
type Source interface {
	Events() <-chan Event
	Errors() <-chan error
	Close() error
}

// FSSource is an fsnotify-backed Source watching a directory tree. fsnotify
// only watches single directories, so every subdirectory gets its own watch
// and directories created later are added as they appear.
type FSSource struct {
	watcher *fsnotify.Watcher
	root    string
	events  chan Event
	errors  chan error
	done    chan struct{}
	once    sync.Once
	wg      sync.WaitGroup

	// dirs is only touched by the translate goroutine after construction.
	dirs map[string]struct{}
}

// NewFSSource watches root and every directory below it.
func NewFSSource(ctx context.Context, root string) (*FSSource, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	s := &FSSource{
		watcher: w,
		root:    filepath.Clean(root),
		events:  make(chan Event, 64),
		errors:  make(chan error, 4),
		done:    make(chan struct{}),
		dirs:    make(map[string]struct{}),
	}

	if err := w.Add(s.root); err != nil {
		w.Close()
		return nil, err
	}
	s.dirs[s.root] = struct{}{}
	for _, dir := range collectDirs(s.root) {
		if err := w.Add(dir); err != nil {
			logging.FromContext(ctx).Warn("watch add failed", "path", dir, "error", err)
			continue
		}
		s.dirs[dir] = struct{}{}
	}

	s.wg.Add(1)
	go s.translate(logging.FromContext(ctx))
	return s, nil
}

// Events returns the translated event stream.
func (s *FSSource) Events() <-chan Event { return s.events }

// Errors returns errors reported by fsnotify.
func (s *FSSource) Errors() <-chan error { return s.errors }

// Close stops watching. It is safe to call more than once.
func (s *FSSource) Close() error {
	var err error
	s.once.Do(func() {
		close(s.done)
		err = s.watcher.Close()
		s.wg.Wait()
		close(s.events)
		close(s.errors)
	})
	return err
}

func (s *FSSource) translate(log *slog.Logger) {
	defer s.wg.Done()
	for {
		select {
		case <-s.done:
			return
		case ev, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			for _, out := range s.convert(ev, log) {
				if !s.emit(out) {
					return
				}
			}
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			select {
			case s.errors <- err:
			case <-s.done:
				return
			}
		}
	}
}

func (s *FSSource) emit(ev Event) bool {
	select {
	case s.events <- ev:
		return true
	case <-s.done:
		return false
	}
}

// convert maps one fsnotify event to zero or more Events. A newly created
// directory is walked so files written into it before its watch was
// registered are still reported.
func (s *FSSource) convert(ev fsnotify.Event, log *slog.Logger) []Event {
	now := time.Now()
	path := filepath.Clean(ev.Name)

	switch {
	case ev.Has(fsnotify.Create):
		if !isDir(path) {
			return []Event{{Kind: KindAdded, Path: path, Time: now}}
		}
		out := []Event{{Kind: KindDirAdded, Path: path, Time: now}}
		for _, dir := range append([]string{path}, collectDirs(path)...) {
			if _, ok := s.dirs[dir]; ok {
				continue
			}
			if err := s.watcher.Add(dir); err != nil {
				log.Warn("watch add failed", "path", dir, "error", err)
				continue
			}
			s.dirs[dir] = struct{}{}
			if dir != path {
				out = append(out, Event{Kind: KindDirAdded, Path: dir, Time: now})
			}
		}
		for _, file := range collectFiles(path) {
			out = append(out, Event{Kind: KindAdded, Path: file, Time: now})
		}
		return out

	case ev.Has(fsnotify.Remove), ev.Has(fsnotify.Rename):
		if _, ok := s.dirs[path]; ok {
			s.forget(path)
			return []Event{{Kind: KindDirRemoved, Path: path, Time: now}}
		}
		return []Event{{Kind: KindRemoved, Path: path, Time: now}}

	case ev.Has(fsnotify.Write):
		return []Event{{Kind: KindChanged, Path: path, Time: now}}

	default:
		return []Event{{Kind: KindOther, Path: path, Time: now}}
	}
}

// forget drops dir and everything below it from the watched set. The kernel
// watches of deleted directories are released by fsnotify itself.
func (s *FSSource) forget(dir string) {
	prefix := dir + string(filepath.Separator)
	for d := range s.dirs {
		if d == dir || strings.HasPrefix(d, prefix) {
			delete(s.dirs, d)
			_ = s.watcher.Remove(d)
		}
	}
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// collectDirs lists every directory strictly below root.
func collectDirs(root string) []string {
	var dirs []string
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() && path != root {
			dirs = append(dirs, path)
		}
		return nil
	})
	return dirs
}

// collectFiles lists every non-directory entry below root.
func collectFiles(root string) []string {
	var files []string
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	return files
}
