package watch

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seenEvent is an Event with its path relative to the watched root.
type seenEvent struct {
	kind Kind
	rel  string
}

func startSource(t *testing.T, root string) *FSSource {
	t.Helper()
	if runtime.GOOS != "linux" {
		t.Skip("event sequences are checked against inotify")
	}
	src, err := NewFSSource(quietContext(), root)
	require.NoError(t, err)
	t.Cleanup(func() { _ = src.Close() })
	return src
}

// expectEvents reads from src until every wanted event has arrived. Extra
// events are allowed; inotify may report some changes twice.
func expectEvents(t *testing.T, src *FSSource, root string, want ...seenEvent) []seenEvent {
	t.Helper()
	pending := make(map[seenEvent]bool, len(want))
	for _, w := range want {
		pending[w] = true
	}

	var got []seenEvent
	deadline := time.After(5 * time.Second)
	for len(pending) > 0 {
		select {
		case ev, ok := <-src.Events():
			if !ok {
				t.Fatalf("event stream closed; got %v", got)
			}
			rel, err := filepath.Rel(root, ev.Path)
			require.NoError(t, err)
			e := seenEvent{kind: ev.Kind, rel: filepath.ToSlash(rel)}
			got = append(got, e)
			delete(pending, e)
		case <-deadline:
			t.Fatalf("missing %v; got %v", pending, got)
		}
	}
	return got
}

func mkdirs(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(path, 0755))
}

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("export {}\n"), 0644))
}

func TestFSSource_NestedMkdir(t *testing.T) {
	root := t.TempDir()
	src := startSource(t, root)

	mkdirs(t, filepath.Join(root, "a", "b", "c"))
	expectEvents(t, src, root,
		seenEvent{KindDirAdded, "a"},
		seenEvent{KindDirAdded, "a/b"},
		seenEvent{KindDirAdded, "a/b/c"},
	)

	// Directories created after startup are watched too.
	touch(t, filepath.Join(root, "a", "b", "c", "page.tsx"))
	expectEvents(t, src, root, seenEvent{KindAdded, "a/b/c/page.tsx"})
}

func TestFSSource_PreexistingTree(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, filepath.Join(root, "blog", "posts"))
	src := startSource(t, root)

	path := filepath.Join(root, "blog", "posts", "first.tsx")
	touch(t, path)
	expectEvents(t, src, root, seenEvent{KindAdded, "blog/posts/first.tsx"})

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	require.NoError(t, err)
	_, err = f.WriteString("export const title = 'first'\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())
	expectEvents(t, src, root, seenEvent{KindChanged, "blog/posts/first.tsx"})
}

func TestFSSource_RemoveAllForgetsDirectories(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, filepath.Join(root, "a", "b"))
	touch(t, filepath.Join(root, "a", "b", "x.tsx"))
	src := startSource(t, root)

	require.NoError(t, os.RemoveAll(filepath.Join(root, "a")))
	expectEvents(t, src, root,
		seenEvent{KindRemoved, "a/b/x.tsx"},
		seenEvent{KindDirRemoved, "a/b"},
		seenEvent{KindDirRemoved, "a"},
	)

	require.NoError(t, src.Close())
	assert.Equal(t, map[string]struct{}{root: {}}, src.dirs)
}

func TestFSSource_RenameDirectory(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, filepath.Join(root, "c"))
	touch(t, filepath.Join(root, "c", "x.tsx"))
	src := startSource(t, root)

	require.NoError(t, os.Rename(filepath.Join(root, "c"), filepath.Join(root, "d")))
	expectEvents(t, src, root,
		seenEvent{KindDirRemoved, "c"},
		seenEvent{KindDirAdded, "d"},
		seenEvent{KindAdded, "d/x.tsx"},
	)

	touch(t, filepath.Join(root, "d", "y.tsx"))
	expectEvents(t, src, root, seenEvent{KindAdded, "d/y.tsx"})
}

func TestFSSource_RenameFile(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "old.tsx"))
	src := startSource(t, root)

	require.NoError(t, os.Rename(filepath.Join(root, "old.tsx"), filepath.Join(root, "new.tsx")))
	expectEvents(t, src, root,
		seenEvent{KindRemoved, "old.tsx"},
		seenEvent{KindAdded, "new.tsx"},
	)
}

func TestFSSource_MissingRoot(t *testing.T) {
	_, err := NewFSSource(quietContext(), filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestFSSource_CloseClosesStreams(t *testing.T) {
	root := t.TempDir()
	src, err := NewFSSource(quietContext(), root)
	require.NoError(t, err)

	require.NoError(t, src.Close())
	assert.NoError(t, src.Close())

	_, ok := <-src.Events()
	assert.False(t, ok)
	_, ok = <-src.Errors()
	assert.False(t, ok)
}
