// Package fsutil lists the files under a route directory.
package fsutil

import (
	"context"
	"io/fs"
	"path/filepath"

	"github.com/vango-dev/routegen/internal/errors"
	"github.com/vango-dev/routegen/internal/logging"
)

// WalkFiles returns the absolute path of every non-directory entry reachable
// under root. Unreadable subdirectories are logged and skipped; the rest of
// the tree is still returned. Entries within a directory come back in lexical
// order. Symbolic links are listed as files and never followed.
func WalkFiles(ctx context.Context, root string) []string {
	log := logging.FromContext(ctx)

	absRoot, err := filepath.Abs(root)
	if err != nil {
		log.Error(errors.New(errors.CodeWalk).WithDetail(root).Wrap(err).Error())
		return nil
	}

	var files []string
	_ = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			log.Error(errors.New(errors.CodeWalk).WithDetail(path).Wrap(err).Error(),
				"path", path)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			if path == absRoot {
				return err
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}

		files = append(files, path)
		return nil
	})

	return files
}
