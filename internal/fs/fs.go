// Package fs provides filesystem adapters that implement lint service interfaces.
package fs

import (
	"context"
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"
)

// ErrNotDirectory is returned when the configured root is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// DocumentWalker implements lint.DocumentFinder by walking Root
// recursively for regular files whose name ends in Ext. Entries below
// Root that cannot be read are logged to Log and skipped.
type DocumentWalker struct {
	Root string
	Ext  string
	Log  zerolog.Logger

	// walkDir replaces filepath.WalkDir in tests.
	walkDir func(root string, fn iofs.WalkDirFunc) error
}

// FindDocumentsImpl returns the matching paths under Root, sorted. Each
// path is Root joined with the file's location below it.
func (w *DocumentWalker) FindDocumentsImpl(ctx context.Context) ([]string, error) {
	info, err := os.Stat(w.Root)
	if err != nil {
		return nil, fmt.Errorf("reading root %s: %w", w.Root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("reading root %s: %w", w.Root, ErrNotDirectory)
	}

	walk := w.walkDir
	if walk == nil {
		walk = filepath.WalkDir
	}

	var paths []string
	err = walk(w.Root, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			if path == w.Root {
				return err
			}
			w.Log.Warn().Err(err).Str("path", path).Msg("skipping unreadable entry")
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), w.Ext) {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", w.Root, err)
	}

	sort.Strings(paths)
	return paths, nil
}

// FindDocuments delegates to FindDocumentsImpl.
func (w *DocumentWalker) FindDocuments(ctx context.Context) ([]string, error) {
	return w.FindDocumentsImpl(ctx)
}

// OSContentReader implements lint.ContentReader using os.ReadFile.
type OSContentReader struct{}

// ReadFileImpl reads the full content of the file at path.
func (OSContentReader) ReadFileImpl(_ context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ReadFile delegates to ReadFileImpl.
func (cr OSContentReader) ReadFile(ctx context.Context, path string) (string, error) {
	return cr.ReadFileImpl(ctx, path)
}
