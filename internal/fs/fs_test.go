package fs

import (
	"bytes"
	"context"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("creating dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func TestDocumentWalker_FindDocuments(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "b.md"), "")
	writeFile(t, filepath.Join(root, "a.md"), "")
	writeFile(t, filepath.Join(root, "notes.txt"), "")
	writeFile(t, filepath.Join(root, "2024", "deep", "c.md"), "")
	writeFile(t, filepath.Join(root, ".drafts", "d.md"), "")
	if err := os.MkdirAll(filepath.Join(root, "folder.md"), 0o755); err != nil {
		t.Fatalf("creating dir: %v", err)
	}

	w := &DocumentWalker{Root: root, Ext: ".md"}
	got, err := w.FindDocuments(context.Background())
	if err != nil {
		t.Fatalf("FindDocuments() error = %v", err)
	}

	want := []string{
		filepath.Join(root, ".drafts", "d.md"),
		filepath.Join(root, "2024", "deep", "c.md"),
		filepath.Join(root, "a.md"),
		filepath.Join(root, "b.md"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindDocuments() = %v, want %v", got, want)
	}
}

func TestDocumentWalker_OtherExtension(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.md"), "")
	writeFile(t, filepath.Join(root, "b.markdown"), "")

	w := &DocumentWalker{Root: root, Ext: ".markdown"}
	got, err := w.FindDocuments(context.Background())
	if err != nil {
		t.Fatalf("FindDocuments() error = %v", err)
	}
	if len(got) != 1 || filepath.Base(got[0]) != "b.markdown" {
		t.Errorf("FindDocuments() = %v, want only b.markdown", got)
	}
}

func TestDocumentWalker_EmptyRoot(t *testing.T) {
	w := &DocumentWalker{Root: t.TempDir(), Ext: ".md"}
	got, err := w.FindDocuments(context.Background())
	if err != nil {
		t.Fatalf("FindDocuments() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("FindDocuments() = %v, want none", got)
	}
}

func TestDocumentWalker_MissingRoot(t *testing.T) {
	w := &DocumentWalker{Root: filepath.Join(t.TempDir(), "nope"), Ext: ".md"}
	_, err := w.FindDocuments(context.Background())
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("FindDocuments() error = %v, want os.ErrNotExist", err)
	}
}

func TestDocumentWalker_RootIsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.md")
	writeFile(t, path, "")

	w := &DocumentWalker{Root: path, Ext: ".md"}
	_, err := w.FindDocuments(context.Background())
	if !errors.Is(err, ErrNotDirectory) {
		t.Errorf("FindDocuments() error = %v, want ErrNotDirectory", err)
	}
}

var errDenied = errors.New("permission denied")

// failingWalk walks root for real but reports errDenied for the entries
// in failing instead of visiting them normally.
func failingWalk(failing ...string) func(string, iofs.WalkDirFunc) error {
	return func(root string, fn iofs.WalkDirFunc) error {
		return filepath.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
			for _, f := range failing {
				if path == f && err == nil {
					return fn(path, d, errDenied)
				}
			}
			return fn(path, d, err)
		})
	}
}

func TestDocumentWalker_SkipsUnreadableEntries(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.md"), "")
	writeFile(t, filepath.Join(root, "locked", "hidden.md"), "")
	writeFile(t, filepath.Join(root, "locked", "deeper", "also.md"), "")
	writeFile(t, filepath.Join(root, "open", "b.md"), "")
	writeFile(t, filepath.Join(root, "open", "gone.md"), "")

	var logBuf bytes.Buffer
	w := &DocumentWalker{
		Root:    root,
		Ext:     ".md",
		Log:     zerolog.New(&logBuf),
		walkDir: failingWalk(filepath.Join(root, "locked"), filepath.Join(root, "open", "gone.md")),
	}
	got, err := w.FindDocuments(context.Background())
	if err != nil {
		t.Fatalf("FindDocuments() error = %v, want nil", err)
	}

	want := []string{
		filepath.Join(root, "a.md"),
		filepath.Join(root, "open", "b.md"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindDocuments() = %v, want %v", got, want)
	}
	if n := strings.Count(logBuf.String(), "skipping unreadable entry"); n != 2 {
		t.Errorf("logged %d skipped entries, want 2: %s", n, logBuf.String())
	}
}

func TestDocumentWalker_UnreadableRootFails(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.md"), "")

	w := &DocumentWalker{Root: root, Ext: ".md", walkDir: failingWalk(root)}
	_, err := w.FindDocuments(context.Background())
	if !errors.Is(err, errDenied) {
		t.Errorf("FindDocuments() error = %v, want %v", err, errDenied)
	}
}

func TestDocumentWalker_CancelledContext(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.md"), "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := &DocumentWalker{Root: root, Ext: ".md"}
	_, err := w.FindDocuments(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("FindDocuments() error = %v, want context.Canceled", err)
	}
}

func TestOSContentReader_ReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.md")
	writeFile(t, path, "---\ncomments: true\n---\n")

	got, err := OSContentReader{}.ReadFile(context.Background(), path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if got != "---\ncomments: true\n---\n" {
		t.Errorf("ReadFile() = %q", got)
	}

	_, err = OSContentReader{}.ReadFile(context.Background(), filepath.Join(t.TempDir(), "missing.md"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ReadFile(missing) error = %v, want os.ErrNotExist", err)
	}
}
