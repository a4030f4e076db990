package adapter

import (
	"os"
	"path/filepath"
	"testing"

	m "github.com/przeslijmi/configready/internal/model"
)

func TestLocalConfigFSAdapter_ListSubdirs(t *testing.T) {
	t.Run("filters out files", func(t *testing.T) {
		adapter := NewLocalConfigFSAdapter()

		root := t.TempDir()
		mustMkdir(t, filepath.Join(root, "acme"))
		mustMkdir(t, filepath.Join(root, "globex"))
		writeTestFile(t, filepath.Join(root, "autoload.php"), "<?php\n")

		names, err := adapter.ListSubdirs(m.Path(root))
		if err != nil {
			t.Fatalf("ListSubdirs() error = %v", err)
		}

		if len(names) != 2 {
			t.Fatalf("ListSubdirs() = %v, want 2 directories", names)
		}

		for _, name := range names {
			if name == "autoload.php" {
				t.Fatalf("ListSubdirs() returned a file entry")
			}
		}
	})

	t.Run("missing root is an error", func(t *testing.T) {
		adapter := NewLocalConfigFSAdapter()

		_, err := adapter.ListSubdirs(m.Path(filepath.Join(t.TempDir(), "nope")))
		if err == nil {
			t.Fatalf("ListSubdirs() expected error for missing root")
		}
	})
}

func TestLocalConfigFSAdapter_FileExists(t *testing.T) {
	adapter := NewLocalConfigFSAdapter()
	root := t.TempDir()

	t.Run("regular file", func(t *testing.T) {
		path := filepath.Join(root, "specimen.php")
		writeTestFile(t, path, "<?php\n")

		ok, err := adapter.FileExists(m.Path(path))
		if err != nil {
			t.Fatalf("FileExists() error = %v", err)
		}
		if !ok {
			t.Fatalf("FileExists() = false, want true")
		}
	})

	t.Run("missing file is not an error", func(t *testing.T) {
		ok, err := adapter.FileExists(m.Path(filepath.Join(root, "absent.php")))
		if err != nil {
			t.Fatalf("FileExists() error = %v", err)
		}
		if ok {
			t.Fatalf("FileExists() = true for missing file")
		}
	})

	t.Run("directory is not a file", func(t *testing.T) {
		dir := filepath.Join(root, "dir")
		mustMkdir(t, dir)

		ok, err := adapter.FileExists(m.Path(dir))
		if err != nil {
			t.Fatalf("FileExists() error = %v", err)
		}
		if ok {
			t.Fatalf("FileExists() = true for directory")
		}
	})
}

func TestLocalConfigFSAdapter_CopyFileIfAbsent(t *testing.T) {
	t.Run("copies byte for byte", func(t *testing.T) {
		adapter := NewLocalConfigFSAdapter()
		root := t.TempDir()

		src := filepath.Join(root, "src.php")
		dst := filepath.Join(root, "dst.php")
		content := "<?php\nreturn ['a' => 1];\n"
		writeTestFile(t, src, content)

		copied, err := adapter.CopyFileIfAbsent(m.Path(src), m.Path(dst))
		if err != nil {
			t.Fatalf("CopyFileIfAbsent() error = %v", err)
		}
		if !copied {
			t.Fatalf("CopyFileIfAbsent() = false, want true")
		}

		got, err := os.ReadFile(dst)
		if err != nil {
			t.Fatalf("reading destination: %v", err)
		}
		if string(got) != content {
			t.Fatalf("destination = %q, want %q", string(got), content)
		}
	})

	t.Run("never overwrites an existing destination", func(t *testing.T) {
		adapter := NewLocalConfigFSAdapter()
		root := t.TempDir()

		src := filepath.Join(root, "src.php")
		dst := filepath.Join(root, "dst.php")
		writeTestFile(t, src, "new contents\n")
		writeTestFile(t, dst, "old contents\n")

		copied, err := adapter.CopyFileIfAbsent(m.Path(src), m.Path(dst))
		if err != nil {
			t.Fatalf("CopyFileIfAbsent() error = %v", err)
		}
		if copied {
			t.Fatalf("CopyFileIfAbsent() = true for existing destination")
		}

		got, err := os.ReadFile(dst)
		if err != nil {
			t.Fatalf("reading destination: %v", err)
		}
		if string(got) != "old contents\n" {
			t.Fatalf("destination changed to %q", string(got))
		}
	})

	t.Run("missing source is an error", func(t *testing.T) {
		adapter := NewLocalConfigFSAdapter()
		root := t.TempDir()

		_, err := adapter.CopyFileIfAbsent(m.Path(filepath.Join(root, "absent.php")), m.Path(filepath.Join(root, "dst.php")))
		if err == nil {
			t.Fatalf("CopyFileIfAbsent() expected error for missing source")
		}
	})
}

func TestLocalConfigFSAdapter_WriteFileIfAbsent(t *testing.T) {
	adapter := NewLocalConfigFSAdapter()
	root := t.TempDir()

	path := filepath.Join(root, "seed.php")

	created, err := adapter.WriteFileIfAbsent(m.Path(path), []byte("seed\n"), 0o644)
	if err != nil {
		t.Fatalf("WriteFileIfAbsent() error = %v", err)
	}
	if !created {
		t.Fatalf("WriteFileIfAbsent() = false on first write")
	}

	created, err = adapter.WriteFileIfAbsent(m.Path(path), []byte("other\n"), 0o644)
	if err != nil {
		t.Fatalf("WriteFileIfAbsent() error = %v", err)
	}
	if created {
		t.Fatalf("WriteFileIfAbsent() = true for existing file")
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading file: %v", err)
	}
	if string(got) != "seed\n" {
		t.Fatalf("file = %q, want original seed contents", string(got))
	}
}

func TestLocalConfigFSAdapter_WriteFile(t *testing.T) {
	adapter := NewLocalConfigFSAdapter()
	root := t.TempDir()

	path := filepath.Join(root, "manifest.php")
	writeTestFile(t, path, "stale\n")

	if err := adapter.WriteFile(m.Path(path), []byte("fresh\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading file: %v", err)
	}
	if string(got) != "fresh\n" {
		t.Fatalf("file = %q, want replaced contents", string(got))
	}
}

func TestLocalConfigFSAdapter_Remove(t *testing.T) {
	adapter := NewLocalConfigFSAdapter()
	root := t.TempDir()

	path := filepath.Join(root, "trigger.php")
	writeTestFile(t, path, "<?php\n")

	if err := adapter.Remove(m.Path(path)); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("file still present after Remove()")
	}

	if err := adapter.Remove(m.Path(path)); err == nil {
		t.Fatalf("Remove() expected error for missing file")
	}
}

func TestLocalConfigFSAdapter_JoinPath(t *testing.T) {
	adapter := NewLocalConfigFSAdapter()

	got := adapter.JoinPath("vendor", "acme", "widget")
	want := m.Path(filepath.Join("vendor", "acme", "widget"))

	if got != want {
		t.Fatalf("JoinPath() = %q, want %q", got, want)
	}
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()

	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
}
