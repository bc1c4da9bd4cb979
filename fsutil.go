package sitegen

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	gut "github.com/panyam/goutils/utils"
)

// CleanDir removes the directory tree at path if it exists and
// recreates it empty.
func CleanDir(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return err
	}
	return os.MkdirAll(path, 0755)
}

// EnsureDir creates the directory at path, parents included.  No-op
// when it already exists.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// CopyDir recursively copies src into dst, creating destination
// directories as needed.  Same-named files at dst are overwritten.
// A missing src is a no-op.
func CopyDir(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if !info.IsDir() {
		return copyFile(src, dst)
	}
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		return copyFile(path, target)
	})
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	if err := EnsureDir(filepath.Dir(dst)); err != nil {
		return err
	}
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()
	_, err = io.Copy(out, in)
	return err
}

// ReadJSON returns the parsed contents of the JSON file at path, or
// fallback when the file does not exist.  A file that is present but
// malformed also yields the fallback so optional inputs never fail a
// build, but that case is worth a warning.
func (s *Site) ReadJSON(path string, fallback any) any {
	data, err := os.ReadFile(path)
	if err != nil {
		return fallback
	}
	parsed, err := gut.JsonDecodeBytes(data)
	if err != nil {
		s.Console.Warnf("ignoring malformed %s: %v", filepath.Base(path), err)
		return fallback
	}
	return parsed
}
