// Package fsutil implements the filesystem primitives the setup stages
// are built from: the proactive writability check, the recursive
// symlink-preserving copy, and the recursive listing.
package fsutil

import (
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/arthur-debert/nvup/pkg/errors"
	"github.com/arthur-debert/nvup/pkg/logging"
	"github.com/arthur-debert/nvup/pkg/types"
)

// CheckWritable reports whether path can be written to.
//
// If path exists, its own writability is probed. If it does not exist,
// all missing ancestors of path are created first and the nearest
// existing ancestor is probed. The directory creation is a deliberate
// side effect: after a successful check the parent chain exists.
// Every error is reported as "not writable", never propagated.
//
// The probe itself asks the host OS, so fsys is assumed to be backed
// by the real filesystem for the paths it answers about.
func CheckWritable(fsys types.FS, path string) bool {
	logger := logging.GetLogger("fsutil")

	if _, err := fsys.Stat(path); err == nil {
		ok := writable(path)
		logger.Debug().Str("path", path).Bool("writable", ok).Msg("Permission check on existing path")
		return ok
	}

	parent := filepath.Dir(path)
	if err := fsys.MkdirAll(parent, 0755); err != nil {
		logger.Debug().Err(err).Str("path", parent).Msg("Permission check could not create parent")
		return false
	}
	ok := writable(parent)
	logger.Debug().Str("path", parent).Bool("writable", ok).Msg("Permission check on nearest ancestor")
	return ok
}

// CopyTree copies src into dst recursively. A symlinked src is
// dereferenced and its contents copied; below the root, symbolic links
// are recreated rather than followed. Regular files keep their mode
// and modification time. dst is created if missing. The copy is
// sequential and stops at the first error.
func CopyTree(fsys types.FS, src, dst string) error {
	info, err := fsys.Lstat(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrCopyFailed, "cannot stat %s", src)
	}
	if info.Mode()&fs.ModeSymlink != 0 {
		// The root must produce a real copy even when it is a link
		// (a dangling one fails here instead of yielding an empty backup).
		info, err = fsys.Stat(src)
		if err != nil {
			return errors.Wrapf(err, errors.ErrCopyFailed, "cannot resolve link %s", src)
		}
	}
	return copyEntry(fsys, src, dst, info)
}

func copyEntry(fsys types.FS, src, dst string, info fs.FileInfo) error {
	switch {
	case info.Mode()&fs.ModeSymlink != 0:
		target, err := fsys.Readlink(src)
		if err != nil {
			return errors.Wrapf(err, errors.ErrCopyFailed, "cannot read link %s", src)
		}
		if err := fsys.Symlink(target, dst); err != nil {
			return errors.Wrapf(err, errors.ErrCopyFailed, "cannot recreate link %s", dst)
		}
		return nil

	case info.IsDir():
		if err := fsys.MkdirAll(dst, info.Mode().Perm()); err != nil {
			return errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", dst)
		}
		entries, err := fsys.ReadDir(src)
		if err != nil {
			return errors.Wrapf(err, errors.ErrCopyFailed, "cannot read %s", src)
		}
		for _, entry := range entries {
			childInfo, err := fsys.Lstat(filepath.Join(src, entry.Name()))
			if err != nil {
				return errors.Wrapf(err, errors.ErrCopyFailed, "cannot stat %s", filepath.Join(src, entry.Name()))
			}
			if err := copyEntry(fsys, filepath.Join(src, entry.Name()), filepath.Join(dst, entry.Name()), childInfo); err != nil {
				return err
			}
		}
		// Directory times are restored after the children are in place,
		// otherwise the child copies would bump them again.
		_ = fsys.Chtimes(dst, info.ModTime(), info.ModTime())
		return nil

	default:
		data, err := fsys.ReadFile(src)
		if err != nil {
			return errors.Wrapf(err, errors.ErrCopyFailed, "cannot read %s", src)
		}
		if err := fsys.WriteFile(dst, data, info.Mode().Perm()); err != nil {
			return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", dst)
		}
		_ = fsys.Chtimes(dst, info.ModTime(), info.ModTime())
		return nil
	}
}

// TreeEntry is one line of a recursive listing.
type TreeEntry struct {
	Path  string
	IsDir bool
}

// ListTree returns every entry under root (root excluded), sorted by
// path. Unreadable subtrees are skipped.
func ListTree(fsys types.FS, root string) []TreeEntry {
	var entries []TreeEntry
	var walk func(dir string)
	walk = func(dir string) {
		children, err := fsys.ReadDir(dir)
		if err != nil {
			return
		}
		for _, child := range children {
			path := filepath.Join(dir, child.Name())
			entries = append(entries, TreeEntry{Path: path, IsDir: child.IsDir()})
			if child.IsDir() {
				walk(path)
			}
		}
	}
	walk(root)
	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })
	return entries
}
