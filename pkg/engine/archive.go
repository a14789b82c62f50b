package engine

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// ClassifyArchiveKind derives the ArchiveKind from a file's extension.
// Any extension other than the two recognized ones is a BadInput error.
func ClassifyArchiveKind(path string) (ArchiveKind, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case NativeExt:
		return KindNative, nil
	case ForeignExt:
		return KindForeign, nil
	default:
		return 0, NewBadInputError(fmt.Sprintf("unsupported archive extension %q (expected %s or %s)", filepath.Ext(path), NativeExt, ForeignExt))
	}
}

// OpenArchive validates the archive's central directory without writing
// anything to disk. A failure here needs no cleanup, since nothing has
// been extracted yet.
func OpenArchive(path string, logger hclog.Logger) (*zip.ReadCloser, error) {
	info, statErr := os.Stat(path)
	if statErr != nil {
		if os.IsNotExist(statErr) {
			return nil, NewArchiveNotFoundError(path)
		}
		return nil, NewCorruptArchiveError(path, 0, statErr)
	}

	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, NewCorruptArchiveError(path, info.Size(), err)
	}

	logger.Debug("📦 opened archive", "path", path, "entries", len(r.File))
	return r, nil
}

// ExtractEntries writes every entry of an already-opened archive under
// scratch.Root(), rejecting any entry whose normalized path would escape
// the scratch root (zip-slip) and any symlink entry. A failure here leaves
// the Orchestrator to delete the (partially populated) scratch directory.
func ExtractEntries(r *zip.ReadCloser, scratch *ScratchPaths, logger hclog.Logger) error {
	for _, f := range r.File {
		if err := extractEntry(f, scratch.Root(), logger); err != nil {
			return err
		}
	}
	return nil
}

func extractEntry(f *zip.File, scratchRoot string, logger hclog.Logger) error {
	if f.Mode()&os.ModeSymlink != 0 {
		return newErr(MalformedEntry, scratchRoot, fmt.Sprintf("entry %q is a symbolic link", f.Name), nil)
	}

	dest, err := confinedPath(scratchRoot, f.Name)
	if err != nil {
		return NewMalformedEntryError(scratchRoot, f.Name)
	}

	if f.FileInfo().IsDir() {
		return os.MkdirAll(dest, 0o755)
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return NewCorruptArchiveError(scratchRoot, f.FileInfo().Size(), err)
	}

	src, err := f.Open()
	if err != nil {
		return NewCorruptArchiveError(scratchRoot, f.FileInfo().Size(), err)
	}
	defer src.Close()

	out, err := os.OpenFile(dest, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return NewCorruptArchiveError(scratchRoot, f.FileInfo().Size(), err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return NewCorruptArchiveError(scratchRoot, f.FileInfo().Size(), err)
	}

	logger.Trace("📦 extracted entry", "name", f.Name)
	return nil
}

// confinedPath joins name onto root and verifies the result does not
// escape root — the standard zip-slip defense. An absolute component in
// name is also rejected regardless of how filepath.Clean resolves it.
func confinedPath(root, name string) (string, error) {
	if filepath.IsAbs(name) {
		return "", fmt.Errorf("entry %q is absolute", name)
	}
	clean := filepath.Clean(name)
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("entry %q escapes scratch root", name)
	}
	dest := filepath.Join(root, clean)
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}
	absDest, err := filepath.Abs(dest)
	if err != nil {
		return "", err
	}
	if absDest != absRoot && !strings.HasPrefix(absDest, absRoot+string(filepath.Separator)) {
		return "", fmt.Errorf("entry %q escapes scratch root", name)
	}
	return dest, nil
}

// EnumeratePayloadFiles lists, in stable sorted order, every file under
// dir relative to dir — used to populate PackageInfo.PayloadFiles.
func EnumeratePayloadFiles(dir string) ([]string, error) {
	var files []string
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return files, nil
	}
	err := filepath.Walk(dir, func(p string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	return files, err
}
