package engine

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// MirrorPayload walks src depth-first, recreating directories at dst and
// copying files with overwrite semantics. Content is copied exactly;
// timestamps and ACLs are not preserved, per the component's contract.
func MirrorPayload(src, dst string, logger hclog.Logger) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dst, info.Mode()|0o700); err != nil {
		return err
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			if err := MirrorPayload(srcPath, dstPath, logger); err != nil {
				return err
			}
			continue
		}

		if err := copyFileOverwrite(srcPath, dstPath); err != nil {
			return err
		}
		logger.Trace("🪞 mirrored file", "dst", dstPath)
	}
	return nil
}

func copyFileOverwrite(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}

// enumerateForeignPayloadFiles lists payload candidates for a foreign
// archive, excluding the metadata subtrees and the nuspec file the mirror
// step must never copy.
func enumerateForeignPayloadFiles(root string) ([]string, error) {
	all, err := EnumeratePayloadFiles(root)
	if err != nil {
		return nil, err
	}
	var kept []string
	for _, rel := range all {
		if isForeignExcluded(rel) {
			continue
		}
		kept = append(kept, rel)
	}
	return kept, nil
}

func isForeignExcluded(rel string) bool {
	if strings.EqualFold(filepath.Ext(rel), ".nuspec") {
		return true
	}
	first := strings.SplitN(rel, "/", 2)[0]
	for _, dir := range ForeignExcludedDirs {
		if strings.EqualFold(first, dir) {
			return true
		}
	}
	return false
}

// MirrorForeignPayload copies the foreign-package payload: everything
// under scratch root except the excluded metadata subtrees and the nuspec
// file itself.
func MirrorForeignPayload(scratchRoot, dst string, logger hclog.Logger) error {
	files, err := enumerateForeignPayloadFiles(scratchRoot)
	if err != nil {
		return err
	}
	for _, rel := range files {
		src := filepath.Join(scratchRoot, rel)
		dest := filepath.Join(dst, rel)
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return err
		}
		if err := copyFileOverwrite(src, dest); err != nil {
			return err
		}
		logger.Trace("🪞 mirrored file", "dst", dest)
	}
	return nil
}
