package engine

import (
	"os"

	"github.com/hashicorp/go-hclog"
)

// BuildPackageInfo assembles a PackageInfo for an already-extracted
// archive: it runs the appropriate metadata decoder, detects which of the
// four well-known script files are present, and enumerates payload files.
// The archive must already have been opened and extracted into scratch
// via OpenArchive and ExtractEntries before calling this.
func BuildPackageInfo(archivePath string, kind ArchiveKind, scratch *ScratchPaths, logger hclog.Logger) (*PackageInfo, error) {
	info := &PackageInfo{
		Kind:        kind,
		ArchivePath: archivePath,
		ScratchDir:  scratch.Root(),
	}

	switch kind {
	case KindNative:
		meta, err := ParseNativeMetadata(scratch, logger)
		if err != nil {
			return nil, err
		}
		info.NativeMeta = meta
		info.HasPreNative = fileExists(scratch.NativePreScript())
		info.HasPostNative = fileExists(scratch.NativePostScript())

		payload, err := EnumeratePayloadFiles(scratch.Payload())
		if err != nil {
			return nil, NewBadMetadataError(scratch.Payload(), "enumerating payload", err)
		}
		info.PayloadFiles = payload

	case KindForeign:
		meta, err := ParseForeignMetadata(scratch, logger)
		if err != nil {
			return nil, err
		}
		info.ForeignMeta = meta
		info.HasPreForeign = fileExists(scratch.ForeignPreScript())
		info.HasPostForeign = fileExists(scratch.ForeignPostScript())

		// Classification runs over the raw extracted entry set, not the
		// filtered set the Payload Mirror copies from: a Setup.exe under
		// tools/ must still steer the Classifier toward installer-type even
		// though the Mirror later excludes tools/ from what it copies.
		payload, err := EnumeratePayloadFiles(scratch.Root())
		if err != nil {
			return nil, NewBadMetadataError(scratch.Root(), "enumerating payload", err)
		}
		info.PayloadFiles = payload
	}

	return info, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
