package engine

import (
	"os"

	"github.com/hashicorp/go-hclog"
	"gopkg.in/yaml.v3"
)

// ParseNativeMetadata decodes scratch_root/build-info.yaml. Unmatched
// properties are ignored; a missing file is not an error and yields
// all-default metadata, per the native decoder's contract.
func ParseNativeMetadata(scratch *ScratchPaths, logger hclog.Logger) (*NativeMetadata, error) {
	path := scratch.NativeMetadataFile()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		logger.Debug("📄 no build-info.yaml present, using defaults")
		return &NativeMetadata{}, nil
	}
	if err != nil {
		return nil, NewBadMetadataError(path, "reading build-info.yaml", err)
	}

	meta := &NativeMetadata{}
	if err := yaml.Unmarshal(data, meta); err != nil {
		return nil, NewBadMetadataError(path, "parsing build-info.yaml", err)
	}

	logger.Debug("📄 parsed native metadata", "name", meta.Name, "version", meta.Version)
	return meta, nil
}
