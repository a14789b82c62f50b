package engine

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/hashicorp/go-hclog"
)

// ParseForeignMetadata globs *.nuspec at the scratch root (non-recursive).
// Zero matches leaves foreign metadata absent with a logged warning;
// multiple matches use the lexicographically first, also with a warning.
// The document is namespace-stripped before binding so that every
// historical schema version resolves to the same structural shape.
func ParseForeignMetadata(scratch *ScratchPaths, logger hclog.Logger) (*ForeignMetadata, error) {
	matches, err := filepath.Glob(filepath.Join(scratch.Root(), ForeignNuspecGlob))
	if err != nil {
		return nil, NewBadMetadataError(scratch.Root(), "globbing *.nuspec", err)
	}

	if len(matches) == 0 {
		logger.Warn("⚠️ no *.nuspec found at scratch root; foreign metadata absent")
		return nil, nil
	}

	sort.Strings(matches)
	chosen := matches[0]
	if len(matches) > 1 {
		logger.Warn("⚠️ multiple *.nuspec files found, using lexicographically first", "chosen", chosen, "candidates", matches)
	}

	data, err := os.ReadFile(chosen)
	if err != nil {
		return nil, NewBadMetadataError(chosen, "reading nuspec", err)
	}

	stripped, err := stripNamespaces(data)
	if err != nil {
		return nil, NewBadMetadataError(chosen, "stripping nuspec namespaces", err)
	}

	meta := &ForeignMetadata{}
	if err := xml.Unmarshal(stripped, meta); err != nil {
		return nil, NewBadMetadataError(chosen, "parsing nuspec", err)
	}

	logger.Debug("📄 parsed foreign metadata", "id", meta.ID, "version", meta.Version)
	return meta, nil
}

// stripNamespaces parses the document as a token stream and rewrites every
// element name to drop its namespace, dropping xmlns/xmlns:* declaration
// attributes along the way, then re-serializes the stream. This is what
// lets a single decoder accept every historical nuspec schema version: the
// element local names are identical across versions even though the
// declared namespace URI has changed several times.
func stripNamespaces(data []byte) ([]byte, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	var out bytes.Buffer
	enc := xml.NewEncoder(&out)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("tokenizing: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			t.Name.Space = ""
			t.Attr = stripNamespaceAttrs(t.Attr)
			if err := enc.EncodeToken(t); err != nil {
				return nil, err
			}
		case xml.EndElement:
			t.Name.Space = ""
			if err := enc.EncodeToken(t); err != nil {
				return nil, err
			}
		default:
			if err := enc.EncodeToken(tok); err != nil {
				return nil, err
			}
		}
	}

	if err := enc.Flush(); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func stripNamespaceAttrs(attrs []xml.Attr) []xml.Attr {
	kept := make([]xml.Attr, 0, len(attrs))
	for _, a := range attrs {
		if a.Name.Space == "xmlns" || a.Name.Local == "xmlns" {
			continue
		}
		a.Name.Space = ""
		kept = append(kept, a)
	}
	return kept
}
