package engine

import (
	"bytes"

	"howett.net/plist"
)

// EncodeDictPlist frames a key/value listing as an XML property list dict,
// matching the macOS convention for --pkginfo/--config output.
func EncodeDictPlist(dict map[string]string) ([]byte, error) {
	var buf bytes.Buffer
	enc := plist.NewEncoderForFormat(&buf, plist.XMLFormat)
	if err := enc.Encode(dict); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeArrayPlist frames a string listing as an XML property list array,
// matching the macOS convention for --dominfo/--volinfo output.
func EncodeArrayPlist(items []string) ([]byte, error) {
	var buf bytes.Buffer
	enc := plist.NewEncoderForFormat(&buf, plist.XMLFormat)
	if err := enc.Encode(items); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
