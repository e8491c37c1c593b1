package piecetree

import (
	"golang.org/x/text/encoding/unicode"
)

// DecodeUTF16 converts a BOM-prefixed (or explicitly little/big-endian)
// UTF-16 byte stream into a UTF-8 string suitable for passing to New or
// Insert as a chunk. This exists for collaborators that receive content
// from sources using 16-bit code units (e.g. an LSP client, or a file
// read with an explicit encoding), bridging spec §9's code-unit model
// back to the byte-offset-primary design this package actually uses.
//
// bigEndian only matters when data has no BOM; a BOM present in data
// always wins.
func DecodeUTF16(data []byte, bigEndian bool) (string, error) {
	endian := unicode.LittleEndian
	if bigEndian {
		endian = unicode.BigEndian
	}
	decoder := unicode.UTF16(endian, unicode.UseBOM).NewDecoder()
	out, err := decoder.Bytes(data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
