package cargohome

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/dchest/siphash"
	"go.trai.ch/cargo-open/internal/core/domain"
)

// strTerminator is appended after every hashed string, matching the way
// Rust's Hash implementation for str delimits its bytes.
const strTerminator = 0xff

// sourceHash returns cargo's short hash of a registry source: SipHash-2-4 with
// zero keys over the little-endian kind discriminant followed by the URL.
func sourceHash(kind domain.SourceKind, url string) string {
	buf := make([]byte, 8, 8+len(url)+1)
	binary.LittleEndian.PutUint64(buf, uint64(kind))
	buf = append(buf, url...)
	buf = append(buf, strTerminator)
	return encodeHash(siphash.Hash(0, 0, buf))
}

// stringHash returns cargo's short hash of a bare string, as used for git
// checkout directories.
func stringHash(s string) string {
	buf := make([]byte, 0, len(s)+1)
	buf = append(buf, s...)
	buf = append(buf, strTerminator)
	return encodeHash(siphash.Hash(0, 0, buf))
}

func encodeHash(sum uint64) string {
	var out [8]byte
	binary.LittleEndian.PutUint64(out[:], sum)
	return hex.EncodeToString(out[:])
}
