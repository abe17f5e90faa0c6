// Package tokenfmt defines a small binary container for lexed token
// streams, so later pipeline stages and external tools can consume a
// lexing result without re-lexing the source.
package tokenfmt

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"

	"github.com/RafaelVVolkmer/Frost-Compiler/pkgs/token"
)

const (
	// Magic is the file magic number "FRTS" (4 bytes)
	Magic = "FRTS"

	// Version is the format version (uint16, little-endian).
	// Breaking changes increment major, additions increment minor.
	Version uint16 = 0x0001
)

// Flags is a bitmask for optional features. All bits are reserved.
type Flags uint16

// Stream is the payload of a token artifact: the lexed tokens plus the
// path they came from.
type Stream struct {
	Path   string        `json:"path,omitempty"`
	Tokens []token.Token `json:"tokens"`
}

// Write writes a token stream to w.
// Format: MAGIC(4) | VERSION(2) | FLAGS(2) | BODY_LEN(8) | BODY(CBOR)
func Write(w io.Writer, s *Stream) error {
	body, err := cbor.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode body: %w", err)
	}

	if _, err := w.Write([]byte(Magic)); err != nil {
		return fmt.Errorf("write magic: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, Version); err != nil {
		return fmt.Errorf("write version: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, uint16(Flags(0))); err != nil {
		return fmt.Errorf("write flags: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, uint64(len(body))); err != nil {
		return fmt.Errorf("write body length: %w", err)
	}
	if _, err := w.Write(body); err != nil {
		return fmt.Errorf("write body: %w", err)
	}
	return nil
}

// maxBodyLen bounds the decoded payload. Even a pathological source
// file stays far below this.
const maxBodyLen = 256 * 1024 * 1024

// Read reads a token stream from r, validating magic and version.
func Read(r io.Reader) (*Stream, error) {
	var preamble [16]byte
	if _, err := io.ReadFull(r, preamble[:]); err != nil {
		return nil, fmt.Errorf("read preamble: %w", err)
	}

	magic := string(preamble[0:4])
	if magic != Magic {
		return nil, fmt.Errorf("invalid magic: got %q, expected %q", magic, Magic)
	}

	version := binary.LittleEndian.Uint16(preamble[4:6])
	if version != Version {
		return nil, fmt.Errorf("unsupported version: got 0x%04x, expected 0x%04x", version, Version)
	}

	flags := binary.LittleEndian.Uint16(preamble[6:8])
	if flags != 0 {
		return nil, fmt.Errorf("unknown flags: 0x%04x", flags)
	}

	bodyLen := binary.LittleEndian.Uint64(preamble[8:16])
	if bodyLen > maxBodyLen {
		return nil, fmt.Errorf("body length %d exceeds maximum %d", bodyLen, maxBodyLen)
	}

	body := make([]byte, bodyLen)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	var s Stream
	if err := cbor.Unmarshal(body, &s); err != nil {
		return nil, fmt.Errorf("decode body: %w", err)
	}
	return &s, nil
}
