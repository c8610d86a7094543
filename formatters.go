// Winhex - hex dump viewer with search highlighting
// formatters.go - Input decoders and decoder selection
// Dual-licensed under MIT and Apache 2.0

package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"mime/quotedprintable"
	"os"
	"strconv"
)

// InputFormat names how the file contents are encoded on disk
type InputFormat string

const (
	FormatBinary   InputFormat = "binary"
	FormatHex      InputFormat = "hex"
	FormatQuoted   InputFormat = "quoted"
	FormatASCIIHex InputFormat = "asciihex"
)

// FormatDecoder turns raw file contents into the buffer to display
type FormatDecoder func([]byte) ([]byte, error)

// GetFormatDecoder returns the decoder for a given format name
func GetFormatDecoder(format InputFormat) (FormatDecoder, error) {
	switch format {
	case FormatBinary, "":
		return decodeBinary, nil
	case FormatHex:
		return decodeHex, nil
	case FormatQuoted:
		return decodeQuoted, nil
	case FormatASCIIHex:
		return decodeASCIIHex, nil
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

// LoadBuffer reads the whole file into memory and decodes it
func LoadBuffer(filename string, format InputFormat) ([]byte, error) {
	decode, err := GetFormatDecoder(format)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	buffer, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s data: %w", format, err)
	}

	return buffer, nil
}

func decodeBinary(data []byte) ([]byte, error) {
	return data, nil
}

// decodeHex accepts hexadecimal text with any whitespace between digits
func decodeHex(data []byte) ([]byte, error) {
	digits := bytes.Join(bytes.Fields(data), nil)
	buffer := make([]byte, hex.DecodedLen(len(digits)))
	if _, err := hex.Decode(buffer, digits); err != nil {
		return nil, err
	}
	return buffer, nil
}

func decodeQuoted(data []byte) ([]byte, error) {
	return io.ReadAll(quotedprintable.NewReader(bytes.NewReader(data)))
}

// decodeASCIIHex reads the ASCII/Hex hybrid encoding: the final byte is the
// toggle character, each toggle switches between literal ASCII and hex pairs,
// and inside hex XX*N expands to N (hex) copies of XX.
func decodeASCIIHex(data []byte) ([]byte, error) {
	data = bytes.TrimRight(data, "\r\n")
	if len(data) == 0 {
		return nil, fmt.Errorf("empty input")
	}

	toggle := data[len(data)-1]
	body := data[:len(data)-1]

	var result bytes.Buffer
	inHex := false

	for i := 0; i < len(body); {
		switch {
		case body[i] == toggle:
			inHex = !inHex
			i++
		case !inHex:
			result.WriteByte(body[i])
			i++
		default:
			if i+1 >= len(body) {
				return nil, fmt.Errorf("incomplete hex at position %d", i)
			}
			val, err := strconv.ParseUint(string(body[i:i+2]), 16, 8)
			if err != nil {
				return nil, fmt.Errorf("invalid hex at position %d: %v", i, err)
			}
			pos := i
			i += 2

			count := uint64(1)
			if i < len(body) && body[i] == '*' {
				end := i + 1
				for end < len(body) && isHexDigit(body[end]) {
					end++
				}
				count, err = strconv.ParseUint(string(body[i+1:end]), 16, 32)
				if err != nil {
					return nil, fmt.Errorf("invalid RLE count at position %d: %v", pos, err)
				}
				i = end
			}

			result.Write(bytes.Repeat([]byte{byte(val)}, int(count)))
		}
	}

	return result.Bytes(), nil
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'A' && b <= 'F') || (b >= 'a' && b <= 'f')
}
