package edit

import (
	"unicode/utf16"
	"unicode/utf8"
)

// Byte offsets are the buffer's canonical unit; the host text-input/IME
// system addresses text in UTF-16 code units. Every cross-boundary call
// passes through these conversions exactly once. Both directions scan the
// buffer once and clamp out-of-range input to the buffer end.

// OffsetToUTF16 converts a byte offset into s to a UTF-16 code-unit offset.
func OffsetToUTF16(s string, offset int) int {
	units := 0
	for i, r := range s {
		if i >= offset {
			break
		}
		units += utf16.RuneLen(r)
	}
	return units
}

// OffsetFromUTF16 converts a UTF-16 code-unit offset to a byte offset into s.
func OffsetFromUTF16(s string, offset16 int) int {
	bytes, units := 0, 0
	for _, r := range s {
		if units >= offset16 {
			break
		}
		units += utf16.RuneLen(r)
		bytes += utf8.RuneLen(r)
	}
	return bytes
}

// RangeToUTF16 converts a byte range to UTF-16 code units.
func RangeToUTF16(s string, r Range) Range {
	return Range{Start: OffsetToUTF16(s, r.Start), End: OffsetToUTF16(s, r.End)}
}

// RangeFromUTF16 converts a UTF-16 code-unit range to bytes.
func RangeFromUTF16(s string, r Range) Range {
	return Range{Start: OffsetFromUTF16(s, r.Start), End: OffsetFromUTF16(s, r.End)}
}
