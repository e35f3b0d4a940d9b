package stlconv

// Detect decides which representation the raw file content uses. A binary
// file has no structural marker separating it from ASCII (its header may
// itself begin with "solid"), so the decision rests on content: only a file
// made entirely of printable 7-bit ASCII plus TAB/CR/LF is treated as text.
// Any byte >= 0x80, DEL, or another control byte forces binary.
//
// A binary payload whose bytes all happen to fall in the text range is
// indistinguishable from ASCII under this policy and will be misread. That
// is a known limitation of the format, not something Detect can repair.
func Detect(data []byte) (Encoding, error) {
	if len(data) == 0 {
		return 0, &Error{Kind: ErrUnsupportedEncoding, Detail: "empty input"}
	}
	for _, b := range data {
		if !isTextByte(b) {
			return EncodingBinary, nil
		}
	}
	return EncodingASCII, nil
}

func isTextByte(b byte) bool {
	if b >= 0x80 || b == 0x7F {
		return false
	}
	if b >= 0x20 {
		return true
	}
	return b == '\t' || b == '\n' || b == '\r'
}
