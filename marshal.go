package stlconv

// Parse detects the representation of data and decodes it. The detected
// encoding is returned alongside the mesh so callers can compare it against
// the representation they intend to write.
func Parse(data []byte) (*Mesh, Encoding, error) {
	enc, err := Detect(data)
	if err != nil {
		return nil, 0, err
	}
	var m *Mesh
	switch enc {
	case EncodingBinary:
		m, err = DecodeBinary(data)
	case EncodingASCII:
		m, err = DecodeASCII(data)
	}
	if err != nil {
		return nil, 0, err
	}
	return m, enc, nil
}

// Serialize encodes m into the requested representation.
func Serialize(m *Mesh, enc Encoding) ([]byte, error) {
	switch enc {
	case EncodingBinary:
		return EncodeBinary(m)
	case EncodingASCII:
		return EncodeASCII(m)
	default:
		return nil, &Error{Kind: ErrUnsupportedEncoding, Detail: "unknown target encoding"}
	}
}
