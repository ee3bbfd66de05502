package multisig

import "fmt"

// Serializable is the byte-encoding contract shared by the value types.
// Serialize writes the fixed-width payload into dst at offset and returns
// the number of bytes written. Deserialize reads the payload from src at
// offset; on failure the receiver is left unchanged.
type Serializable interface {
	Serialize(dst []byte, offset int) (int, error)
	Deserialize(src []byte, offset int) error
}

// checkSlice validates that buf holds size bytes at offset.
func checkSlice(buf []byte, offset, size int) error {
	if offset < 0 {
		return fmt.Errorf("%w: negative offset %d", ErrBufferTooShort, offset)
	}
	if len(buf) < offset+size {
		return fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrBufferTooShort, size, offset, len(buf))
	}
	return nil
}
