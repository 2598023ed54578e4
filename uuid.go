package tuuid

import (
	"database/sql/driver"
	"encoding/hex"
	"fmt"
)

// UUID is a 128-bit identifier held as its most and least significant
// 64-bit halves. The zero value is the nil UUID. UUID values are comparable
// and may be used as map keys.
type UUID struct {
	msb uint64
	lsb uint64
}

// Version represents the UUID version
type Version byte

const (
	_ Version = iota
	VersionTimeBased
	VersionDCESecurity
	VersionNameBasedMD5
	VersionRandom
	VersionNameBasedSHA1
)

// Variant represents the UUID variant
type Variant byte

const (
	VariantNCS Variant = iota
	VariantRFC4122
	VariantMicrosoft
	VariantFuture
)

// canonicalLen is the length of xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
const canonicalLen = 36

// Nil is the nil UUID (all zeros)
var Nil UUID

// FromBits builds a UUID from its two 64-bit halves.
func FromBits(msb, lsb uint64) UUID {
	return UUID{msb: msb, lsb: lsb}
}

// MostSignificantBits returns the upper 64 bits of the UUID.
func (u UUID) MostSignificantBits() uint64 {
	return u.msb
}

// LeastSignificantBits returns the lower 64 bits of the UUID.
func (u UUID) LeastSignificantBits() uint64 {
	return u.lsb
}

// Version returns the version of the UUID, stored in bits 12-15 of the
// most significant half.
func (u UUID) Version() Version {
	return Version((u.msb >> 12) & 0x0f)
}

// Variant returns the variant of the UUID
func (u UUID) Variant() Variant {
	top := byte(u.lsb >> 56)
	switch {
	case (top & 0x80) == 0x00:
		return VariantNCS
	case (top & 0xc0) == 0x80:
		return VariantRFC4122
	case (top & 0xe0) == 0xc0:
		return VariantMicrosoft
	default:
		return VariantFuture
	}
}

// String returns the canonical string representation of the UUID
// in the format: xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
func (u UUID) String() string {
	var buf [canonicalLen]byte
	encodeHex(buf[:], u.Array())
	return string(buf[:])
}

// encodeHex encodes the big-endian bytes of a UUID to its canonical hex representation
func encodeHex(dst []byte, b [16]byte) {
	hex.Encode(dst[0:8], b[0:4])
	dst[8] = '-'
	hex.Encode(dst[9:13], b[4:6])
	dst[13] = '-'
	hex.Encode(dst[14:18], b[6:8])
	dst[18] = '-'
	hex.Encode(dst[19:23], b[8:10])
	dst[23] = '-'
	hex.Encode(dst[24:36], b[10:16])
}

// Parse parses a UUID from its canonical string representation
// xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx. Hex digits may be upper or lower
// case. Any other input, including the urn:uuid: and braced forms, fails
// with ErrMalformedInput.
func Parse(s string) (UUID, error) {
	if len(s) != canonicalLen {
		return Nil, ErrMalformedInput
	}
	if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return Nil, ErrMalformedInput
	}

	var b [16]byte
	segments := [...]struct {
		dst      []byte
		from, to int
	}{
		{b[0:4], 0, 8},
		{b[4:6], 9, 13},
		{b[6:8], 14, 18},
		{b[8:10], 19, 23},
		{b[10:16], 24, 36},
	}
	for _, seg := range segments {
		if err := decodeHexSegment(seg.dst, s[seg.from:seg.to]); err != nil {
			return Nil, err
		}
	}
	return fromArray(b), nil
}

// MustParse is like Parse but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables.
func MustParse(s string) UUID {
	uuid, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("tuuid: Parse(%q): %v", s, err))
	}
	return uuid
}

// decodeHexSegment decodes a hex string segment into a byte slice
func decodeHexSegment(dst []byte, src string) error {
	if _, err := hex.Decode(dst, []byte(src)); err != nil {
		return ErrMalformedInput
	}
	return nil
}

// IsNil returns true if the UUID is the nil UUID (all zeros)
func (u UUID) IsNil() bool {
	return u == Nil
}

// MarshalText implements the encoding.TextMarshaler interface
func (u UUID) MarshalText() ([]byte, error) {
	buf := make([]byte, canonicalLen)
	encodeHex(buf, u.Array())
	return buf, nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface
func (u *UUID) UnmarshalText(data []byte) error {
	id, err := Parse(string(data))
	if err != nil {
		return err
	}
	*u = id
	return nil
}

// MarshalBinary implements the encoding.BinaryMarshaler interface
func (u UUID) MarshalBinary() ([]byte, error) {
	return u.Bytes(), nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface
func (u *UUID) UnmarshalBinary(data []byte) error {
	id, err := FromBytes(data)
	if err != nil {
		return err
	}
	*u = id
	return nil
}

// Scan implements the sql.Scanner interface for database compatibility.
// It accepts the canonical string form or the 16-byte binary form.
func (u *UUID) Scan(src interface{}) error {
	switch src := src.(type) {
	case nil:
		return nil
	case string:
		id, err := Parse(src)
		if err != nil {
			return err
		}
		*u = id
		return nil
	case []byte:
		if len(src) == 0 {
			return nil
		}
		if len(src) == 16 {
			*u = fromArray([16]byte(src))
			return nil
		}
		id, err := Parse(string(src))
		if err != nil {
			return err
		}
		*u = id
		return nil
	default:
		return fmt.Errorf("tuuid: cannot scan type %T into UUID", src)
	}
}

// Value implements the driver.Valuer interface for database compatibility
func (u UUID) Value() (driver.Value, error) {
	return u.String(), nil
}

// Compare returns an integer comparing two UUIDs lexicographically.
// The result will be 0 if u==other, -1 if u < other, and +1 if u > other.
func (u UUID) Compare(other UUID) int {
	switch {
	case u.msb < other.msb:
		return -1
	case u.msb > other.msb:
		return 1
	case u.lsb < other.lsb:
		return -1
	case u.lsb > other.lsb:
		return 1
	}
	return 0
}

// Equal returns true if u and other represent the same UUID
func (u UUID) Equal(other UUID) bool {
	return u == other
}
