package tuuid

import (
	"encoding/base64"
	"encoding/binary"
	"encoding/hex"
)

// Array returns the 16-byte big-endian form of the UUID: the most
// significant half in bytes 0-7, the least significant half in bytes 8-15.
func (u UUID) Array() [16]byte {
	var b [16]byte
	binary.BigEndian.PutUint64(b[0:8], u.msb)
	binary.BigEndian.PutUint64(b[8:16], u.lsb)
	return b
}

// Bytes returns the UUID as a newly allocated 16-byte slice
func (u UUID) Bytes() []byte {
	b := u.Array()
	return b[:]
}

func fromArray(b [16]byte) UUID {
	return UUID{
		msb: binary.BigEndian.Uint64(b[0:8]),
		lsb: binary.BigEndian.Uint64(b[8:16]),
	}
}

// FromBytes creates a UUID from a byte slice
func FromBytes(b []byte) (UUID, error) {
	if len(b) != 16 {
		return Nil, ErrInvalidLength
	}
	return fromArray([16]byte(b)), nil
}

// MustFromBytes is like FromBytes but panics on error
func MustFromBytes(b []byte) UUID {
	uuid, err := FromBytes(b)
	if err != nil {
		panic(err)
	}
	return uuid
}

// ParseToBytes parses a canonical UUID string and returns its 16-byte
// big-endian encoding.
func ParseToBytes(s string) ([16]byte, error) {
	uuid, err := Parse(s)
	if err != nil {
		return [16]byte{}, err
	}
	return uuid.Array(), nil
}

// BytesToString decodes a 16-byte big-endian UUID and returns its
// canonical string form.
func BytesToString(b []byte) (string, error) {
	uuid, err := FromBytes(b)
	if err != nil {
		return "", err
	}
	return uuid.String(), nil
}

// EncodeToHex encodes the UUID to a hexadecimal string without hyphens
func (u UUID) EncodeToHex() string {
	return hex.EncodeToString(u.Bytes())
}

// EncodeToBase64 encodes the UUID to a base64 string (URL-safe, no padding)
func (u UUID) EncodeToBase64() string {
	return base64.RawURLEncoding.EncodeToString(u.Bytes())
}

// EncodeToBase64Std encodes the UUID to a standard base64 string
func (u UUID) EncodeToBase64Std() string {
	return base64.StdEncoding.EncodeToString(u.Bytes())
}

// DecodeFromHex decodes a 32-digit hexadecimal string to UUID
func DecodeFromHex(s string) (UUID, error) {
	if len(s) != 32 {
		return Nil, ErrMalformedInput
	}
	var b [16]byte
	if _, err := hex.Decode(b[:], []byte(s)); err != nil {
		return Nil, ErrMalformedInput
	}
	return fromArray(b), nil
}

// DecodeFromBase64 decodes a base64 string to UUID (URL-safe encoding)
func DecodeFromBase64(s string) (UUID, error) {
	return decodeBase64(base64.RawURLEncoding, s)
}

// DecodeFromBase64Std decodes a standard base64 string to UUID
func DecodeFromBase64Std(s string) (UUID, error) {
	return decodeBase64(base64.StdEncoding, s)
}

func decodeBase64(enc *base64.Encoding, s string) (UUID, error) {
	data, err := enc.DecodeString(s)
	if err != nil {
		return Nil, ErrMalformedInput
	}
	return FromBytes(data)
}
