// Package tuuid generates version-1 (time-based) UUIDs and converts UUIDs
// between their canonical string form and their 16-byte binary form.
//
// A UUID is held as two 64-bit halves. The most significant half carries
// the 100ns tick count since 1582-10-15 with the version nibble set to 1;
// the least significant half carries 62 random bits behind the RFC 4122
// variant bits (binary 10).
//
// Basic Usage:
//
//	// Generate a new version-1 UUID string
//	s := tuuid.GenerateV1()
//
//	// Canonical string to 16 bytes and back
//	b, err := tuuid.ParseToBytes("00010203-0405-0607-0809-0a0b0c0d0e0f")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	s, err = tuuid.BytesToString(b[:])
//
//	// Work with values
//	id, err := tuuid.Parse(s)
//	fmt.Println(id.Version(), id.Variant(), id.Bytes())
//
// Custom Generator:
//
//	// Deterministic randomness and a fixed clock, e.g. in tests
//	gen := tuuid.NewGenerator(
//	    tuuid.WithRandReader(bytes.NewReader(seed)),
//	    tuuid.WithClock(func() time.Time { return fixed }),
//	)
//	id, err := gen.New()
//
// Errors:
//
// Parse and ParseToBytes fail with ErrMalformedInput for anything other
// than the 36-character xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx form (hex
// digits in either case). FromBytes and BytesToString fail with
// ErrInvalidLength unless given exactly 16 bytes.
//
// Thread Safety:
//
// All operations are safe for concurrent use. Uniqueness of generated
// values is probabilistic: two UUIDs generated in the same 16-tick window
// collide only if their 62 random bits match.
package tuuid
