package tuuid

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"
)

const (
	// gregorianToUnix is the number of seconds between 1582-10-15T00:00:00,
	// the version-1 time origin, and the Unix epoch.
	gregorianToUnix = 12219292800

	ticksPerSecond = 10_000_000
	nanosPerTick   = 100

	timeHighMask = 0xFFFFFFFFFFFF0000
	versionBits  = uint64(VersionTimeBased) << 12

	clockSeqMask = 0x3FFFFFFFFFFFFFFF
	variantBits  = 0x8000000000000000
)

// Generator produces version-1 UUIDs from a clock and a random source.
// A Generator is safe for concurrent use.
type Generator struct {
	mu         sync.Mutex // serializes reads from randReader
	randReader io.Reader
	now        func() time.Time
	logger     hclog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithRandReader sets the source of the clock-sequence/node bits.
// Deterministic readers make generation reproducible in tests.
func WithRandReader(r io.Reader) Option {
	return func(g *Generator) {
		g.randReader = r
	}
}

// WithClock sets the function used to read the current time.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// WithLogger sets the logger used to report random source failures.
func WithLogger(l hclog.Logger) Option {
	return func(g *Generator) {
		g.logger = l
	}
}

// NewGenerator creates a version-1 generator. By default it reads
// randomness from crypto/rand, the time from time.Now and logs nothing.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		randReader: rand.Reader,
		now:        time.Now,
		logger:     hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// New generates a version-1 UUID for the current time.
func (g *Generator) New() (UUID, error) {
	return g.NewWithTime(g.now())
}

// NewWithTime generates a version-1 UUID whose timestamp field encodes t.
// The only failure is an error from the random source.
func (g *Generator) NewWithTime(t time.Time) (UUID, error) {
	var buf [8]byte

	g.mu.Lock()
	_, err := io.ReadFull(g.randReader, buf[:])
	g.mu.Unlock()
	if err != nil {
		g.logger.Debug("random source read failed", "error", err)
		return Nil, fmt.Errorf("tuuid: read random source: %w", err)
	}

	return UUID{
		msb: timeBits(ticksAt(t)),
		lsb: clockSeqBits(binary.BigEndian.Uint64(buf[:])),
	}, nil
}

// ticksAt returns the number of 100ns intervals between the version-1 time
// origin and the wall-clock reading of t in its own location.
func ticksAt(t time.Time) uint64 {
	_, offset := t.Zone()
	secs := t.Unix() + int64(offset) + gregorianToUnix
	return uint64(secs*ticksPerSecond + int64(t.Nanosecond()/nanosPerTick))
}

// timeBits lays out the most significant half: bits 16-63 of ticks stay in
// place, bits 12-15 carry the version and bits 0-11 carry ticks bits 4-15.
func timeBits(ticks uint64) uint64 {
	timeHi := (ticks & 0xFFFF) >> 4
	return (ticks & timeHighMask) | versionBits | timeHi
}

// clockSeqBits keeps the low 62 random bits and sets the RFC 4122 variant.
func clockSeqBits(r uint64) uint64 {
	return (r & clockSeqMask) | variantBits
}

// Must is a helper that wraps a call to a function returning (UUID, error)
// and panics if the error is non-nil. It is intended for use in variable
// initializations such as:
//
//	var id = tuuid.Must(generator.New())
func Must(uuid UUID, err error) UUID {
	if err != nil {
		panic(err)
	}
	return uuid
}

// defaultGenerator is the package-level generator used by NewV1 and GenerateV1
var defaultGenerator = NewGenerator()

// NewV1 generates a version-1 UUID using the default generator.
func NewV1() (UUID, error) {
	return defaultGenerator.New()
}

// GenerateV1 returns a new version-1 UUID in canonical string form.
// The default generator reads crypto/rand, so it panics only if the
// operating system cannot supply randomness.
func GenerateV1() string {
	return Must(defaultGenerator.New()).String()
}

// Ticks returns the 100ns tick count recorded in a version-1 UUID.
// The layout drops the low 4 bits of the tick count, so the result is a
// multiple of 16. It returns 0 for other versions.
func (u UUID) Ticks() uint64 {
	if u.Version() != VersionTimeBased {
		return 0
	}
	return (u.msb & timeHighMask) | (u.msb&0x0FFF)<<4
}

// Time returns the wall-clock reading recorded in a version-1 UUID. The
// generator records local wall time without a zone, so the reading is
// returned in UTC. It returns the zero time for other versions.
func (u UUID) Time() time.Time {
	if u.Version() != VersionTimeBased {
		return time.Time{}
	}
	ticks := u.Ticks()
	secs := int64(ticks/ticksPerSecond) - gregorianToUnix
	nanos := int64(ticks%ticksPerSecond) * nanosPerTick
	return time.Unix(secs, nanos).UTC()
}
