package cli

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lzww0608/tuuid"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCmd(&out, &errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

var v1Line = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-1[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"default count", []string{"generate"}, 1},
		{"short flag", []string{"generate", "-n", "5"}, 5},
		{"long flag", []string{"generate", "--count", "3"}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, tt.args...)
			require.NoError(t, err)

			lines := strings.Split(strings.TrimSpace(out), "\n")
			require.Len(t, lines, tt.want)
			for _, line := range lines {
				assert.Regexp(t, v1Line, line)
			}
		})
	}
}

func TestGenerate_InvalidCount(t *testing.T) {
	out, logs, err := run(t, "generate", "-n", "0")
	require.Error(t, err)
	assert.Empty(t, out)
	assert.Contains(t, logs, "count must be at least 1")
}

func TestToBytes(t *testing.T) {
	const id = "00010203-0405-0607-0809-0a0b0c0d0e0f"

	out, _, err := run(t, "to-bytes", id)
	require.NoError(t, err)
	assert.Equal(t, "000102030405060708090a0b0c0d0e0f\n", out)

	out, _, err = run(t, "to-bytes", "--format", "array", id)
	require.NoError(t, err)
	assert.Equal(t, "[0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15]\n", out)
}

func TestToBytes_Errors(t *testing.T) {
	_, logs, err := run(t, "to-bytes", "not-a-uuid")
	assert.ErrorIs(t, err, tuuid.ErrMalformedInput)
	assert.Contains(t, logs, "error parsing UUID")

	_, _, err = run(t, "to-bytes", "--format", "octal", "00010203-0405-0607-0809-0a0b0c0d0e0f")
	assert.ErrorContains(t, err, "unknown format")

	_, _, err = run(t, "to-bytes")
	assert.Error(t, err)
}

func TestFromBytes(t *testing.T) {
	out, _, err := run(t, "from-bytes", "000102030405060708090A0B0C0D0E0F")
	require.NoError(t, err)
	assert.Equal(t, "00010203-0405-0607-0809-0a0b0c0d0e0f\n", out)
}

func TestFromBytes_Errors(t *testing.T) {
	_, _, err := run(t, "from-bytes", "000102030405060708090a0b0c0d0e")
	assert.ErrorIs(t, err, tuuid.ErrInvalidLength)

	_, _, err = run(t, "from-bytes", "zz")
	assert.ErrorIs(t, err, tuuid.ErrMalformedInput)
}

func TestInspect(t *testing.T) {
	out, _, err := run(t, "inspect", "01b21dd2-1381-1400-bfff-ffffffffffff")
	require.NoError(t, err)
	assert.Contains(t, out, "version: 1\n")
	assert.Contains(t, out, "variant: RFC4122\n")
	assert.Contains(t, out, "ticks:   122192928000000000\n")
	assert.Contains(t, out, "time:    1970-01-01T00:00:00.0000000\n")

	out, _, err = run(t, "inspect", "f47ac10b-58cc-4372-a567-0e02b2c3d479")
	require.NoError(t, err)
	assert.Contains(t, out, "version: 4\n")
	assert.NotContains(t, out, "time:")
}

func TestLogLevel(t *testing.T) {
	_, logs, err := run(t, "--log-level", "debug", "generate", "-n", "2")
	require.NoError(t, err)
	assert.Contains(t, logs, "generated UUIDs")

	_, logs, err = run(t, "generate", "-n", "2")
	require.NoError(t, err)
	assert.NotContains(t, logs, "generated UUIDs")

	_, _, err = run(t, "--log-level", "loud", "generate")
	assert.ErrorContains(t, err, "invalid log level")
}

func TestLogLevel_FromEnv(t *testing.T) {
	t.Setenv(logLevelEnvVar, "debug")
	_, logs, err := run(t, "generate")
	require.NoError(t, err)
	assert.Contains(t, logs, "generated UUIDs")
}
