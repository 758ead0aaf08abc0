package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":    zerolog.TraceLevel,
		"debug":    zerolog.DebugLevel,
		"info":     zerolog.InfoLevel,
		"warn":     zerolog.WarnLevel,
		"warning":  zerolog.WarnLevel,
		"error":    zerolog.ErrorLevel,
		"off":      zerolog.Disabled,
		"":         zerolog.InfoLevel,
		" bogus  ": zerolog.InfoLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, parseLevel(in), in)
	}
}

func TestInit_Get_Named(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Level: "debug", Format: "json", Component: "root", Writer: &buf})

	Get().Info().Str("k", "v").Msg("root-msg")
	Named("engine").Debug().Msg("named-msg")
	assert.Same(t, Get(), Named(""))

	// later calls are ignored
	Init(Options{Level: "error", Writer: &bytes.Buffer{}})
	Get().Info().Msg("still-here")

	out := buf.String()
	assert.Contains(t, out, `"message":"root-msg"`)
	assert.Contains(t, out, `"k":"v"`)
	assert.Contains(t, out, `"component":"engine"`)
	assert.Contains(t, out, "named-msg")
	assert.Contains(t, out, "still-here")
}

func TestNop(t *testing.T) {
	Nop().Error().Msg("dropped")
	assert.Equal(t, zerolog.Disabled, Nop().GetLevel())
}
