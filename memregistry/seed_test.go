package memregistry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d1nch8g/pmxout/pmxpb"
)

const fixture = `
outputs:
  - id: 1
    name: Main
  - id: 7
    name: Phones
    left: /a/in1
ports:
  - path: /a/in1
    direction: in
    node: 4
  - path: /a/out1
    direction: source
    node: 4
`

func TestParseSeed(t *testing.T) {
	s, err := ParseSeed([]byte(fixture))
	require.NoError(t, err)

	outs := s.WireOutputs()
	require.Len(t, outs, 2)
	assert.Nil(t, outs[0].LeftPortPath)
	assert.Equal(t, uint32(7), outs[1].GetId())
	assert.Equal(t, "/a/in1", outs[1].GetLeftPortPath())
	assert.Nil(t, outs[1].RightPortPath)

	ports := s.WirePorts()
	require.Len(t, ports, 2)
	assert.Equal(t, pmxpb.PortDirection_IN, ports[0].GetDirection())
	assert.Equal(t, pmxpb.PortDirection_OUT, ports[1].GetDirection())
	assert.Equal(t, uint32(2), ports[1].GetId())
}

func TestParseSeed_BadDirection(t *testing.T) {
	_, err := ParseSeed([]byte("ports:\n  - path: /x\n    direction: sideways\n"))
	assert.ErrorContains(t, err, "sideways")
}

func TestLoadSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0o600))

	s, err := LoadSeed(path)
	require.NoError(t, err)
	assert.Len(t, s.Outputs, 2)

	_, err = LoadSeed(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestDefaultSeed_Valid(t *testing.T) {
	s := DefaultSeed()
	assert.NotEmpty(t, s.WireOutputs())
	for _, p := range s.Ports {
		_, err := parseDirection(p.Direction)
		assert.NoError(t, err, p.Path)
	}
}
