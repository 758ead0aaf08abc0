package audio

import (
	"context"
	"errors"
	"testing"

	"github.com/gordonklaus/portaudio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d1nch8g/pmxout/assign"
)

type fakeSystem struct {
	devices    []Device
	initErr    error
	inits      int
	terminates int
}

func (f *fakeSystem) Initialize() error {
	f.inits++
	return f.initErr
}

func (f *fakeSystem) Terminate() error {
	f.terminates++
	return nil
}

func (f *fakeSystem) Devices() ([]Device, error) { return f.devices, nil }

func TestPorts_Naming(t *testing.T) {
	ports := Ports([]Device{
		{Index: 0, Name: "USB Mic", MaxInputChannels: 2},
		{Index: 3, Name: "Speakers", MaxOutputChannels: 1},
	})
	assert.Equal(t, []assign.Port{
		{Path: "USB Mic/capture_1", Direction: assign.DirectionOut, NodeID: 0},
		{Path: "USB Mic/capture_2", Direction: assign.DirectionOut, NodeID: 0},
		{Path: "Speakers/playback_1", Direction: assign.DirectionIn, NodeID: 3},
	}, ports)
}

func TestPorts_DuplicateNames(t *testing.T) {
	ports := Ports([]Device{
		{Index: 1, Name: "default", MaxOutputChannels: 1},
		{Index: 2, Name: "default", MaxOutputChannels: 1},
	})
	require.Len(t, ports, 2)
	assert.Equal(t, "default#1/playback_1", ports[0].Path)
	assert.Equal(t, "default#2/playback_1", ports[1].Path)
}

func TestDeviceRegistry_ListPorts(t *testing.T) {
	sys := &fakeSystem{devices: []Device{
		{Index: 0, Name: "Mic", MaxInputChannels: 1},
		{Index: 1, Name: "Out", MaxOutputChannels: 2},
	}}
	reg := NewDeviceRegistry(sys)

	ports, err := reg.ListPorts(context.Background(), nil)
	require.NoError(t, err)
	c := assign.NewPortCatalog(ports)
	assert.Equal(t, []string{"Out/playback_1", "Out/playback_2"}, c.In)
	assert.Equal(t, []string{"Mic/capture_1"}, c.Out)
	assert.Equal(t, 1, sys.inits)
	assert.Equal(t, 1, sys.terminates)

	node := uint32(0)
	ports, err = reg.ListPorts(context.Background(), &node)
	require.NoError(t, err)
	require.Len(t, ports, 1)
	assert.Equal(t, "Mic/capture_1", ports[0].Path)
}

func TestDeviceRegistry_InitFailure(t *testing.T) {
	reg := NewDeviceRegistry(&fakeSystem{initErr: errors.New("no host api")})
	_, err := reg.ListPorts(context.Background(), nil)
	assert.ErrorContains(t, err, "no host api")
}

func TestFromDeviceInfos(t *testing.T) {
	devices := fromDeviceInfos([]*portaudio.DeviceInfo{
		{Index: 4, Name: "hw:0", MaxInputChannels: 2, HostApi: &portaudio.HostApiInfo{Name: "ALSA"}},
		nil,
		{Index: 5, Name: "pulse", MaxOutputChannels: 2},
	})
	assert.Equal(t, []Device{
		{Index: 4, Name: "hw:0", HostAPI: "ALSA", MaxInputChannels: 2},
		{Index: 5, Name: "pulse", MaxOutputChannels: 2},
	}, devices)
}
