package cli

import (
	"bytes"
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d1nch8g/pmxout/assign"
	"github.com/d1nch8g/pmxout/memregistry"
)

// serve starts both registries on a loopback port and returns its url.
func serve(t *testing.T) (string, *memregistry.Mixer) {
	t.Helper()
	seed := memregistry.DefaultSeed()
	mx := memregistry.NewMixer(seed.WireOutputs())
	srv := memregistry.NewServer(mx, memregistry.NewPipewire(seed.WirePorts()))

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = srv.Serve(l) }()
	t.Cleanup(srv.Stop)
	return "http://" + l.Addr().String(), mx
}

func run(t *testing.T, url string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{
		"--env-file", filepath.Join(t.TempDir(), "none.env"),
		"--pmx-url", url,
		"--pipewire-url", url,
		"--port-source", "pipewire",
		"--retry-max", "0",
	}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestList(t *testing.T) {
	url, _ := serve(t)

	out, err := run(t, url, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Main")
	assert.Contains(t, out, "Monitor")
	assert.Contains(t, out, "/system/playback_FL")
	assert.Contains(t, out, "input ports:")
	assert.Contains(t, out, "/usb-dac/playback_FR")
	assert.Contains(t, out, "/system/capture_FL")
}

func TestAssign(t *testing.T) {
	url, mx := serve(t)

	out, err := run(t, url, "assign", "--output", "1", "--left", "/usb-dac/playback_FL", "--right", "/usb-dac/playback_FR")
	require.NoError(t, err)
	assert.Contains(t, out, "Main: left=/usb-dac/playback_FL right=/usb-dac/playback_FR")

	o, ok := mx.Output(1)
	require.True(t, ok)
	assert.Equal(t, "/usb-dac/playback_FL", o.GetLeftPortPath())
	assert.Equal(t, "/usb-dac/playback_FR", o.GetRightPortPath())
}

func TestAssign_ClearKeepsOtherSide(t *testing.T) {
	url, mx := serve(t)

	_, err := run(t, url, "assign", "--output", "2", "--clear-left")
	require.NoError(t, err)

	o, _ := mx.Output(2)
	assert.Nil(t, o.LeftPortPath)
	assert.Equal(t, "/system/playback_FR", o.GetRightPortPath())
}

func TestAssign_Rejects(t *testing.T) {
	url, mx := serve(t)

	_, err := run(t, url, "assign", "--output", "1", "--left", "/system/capture_FL")
	assert.ErrorContains(t, err, "not an input port")

	_, err = run(t, url, "assign", "--output", "9", "--left", "/system/playback_FL")
	assert.ErrorIs(t, err, assign.ErrNotFound)

	_, err = run(t, url, "assign", "--output", "1")
	assert.ErrorContains(t, err, "nothing to assign")

	assert.Empty(t, mx.Updates())
}

func TestAssignFlags_Edits(t *testing.T) {
	cmd := &cobra.Command{}
	f := assignFlags{}
	cmd.Flags().StringVar(&f.left, "left", "", "")
	cmd.Flags().StringVar(&f.right, "right", "", "")
	require.NoError(t, cmd.Flags().Parse([]string{"--right", "/b"}))
	f.clearLeft = true

	edits, err := f.edits(cmd)
	require.NoError(t, err)
	assert.Equal(t, []edit{{assign.SideLeft, ""}, {assign.SideRight, "/b"}}, edits)

	f.clearRight = true
	_, err = f.edits(cmd)
	assert.Error(t, err)
}

func TestSetup_InvalidPortSource(t *testing.T) {
	_, err := run(t, "http://127.0.0.1:1", "list", "--port-source", "jack")
	assert.ErrorContains(t, err, "invalid port source")
}

func TestLogFileClosedAfterCommand(t *testing.T) {
	url, _ := serve(t)
	path := filepath.Join(t.TempDir(), "pmxout.log")

	a := &app{}
	root := a.rootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{
		"--env-file", filepath.Join(t.TempDir(), "none.env"),
		"--pmx-url", url,
		"--pipewire-url", url,
		"--log-file", path,
		"list",
	})
	require.NoError(t, root.Execute())

	assert.Nil(t, a.logOut)
	assert.FileExists(t, path)
}

func TestLogWriter_OnlyFilesAreClosed(t *testing.T) {
	_, closer, err := logWriter("", false)
	require.NoError(t, err)
	assert.Nil(t, closer, "stderr is never closed")

	_, closer, err = logWriter("", true)
	require.NoError(t, err)
	assert.Nil(t, closer)

	path := filepath.Join(t.TempDir(), "out.log")
	w, closer, err := logWriter(path, true)
	require.NoError(t, err)
	require.NotNil(t, closer)
	require.NoError(t, closer.Close())
	_, err = w.Write([]byte("late\n"))
	assert.ErrorIs(t, err, os.ErrClosed)
}
