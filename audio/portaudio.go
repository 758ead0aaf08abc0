package audio

import (
	"github.com/gordonklaus/portaudio"
)

// PortAudio lists devices through the PortAudio library.
type PortAudio struct{}

var _ System = PortAudio{}

func (PortAudio) Initialize() error {
	return portaudio.Initialize()
}

func (PortAudio) Terminate() error {
	return portaudio.Terminate()
}

func (PortAudio) Devices() ([]Device, error) {
	infos, err := portaudio.Devices()
	if err != nil {
		return nil, err
	}
	return fromDeviceInfos(infos), nil
}

func fromDeviceInfos(infos []*portaudio.DeviceInfo) []Device {
	devices := make([]Device, 0, len(infos))
	for _, info := range infos {
		if info == nil {
			continue
		}
		d := Device{
			Index:             info.Index,
			Name:              info.Name,
			MaxInputChannels:  info.MaxInputChannels,
			MaxOutputChannels: info.MaxOutputChannels,
		}
		if info.HostApi != nil {
			d.HostAPI = info.HostApi.Name
		}
		devices = append(devices, d)
	}
	return devices
}
