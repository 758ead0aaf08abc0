package audio

// Device is one audio device reported by the host audio library.
type Device struct {
	Index             int
	Name              string
	HostAPI           string
	MaxInputChannels  int
	MaxOutputChannels int
}

// System defines the interface for host audio library implementations
type System interface {
	// Initialize initializes the audio system
	Initialize() error

	// Terminate terminates the audio system
	Terminate() error

	// Devices lists the devices known to the audio system
	Devices() ([]Device, error)
}
