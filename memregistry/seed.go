package memregistry

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/d1nch8g/pmxout/pmxpb"
)

// Seed is the YAML fixture format for the in-memory registries.
//
//	outputs:
//	  - id: 1
//	    name: Main
//	    left: /alsa/in_FL
//	ports:
//	  - path: /alsa/in_FL
//	    direction: in
//	    node: 40
type Seed struct {
	Outputs []SeedOutput `yaml:"outputs"`
	Ports   []SeedPort   `yaml:"ports"`
}

type SeedOutput struct {
	ID    uint32 `yaml:"id"`
	Name  string `yaml:"name"`
	Left  string `yaml:"left,omitempty"`
	Right string `yaml:"right,omitempty"`
}

type SeedPort struct {
	Path      string `yaml:"path"`
	Name      string `yaml:"name,omitempty"`
	Direction string `yaml:"direction"`
	Node      uint32 `yaml:"node"`
}

// DefaultSeed is used when no fixture file is given.
func DefaultSeed() *Seed {
	return &Seed{
		Outputs: []SeedOutput{
			{ID: 1, Name: "Main"},
			{ID: 2, Name: "Monitor", Left: "/system/playback_FL", Right: "/system/playback_FR"},
			{ID: 3, Name: "Headphones"},
		},
		Ports: []SeedPort{
			{Path: "/system/capture_FL", Direction: "out", Node: 30},
			{Path: "/system/capture_FR", Direction: "out", Node: 30},
			{Path: "/system/playback_FL", Direction: "in", Node: 31},
			{Path: "/system/playback_FR", Direction: "in", Node: 31},
			{Path: "/usb-dac/playback_FL", Direction: "in", Node: 42},
			{Path: "/usb-dac/playback_FR", Direction: "in", Node: 42},
		},
	}
}

// LoadSeed reads a YAML fixture from path.
func LoadSeed(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed: %w", err)
	}
	return ParseSeed(data)
}

// ParseSeed decodes a YAML fixture.
func ParseSeed(data []byte) (*Seed, error) {
	var s Seed
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse seed: %w", err)
	}
	for i, p := range s.Ports {
		if _, err := parseDirection(p.Direction); err != nil {
			return nil, fmt.Errorf("port %d (%s): %w", i, p.Path, err)
		}
	}
	return &s, nil
}

func parseDirection(s string) (pmxpb.PortDirection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "in", "sink":
		return pmxpb.PortDirection_IN, nil
	case "out", "source":
		return pmxpb.PortDirection_OUT, nil
	default:
		return 0, fmt.Errorf("unknown direction %q", s)
	}
}

// WireOutputs converts the seed outputs to wire form.
func (s *Seed) WireOutputs() []*pmxpb.PmxOutput {
	out := make([]*pmxpb.PmxOutput, 0, len(s.Outputs))
	for _, o := range s.Outputs {
		out = append(out, &pmxpb.PmxOutput{
			Id:            o.ID,
			Name:          o.Name,
			LeftPortPath:  pmxpb.OptionalString(o.Left),
			RightPortPath: pmxpb.OptionalString(o.Right),
		})
	}
	return out
}

// WirePorts converts the seed ports to wire form. Ids follow seed order.
func (s *Seed) WirePorts() []*pmxpb.ListPort {
	out := make([]*pmxpb.ListPort, 0, len(s.Ports))
	for i, p := range s.Ports {
		dir, _ := parseDirection(p.Direction)
		out = append(out, &pmxpb.ListPort{
			Id:        uint32(i + 1),
			Path:      p.Path,
			Name:      p.Name,
			Direction: dir,
			NodeId:    p.Node,
		})
	}
	return out
}
