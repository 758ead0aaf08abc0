// Package pmxpb holds the generated protobuf and gRPC code for the mixer
// registry (pmx.PmxRegistry) and the pipewire port registry
// (pmx.pipewire.Pipewire), plus dialing and error helpers shared by both
// clients.
package pmxpb

//go:generate protoc -I ../proto --go_out=.. --go_opt=module=github.com/d1nch8g/pmxout --go-grpc_out=.. --go-grpc_opt=module=github.com/d1nch8g/pmxout pmx/registry.proto pmx/pipewire.proto
