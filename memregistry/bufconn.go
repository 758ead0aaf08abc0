package memregistry

import (
	"context"
	"fmt"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"
)

const bufSize = 1 << 20

// ServeInMemory serves s on an in-process listener and returns a client
// connection to it. stop closes the connection and the server.
func ServeInMemory(s *grpc.Server) (conn *grpc.ClientConn, stop func(), err error) {
	lis := bufconn.Listen(bufSize)
	go func() {
		_ = s.Serve(lis)
	}()

	conn, err = grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		s.Stop()
		return nil, nil, fmt.Errorf("failed to dial in-memory server: %w", err)
	}
	stop = func() {
		_ = conn.Close()
		s.Stop()
	}
	return conn, stop, nil
}
