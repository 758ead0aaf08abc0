package pmxpb

import (
	"crypto/tls"
	"fmt"
	"net/url"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
)

// Target converts a service URL such as "http://[::1]:50051" into a gRPC
// target and reports whether TLS should be used. Plain host:port values are
// passed through unchanged.
func Target(serviceURL string) (target string, useTLS bool, err error) {
	if !strings.Contains(serviceURL, "://") {
		if serviceURL == "" {
			return "", false, fmt.Errorf("empty service address")
		}
		return serviceURL, false, nil
	}
	u, err := url.Parse(serviceURL)
	if err != nil {
		return "", false, fmt.Errorf("invalid service url %q: %w", serviceURL, err)
	}
	switch u.Scheme {
	case "http", "grpc":
		return u.Host, false, nil
	case "https", "grpcs":
		return u.Host, true, nil
	default:
		// Let gRPC resolve its own schemes (dns:///, unix:, passthrough:///).
		return serviceURL, false, nil
	}
}

// Dial opens a long-lived client connection to serviceURL. The connection
// is established lazily on the first call.
func Dial(serviceURL string, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
	target, useTLS, err := Target(serviceURL)
	if err != nil {
		return nil, err
	}
	creds := insecure.NewCredentials()
	if useTLS {
		creds = credentials.NewTLS(&tls.Config{})
	}
	dialOpts := append([]grpc.DialOption{grpc.WithTransportCredentials(creds)}, opts...)
	conn, err := grpc.NewClient(target, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create client for %s: %w", serviceURL, err)
	}
	return conn, nil
}
