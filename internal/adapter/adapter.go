// Package adapter holds helpers shared by the outbound adapters.
package adapter

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
)

// MakeTLSConfig returns the client side [*tls.Config] for mutual TLS
// with the brokers. All args are file paths. It panics when a file can
// not be read or parsed.
func MakeTLSConfig(ca, cert, key string) *tls.Config {
	const op = "adapter.MakeTLSConfig"

	caCert, err := os.ReadFile(ca)
	if err != nil {
		panic(fmt.Errorf("%s: failed to read CA certificate file: %w", op, err))
	}

	caCertPool := x509.NewCertPool()
	if !caCertPool.AppendCertsFromPEM(caCert) {
		panic(fmt.Errorf("%s: failed to parse CA certificate %q", op, ca))
	}

	clientCert, err := tls.LoadX509KeyPair(cert, key)
	if err != nil {
		panic(fmt.Errorf("%s: %w", op, err))
	}

	return &tls.Config{
		MinVersion:   tls.VersionTLS12,
		RootCAs:      caCertPool,
		Certificates: []tls.Certificate{clientCert},
	}
}
