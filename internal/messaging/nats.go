// Package messaging connects to NATS, or runs an in-process server when no
// broker is configured.
package messaging

import (
	"errors"
	"time"

	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
)

// Embedded is the NATS_URL value that starts an in-process server.
const Embedded = "embedded"

const readyTimeout = 4 * time.Second

// Bus is an open NATS connection plus the embedded server behind it, if any.
type Bus struct {
	Conn   *nats.Conn
	server *server.Server
}

// Open connects to url, or starts an embedded server for Embedded.
func Open(url string) (*Bus, error) {
	if url == Embedded {
		ns, err := StartEmbedded()
		if err != nil {
			return nil, err
		}
		nc, err := nats.Connect("", nats.InProcessServer(ns))
		if err != nil {
			ns.Shutdown()
			return nil, err
		}
		log.Info().Msg("connected to embedded NATS")
		return &Bus{Conn: nc, server: ns}, nil
	}

	nc, err := nats.Connect(url,
		nats.Name("venuehub"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, err
	}
	log.Info().Str("url", url).Msg("connected to NATS")
	return &Bus{Conn: nc}, nil
}

// StartEmbedded starts a NATS server without network listeners.
func StartEmbedded() (*server.Server, error) {
	ns, err := server.NewServer(&server.Options{DontListen: true})
	if err != nil {
		return nil, err
	}

	go ns.Start()

	if !ns.ReadyForConnections(readyTimeout) {
		ns.Shutdown()
		return nil, errors.New("nats server failed to start within timeout")
	}
	return ns, nil
}

// Close drains the connection and stops the embedded server.
func (b *Bus) Close() {
	if b.Conn != nil {
		if err := b.Conn.Drain(); err != nil {
			b.Conn.Close()
		}
	}
	if b.server != nil {
		b.server.Shutdown()
		b.server.WaitForShutdown()
	}
}
