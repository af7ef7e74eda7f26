package sidechannel

import (
	"fmt"
	"log"
	"time"
)

// RunSelfTest implements the connectivity_test harness: a minimal
// server/client pair that exercises both the TCP and UDP transports and
// prints what arrives. It is invoked from the cmd/turbocow
// "connectivity_test" subcommand rather than from `go test`, since its
// purpose is manual end-to-end verification against a real network path
// (supplemented feature, grounded on
// original_source/turbocow/src/protocol/connectivity_test.rs).
func RunSelfTest(mode string) error {
	switch mode {
	case "server":
		return runSelfTestServer()
	case "client":
		return runSelfTestClient()
	default:
		return fmt.Errorf("sidechannel: unknown connectivity_test mode %q, want \"server\" or \"client\"", mode)
	}
}

func runSelfTestServer() error {
	cfg := DefaultConfig()
	cfg.Role = RoleServer
	sock, err := StartServer(cfg)
	if err != nil {
		return err
	}
	defer sock.Close()

	log.Printf("connectivity_test: server listening on %s (tcp) / %s (udp)", cfg.TCPAddress, cfg.UDPAddress)
	for {
		msg, meta, ok := sock.Recv()
		if !ok {
			return nil
		}
		log.Printf("connectivity_test: received message type=%d guaranteed=%v", msg.Type, meta.GuaranteedDelivery)
	}
}

func runSelfTestClient() error {
	cfg := DefaultConfig()
	cfg.Role = RoleClient
	sock, err := StartClient(cfg)
	if err != nil {
		return err
	}

	if err := sock.Send(Message{Type: MsgPing}, true); err != nil {
		return err
	}
	if err := sock.Send(Message{Type: MsgPing}, false); err != nil {
		return err
	}
	if err := sock.Flush(); err != nil {
		return err
	}

	// Give the reliable and best-effort pings a moment to land before
	// tearing the pairing down.
	time.Sleep(100 * time.Millisecond)

	log.Printf("connectivity_test: sent guaranteed and best-effort ping")
	return sock.Close()
}
