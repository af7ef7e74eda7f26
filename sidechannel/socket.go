package sidechannel

import (
	"net"
	"sync"
	"time"
)

// Socket is a dual UDP (best-effort, batched) + TCP (reliable, framed)
// message queue. Nagle's algorithm is disabled on the TCP connection so
// small control frames aren't delayed waiting for more data (§4.8).
type Socket struct {
	cfg *Config

	tcpConn net.Conn
	tcpState connState

	udpConn net.Conn // "connected" UDP socket (client dial, or server after learning peer)
	udpState connState

	tcpMu    sync.Mutex
	tcpBatch []Message

	udpMu    sync.Mutex
	udpBatch []PixelUpdate

	recvCh  chan receivedMessage
	closeCh chan struct{}
	wg      sync.WaitGroup

	closeOnce sync.Once
}

type receivedMessage struct {
	msg  Message
	meta Meta
}

// StartServer binds the TCP and UDP listeners and blocks until one peer
// has connected on both, then starts the background I/O loops.
func StartServer(cfg *Config) (*Socket, error) {
	ln, err := net.Listen("tcp", cfg.TCPAddress)
	if err != nil {
		return nil, err
	}
	tcpConn, err := ln.Accept()
	ln.Close()
	if err != nil {
		return nil, err
	}
	disableNagle(tcpConn)

	udpLn, err := net.ListenPacket("udp", cfg.UDPAddress)
	if err != nil {
		tcpConn.Close()
		return nil, err
	}

	// Learn the peer's UDP address from its first datagram, then "connect"
	// so subsequent writes can use the simpler net.Conn API.
	buf := make([]byte, 65536)
	udpLn.SetReadDeadline(time.Now().Add(cfg.ConnectTimeout))
	n, addr, err := udpLn.ReadFrom(buf)
	udpLn.Close()
	if err != nil {
		tcpConn.Close()
		return nil, err
	}
	udpConn, err := net.Dial("udp", addr.String())
	if err != nil {
		tcpConn.Close()
		return nil, err
	}

	s := newSocket(cfg, tcpConn, udpConn)
	s.handleUDPPayload(buf[:n])
	return s, nil
}

// StartClient dials both transports.
func StartClient(cfg *Config) (*Socket, error) {
	tcpConn, err := net.DialTimeout("tcp", cfg.TCPAddress, cfg.ConnectTimeout)
	if err != nil {
		return nil, err
	}
	disableNagle(tcpConn)

	udpConn, err := net.Dial("udp", cfg.UDPAddress)
	if err != nil {
		tcpConn.Close()
		return nil, err
	}
	// Announce ourselves so the server learns our address (a server-bound
	// ListenPacket socket has no peer until it has received something).
	udpConn.Write([]byte{byte(MsgStartStreaming)})

	return newSocket(cfg, tcpConn, udpConn), nil
}

func newSocket(cfg *Config, tcpConn, udpConn net.Conn) *Socket {
	s := &Socket{
		cfg:     cfg,
		tcpConn: tcpConn,
		udpConn: udpConn,
		recvCh:  make(chan receivedMessage, 256),
		closeCh: make(chan struct{}),
	}
	s.tcpState.set(StateConnected)
	s.udpState.set(StateConnected)

	s.wg.Add(3)
	go s.tcpReadLoop()
	go s.udpReadLoop()
	go s.udpFlushLoop()

	return s
}

func disableNagle(conn net.Conn) {
	if tcp, ok := conn.(*net.TCPConn); ok {
		tcp.SetNoDelay(true)
	}
}

func (s *Socket) tcpReadLoop() {
	defer s.wg.Done()
	for {
		payload, err := readFrame(s.tcpConn)
		if err != nil {
			return
		}
		msg, err := decodeMessage(payload)
		if err != nil {
			continue
		}
		if msg.Type == MsgClose {
			s.tcpState.set(StateClosed)
			return
		}
		s.deliver(msg, Meta{GuaranteedDelivery: true})
	}
}

func (s *Socket) udpReadLoop() {
	defer s.wg.Done()
	buf := make([]byte, 65536)
	for {
		n, err := s.udpConn.Read(buf)
		if err != nil {
			return
		}
		s.handleUDPPayload(buf[:n])
	}
}

func (s *Socket) handleUDPPayload(payload []byte) {
	if len(payload) == 1 && MessageType(payload[0]) == MsgStartStreaming {
		// Peer-discovery announcement only (see StartClient); not a
		// deliverable message.
		return
	}
	msg, err := decodeMessage(payload)
	if err != nil {
		return
	}
	if msg.Type == MsgClose {
		s.udpState.set(StateClosed)
		return
	}
	s.deliver(msg, Meta{GuaranteedDelivery: false})
}

func (s *Socket) deliver(msg Message, meta Meta) {
	if msg.Type == MsgBatchLarge {
		for _, inner := range msg.Batch {
			s.deliver(inner, meta)
		}
		return
	}
	select {
	case s.recvCh <- receivedMessage{msg: msg, meta: meta}:
	case <-s.closeCh:
	}
}

func (s *Socket) udpFlushLoop() {
	defer s.wg.Done()
	ticker := time.NewTicker(s.cfg.UDPFlushInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.flushUDP()
		case <-s.closeCh:
			return
		}
	}
}

// Send enqueues msg for delivery. Guaranteed messages queue on the TCP
// path and are sent on the next Flush; best-effort SetPixel messages
// queue on the UDP path and auto-flush once MaxUDPBatch is reached.
// Any other best-effort message (e.g. MsgPing from the connectivity_test
// harness) is written immediately, since only pixel updates benefit
// from coalescing.
func (s *Socket) Send(msg Message, guaranteed bool) error {
	if guaranteed {
		s.tcpMu.Lock()
		s.tcpBatch = append(s.tcpBatch, msg)
		s.tcpMu.Unlock()
		return nil
	}

	if msg.Type != MsgSetPixel {
		payload, err := encode(msg)
		if err != nil {
			return err
		}
		_, err = s.udpConn.Write(payload)
		return err
	}

	s.udpMu.Lock()
	s.udpBatch = append(s.udpBatch, msg.Pixels...)
	full := len(s.udpBatch) >= MaxUDPBatch
	s.udpMu.Unlock()

	if full {
		return s.flushUDP()
	}
	return nil
}

// Flush forces both pending batches out immediately.
func (s *Socket) Flush() error {
	if err := s.flushTCP(); err != nil {
		return err
	}
	return s.flushUDP()
}

func (s *Socket) flushTCP() error {
	s.tcpMu.Lock()
	batch := s.tcpBatch
	s.tcpBatch = nil
	s.tcpMu.Unlock()

	if len(batch) == 0 {
		return nil
	}

	s.tcpState.set(StateDraining)
	defer s.tcpState.set(StateConnected)

	var toSend Message
	if len(batch) == 1 {
		toSend = batch[0]
	} else {
		toSend = Message{Type: MsgBatchLarge, Batch: batch}
	}

	payload, err := encode(toSend)
	if err != nil {
		return err
	}
	return writeFrame(s.tcpConn, payload)
}

func (s *Socket) flushUDP() error {
	s.udpMu.Lock()
	batch := s.udpBatch
	s.udpBatch = nil
	s.udpMu.Unlock()

	if len(batch) == 0 {
		return nil
	}

	s.udpState.set(StateDraining)
	defer s.udpState.set(StateConnected)

	payload, err := encode(Message{Type: MsgSetPixel, Pixels: batch})
	if err != nil {
		return err
	}
	_, err = s.udpConn.Write(payload)
	return err
}

// Recv blocks until a message arrives or the socket is closed.
func (s *Socket) Recv() (Message, Meta, bool) {
	select {
	case m, ok := <-s.recvCh:
		if !ok {
			return Message{}, Meta{}, false
		}
		return m.msg, m.meta, true
	case <-s.closeCh:
		return Message{}, Meta{}, false
	}
}

// Close flushes pending data, writes a MsgClose sentinel on both
// transports, and joins the background goroutines (§4.8 lifecycle).
func (s *Socket) Close() error {
	var err error
	s.closeOnce.Do(func() {
		_ = s.Flush()

		closePayload, encErr := encode(Message{Type: MsgClose})
		if encErr == nil {
			_ = writeFrame(s.tcpConn, closePayload)
			_, _ = s.udpConn.Write(closePayload)
		}

		s.tcpState.set(StateClosed)
		s.udpState.set(StateClosed)

		close(s.closeCh)
		s.tcpConn.Close()
		s.udpConn.Close()
		s.wg.Wait()
		close(s.recvCh)
	})
	return err
}
