// Package logging mirrors log output to a Logstash TCP input without ever
// letting a slow or absent Logstash block request handling.
package logging

import (
	"errors"
	"io"
	"net"
	"strings"
	"sync"
	"time"
)

// TCPWriter forwards each write as one newline-terminated frame over a
// single persistent TCP connection. Failed dials and writes drop the
// payload and back off until the cooldown expires.
type TCPWriter struct {
	addr     string
	dial     time.Duration
	write    time.Duration
	cooldown time.Duration

	mu      sync.Mutex
	conn    net.Conn
	retryAt time.Time
	closed  bool
}

// NewTCPWriter connects lazily; the address is only validated for shape
// here, the first Write performs the dial.
func NewTCPWriter(addr string) (*TCPWriter, error) {
	if strings.TrimSpace(addr) == "" {
		return nil, errors.New("logging: empty logstash address")
	}
	return &TCPWriter{
		addr:     addr,
		dial:     2 * time.Second,
		write:    time.Second,
		cooldown: 5 * time.Second,
	}, nil
}

// Write implements io.Writer. It never returns a transport error to the
// caller; dropped frames are the trade for a non-blocking log path.
func (w *TCPWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	frame := make([]byte, len(p), len(p)+1)
	copy(frame, p)
	if frame[len(frame)-1] != '\n' {
		frame = append(frame, '\n')
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return 0, io.ErrClosedPipe
	}
	if !w.connectLocked() {
		return len(p), nil
	}

	if w.write > 0 {
		_ = w.conn.SetWriteDeadline(time.Now().Add(w.write))
	}
	if _, err := w.conn.Write(frame); err != nil {
		w.conn.Close()
		w.conn = nil
		w.retryAt = time.Now().Add(w.cooldown)
	}
	return len(p), nil
}

func (w *TCPWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true
	if w.conn == nil {
		return nil
	}
	err := w.conn.Close()
	w.conn = nil
	return err
}

func (w *TCPWriter) connectLocked() bool {
	if w.conn != nil {
		return true
	}
	if !w.retryAt.IsZero() && time.Now().Before(w.retryAt) {
		return false
	}

	conn, err := net.DialTimeout("tcp", w.addr, w.dial)
	if err != nil {
		w.retryAt = time.Now().Add(w.cooldown)
		return false
	}
	w.conn = conn
	w.retryAt = time.Time{}
	return true
}
