package smtp

import (
	"context"
	"io"
	"net"
	"net/textproto"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/previz/site/pkg/mailer"
)

// fakeServer is a minimal SMTP server on loopback. With hang set it greets
// the client and never answers again.
type fakeServer struct {
	ln   net.Listener
	hang bool

	mu   sync.Mutex
	from string
	rcpt []string
	data string
}

func startFakeServer(t *testing.T, hang bool) *fakeServer {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	s := &fakeServer{ln: ln, hang: hang}
	go s.serve()
	return s
}

func (s *fakeServer) config() Config {
	return Config{
		Host:     "127.0.0.1",
		Port:     s.ln.Addr().(*net.TCPAddr).Port,
		Username: "site@example.com",
		Password: "secret",
	}
}

func (s *fakeServer) serve() {
	for {
		conn, err := s.ln.Accept()
		if err != nil {
			return
		}
		go s.handle(conn)
	}
}

func (s *fakeServer) handle(conn net.Conn) {
	defer conn.Close()
	tp := textproto.NewConn(conn)
	_ = tp.PrintfLine("220 localhost ESMTP")
	if s.hang {
		_, _ = io.Copy(io.Discard, conn)
		return
	}

	for {
		line, err := tp.ReadLine()
		if err != nil {
			return
		}
		verb, _, _ := strings.Cut(line, " ")
		switch strings.ToUpper(verb) {
		case "EHLO":
			_ = tp.PrintfLine("250-localhost")
			_ = tp.PrintfLine("250 AUTH PLAIN")
		case "AUTH":
			_ = tp.PrintfLine("235 2.7.0 Authentication successful")
		case "MAIL":
			s.mu.Lock()
			s.from = line
			s.mu.Unlock()
			_ = tp.PrintfLine("250 OK")
		case "RCPT":
			s.mu.Lock()
			s.rcpt = append(s.rcpt, line)
			s.mu.Unlock()
			_ = tp.PrintfLine("250 OK")
		case "DATA":
			_ = tp.PrintfLine("354 End data with <CR><LF>.<CR><LF>")
			body, err := tp.ReadDotBytes()
			if err != nil {
				return
			}
			s.mu.Lock()
			s.data = string(body)
			s.mu.Unlock()
			_ = tp.PrintfLine("250 OK queued")
		case "QUIT":
			_ = tp.PrintfLine("221 Bye")
			return
		default:
			_ = tp.PrintfLine("502 Command not implemented")
		}
	}
}

func TestNetTransport_Deliver(t *testing.T) {
	t.Parallel()

	srv := startFakeServer(t, false)
	s, err := New(srv.config())
	require.NoError(t, err)

	err = s.Send(context.Background(), &mailer.Email{
		To:      []string{"studio@example.com"},
		BCC:     []string{"archive@example.com"},
		Subject: "New enquiry from Ravi",
		HTML:    "<p>Hello</p>",
	})
	require.NoError(t, err)

	srv.mu.Lock()
	defer srv.mu.Unlock()
	assert.Contains(t, srv.from, "<site@example.com>")
	require.Len(t, srv.rcpt, 2)
	assert.Contains(t, srv.rcpt[0]+srv.rcpt[1], "<studio@example.com>")
	assert.Contains(t, srv.rcpt[0]+srv.rcpt[1], "<archive@example.com>")
	assert.Contains(t, srv.data, "Subject: New enquiry from Ravi")
	assert.NotContains(t, srv.data, "archive@example.com")
}

func TestNetTransport_ContextEndsExchange(t *testing.T) {
	t.Parallel()

	email := &mailer.Email{To: []string{"studio@example.com"}, Subject: "s", HTML: "x"}

	t.Run("deadline", func(t *testing.T) {
		t.Parallel()

		srv := startFakeServer(t, true)
		s, err := New(srv.config())
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		start := time.Now()
		err = s.Send(ctx, email)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Less(t, time.Since(start), 2*time.Second)
	})

	t.Run("cancel", func(t *testing.T) {
		t.Parallel()

		srv := startFakeServer(t, true)
		s, err := New(srv.config())
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		time.AfterFunc(50*time.Millisecond, cancel)

		start := time.Now()
		err = s.Send(ctx, email)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Less(t, time.Since(start), 2*time.Second)
	})
}
