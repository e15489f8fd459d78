package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/snakearcade/snake/rules"
)

// Stream follows the frame feed of a spectator server.
type Stream struct {
	Frames *FrameHolder

	conn *websocket.Conn
	done chan struct{}

	mu  sync.Mutex
	err error
}

// Watch connects to the spectator server at addr and starts collecting its
// frames in the background.
func Watch(ctx context.Context, addr string) (*Stream, error) {
	u, err := socketURL(addr)
	if err != nil {
		return nil, err
	}

	log.WithField("url", u).Info("connecting to spectator feed")
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, u, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "dial %s", u)
	}

	s := &Stream{
		Frames: NewFrameHolder(),
		conn:   conn,
		done:   make(chan struct{}),
	}
	go s.read()
	return s, nil
}

func (s *Stream) read() {
	defer close(s.done)
	for {
		mt, message, err := s.conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				s.setErr(errors.Wrap(err, "read frame"))
			}
			return
		}

		switch mt {
		case websocket.TextMessage:
			frame := rules.Frame{}
			if err := json.Unmarshal(message, &frame); err != nil {
				s.setErr(errors.Wrap(err, "unmarshal frame"))
				return
			}
			s.Frames.Append(frame)
		default:
			log.WithField("type", mt).Debug("unhandled message type")
		}
	}
}

func (s *Stream) setErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// Done is closed when the feed ends.
func (s *Stream) Done() <-chan struct{} {
	return s.done
}

// Err returns why the feed ended, nil for a normal close.
func (s *Stream) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Close disconnects from the feed.
func (s *Stream) Close() error {
	err := s.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second))
	if err != nil {
		log.WithError(err).Debug("unable to send close message")
	}
	return s.conn.Close()
}

// Status fetches the latest frame from the spectator server at addr.
func Status(addr string) (*rules.Frame, error) {
	client := &http.Client{
		Timeout: 5 * time.Second,
	}

	resp, err := client.Get(fmt.Sprintf("%s/game", httpURL(addr)))
	if err != nil {
		return nil, errors.Wrap(err, "get status")
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.WithError(err).Warn("error while closing body")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("status: unexpected response %s", resp.Status)
	}

	frame := &rules.Frame{}
	if err := json.NewDecoder(resp.Body).Decode(frame); err != nil {
		return nil, errors.Wrap(err, "decode status")
	}
	return frame, nil
}

func httpURL(addr string) string {
	if strings.HasPrefix(addr, "http://") || strings.HasPrefix(addr, "https://") {
		return strings.TrimSuffix(addr, "/")
	}
	return "http://" + strings.TrimSuffix(addr, "/")
}

func socketURL(addr string) (string, error) {
	u, err := url.Parse(httpURL(addr))
	if err != nil {
		return "", errors.Wrapf(err, "invalid address %q", addr)
	}
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	u.Path = "/socket"
	return u.String(), nil
}
