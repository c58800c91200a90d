package finnhub

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"Candl/internal/domain/models"
	drepo "Candl/internal/domain/repository"

	"github.com/gorilla/websocket"
)

// Stream maintains a Finnhub WebSocket subscription and delivers live trades
// for cache warming. The read loop owns the connection lifecycle: a failed
// read is reported once on the error channel, then the socket is redialed
// after the configured delay and reading resumes. The channels returned by
// Read close only when the context ends or the stream is closed, so consumers
// can range over them without handling reconnection themselves.
type Stream struct {
	apiKey         string
	websocketURL   string
	symbols        []string
	reconnectDelay time.Duration
	pingInterval   time.Duration

	mu        sync.Mutex // guards conn, connected, closed, and all writes
	conn      *websocket.Conn
	connected bool
	closed    bool
}

// NewStream creates a new Finnhub MarketStream.
func NewStream(apiKey, websocketURL string, symbols []string, reconnectDelay, pingInterval time.Duration) drepo.MarketStream {
	return &Stream{
		apiKey:         apiKey,
		websocketURL:   websocketURL,
		symbols:        symbols,
		reconnectDelay: reconnectDelay,
		pingInterval:   pingInterval,
	}
}

// Connect establishes the WebSocket connection.
func (s *Stream) Connect(ctx context.Context) error {
	u := fmt.Sprintf("%s?token=%s", s.websocketURL, s.apiKey)
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, u, nil)
	if err != nil {
		return fmt.Errorf("finnhub connect: %w", err)
	}

	s.mu.Lock()
	if s.conn != nil {
		_ = s.conn.Close()
	}
	s.conn = conn
	s.connected = true
	s.mu.Unlock()
	return nil
}

// Subscribe subscribes to the configured symbols on the current connection.
func (s *Stream) Subscribe(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil || !s.connected {
		return fmt.Errorf("finnhub not connected")
	}
	for _, sym := range s.symbols {
		msg := map[string]string{"type": "subscribe", "symbol": sym}
		if err := s.conn.WriteJSON(msg); err != nil {
			return fmt.Errorf("subscribe %s: %w", sym, err)
		}
	}
	return nil
}

type wsTrade struct {
	S string  `json:"s"`
	P float64 `json:"p"`
	V float64 `json:"v"`
	T int64   `json:"t"` // ms
}

type wsMessage struct {
	Type string    `json:"type"`
	Data []wsTrade `json:"data"`
}

// Read starts the ping and read loops and returns the trade and error
// channels. Must be called after Connect and Subscribe.
func (s *Stream) Read(ctx context.Context) (<-chan *models.Trade, <-chan error) {
	trades := make(chan *models.Trade, 1024)
	errs := make(chan error, 8)

	go s.pingLoop(ctx)
	go s.readLoop(ctx, trades, errs)

	return trades, errs
}

func (s *Stream) pingLoop(ctx context.Context) {
	ticker := time.NewTicker(s.pingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.mu.Lock()
			if s.closed {
				s.mu.Unlock()
				return
			}
			if s.conn != nil && s.connected {
				_ = s.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(5*time.Second))
			}
			s.mu.Unlock()
		}
	}
}

func (s *Stream) readLoop(ctx context.Context, trades chan<- *models.Trade, errs chan<- error) {
	defer close(trades)
	defer close(errs)

	for {
		conn := s.current()
		if conn == nil {
			return
		}

		_, b, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil || s.isClosed() {
				return
			}
			select {
			case errs <- fmt.Errorf("finnhub read: %w", err):
			default:
			}
			if !s.redial(ctx) {
				return
			}
			continue
		}

		for _, t := range parseTrades(b) {
			select {
			case trades <- t:
			default:
				// drop on backpressure
			}
		}
	}
}

// redial re-establishes the connection and subscription, retrying with the
// configured delay until it succeeds, the context ends, or the stream is
// closed. Reports false when reading should stop.
func (s *Stream) redial(ctx context.Context) bool {
	s.mu.Lock()
	s.connected = false
	if s.conn != nil {
		_ = s.conn.Close()
		s.conn = nil
	}
	s.mu.Unlock()

	for {
		select {
		case <-ctx.Done():
			return false
		case <-time.After(s.reconnectDelay):
		}
		if s.isClosed() {
			return false
		}
		if err := s.Connect(ctx); err != nil {
			continue
		}
		if err := s.Subscribe(ctx); err != nil {
			continue
		}
		return true
	}
}

func parseTrades(b []byte) []*models.Trade {
	var m wsMessage
	if err := json.Unmarshal(b, &m); err != nil {
		// non-trade frames (acks, pings) are not errors
		return nil
	}
	if m.Type != "trade" {
		return nil
	}
	out := make([]*models.Trade, 0, len(m.Data))
	for _, d := range m.Data {
		out = append(out, &models.Trade{Symbol: d.S, Timestamp: d.T / 1000, Price: d.P, Volume: d.V})
	}
	return out
}

func (s *Stream) current() *websocket.Conn {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	return s.conn
}

func (s *Stream) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Close stops the stream permanently; the read loop exits and the channels
// close.
func (s *Stream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.connected = false
	if s.conn != nil {
		err := s.conn.Close()
		s.conn = nil
		return err
	}
	return nil
}

// IsConnected reports whether a live connection is established.
func (s *Stream) IsConnected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connected && !s.closed
}
