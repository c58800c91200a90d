package finnhub

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestParseTrades(t *testing.T) {
	trades := parseTrades([]byte(`{"type":"trade","data":[{"s":"AAPL","p":101.5,"v":10,"t":1700000000000}]}`))
	if len(trades) != 1 {
		t.Fatalf("expected 1 trade, got %d", len(trades))
	}
	tr := trades[0]
	if tr.Symbol != "AAPL" || tr.Price != 101.5 || tr.Volume != 10 {
		t.Fatalf("unexpected trade %+v", tr)
	}
	if tr.Timestamp != 1700000000 {
		t.Fatalf("timestamp not converted to seconds: %d", tr.Timestamp)
	}
}

func TestParseTradesIgnoresOtherFrames(t *testing.T) {
	if got := parseTrades([]byte(`{"type":"ping"}`)); got != nil {
		t.Fatalf("ping frame produced trades: %v", got)
	}
	if got := parseTrades([]byte(`not json`)); got != nil {
		t.Fatalf("garbage frame produced trades: %v", got)
	}
}

// wsTestServer drops the first connection after one trade and keeps the
// second alive, so a client that survives must have redialed.
func wsTestServer(t *testing.T) (*httptest.Server, string) {
	t.Helper()
	upgrader := websocket.Upgrader{}
	var conns int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		n := atomic.AddInt32(&conns, 1)

		// wait for the subscribe frame so the client is past Subscribe
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
		msg := fmt.Sprintf(`{"type":"trade","data":[{"s":"AAPL","p":%d,"v":1,"t":1700000000000}]}`, 100+n)
		if err := c.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
			return
		}
		if n == 1 {
			_ = c.Close()
			return
		}
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}))

	return srv, "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestStreamReconnectsAfterReadFailure(t *testing.T) {
	srv, url := wsTestServer(t)
	defer srv.Close()

	s := NewStream("token", url, []string{"AAPL"}, 10*time.Millisecond, time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := s.Connect(ctx); err != nil {
		t.Fatalf("connect: %v", err)
	}
	if err := s.Subscribe(ctx); err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	trades, errs := s.Read(ctx)
	defer s.Close()

	var prices []float64
	var streamErrs int
	timeout := time.After(5 * time.Second)
	for len(prices) < 2 {
		select {
		case tr, ok := <-trades:
			if !ok {
				t.Fatalf("trade channel closed after %v; stream gave up instead of redialing", prices)
			}
			prices = append(prices, tr.Price)
		case <-errs:
			streamErrs++
		case <-timeout:
			t.Fatalf("only received %v before timeout", prices)
		}
	}

	if prices[0] != 101 || prices[1] != 102 {
		t.Fatalf("expected trades from both connections, got %v", prices)
	}
	if streamErrs == 0 {
		t.Fatal("the dropped connection should have been reported")
	}
	if !s.IsConnected() {
		t.Fatal("stream should report connected after redial")
	}
}

func TestStreamCloseEndsChannels(t *testing.T) {
	srv, url := wsTestServer(t)
	defer srv.Close()

	s := NewStream("token", url, []string{"AAPL"}, 10*time.Millisecond, time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := s.Connect(ctx); err != nil {
		t.Fatalf("connect: %v", err)
	}
	if err := s.Subscribe(ctx); err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	trades, _ := s.Read(ctx)

	if err := s.Close(); err != nil && !strings.Contains(err.Error(), "use of closed") {
		t.Logf("close: %v", err)
	}
	if s.IsConnected() {
		t.Fatal("closed stream reports connected")
	}

	timeout := time.After(5 * time.Second)
	for {
		select {
		case _, ok := <-trades:
			if !ok {
				return
			}
		case <-timeout:
			t.Fatal("trade channel did not close after Close")
		}
	}
}
