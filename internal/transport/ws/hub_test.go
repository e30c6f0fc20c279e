package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Gunvolt24/oncall_routes/internal/domain"
	"github.com/gorilla/websocket"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

func startHub(t *testing.T) (*Hub, string) {
	t.Helper()
	h := NewHub(Config{SendBuffer: 8, PingInterval: 5 * time.Second, WriteTimeout: time.Second}, noopLogger{})
	srv := httptest.NewServer(http.HandlerFunc(h.ServeWS))
	t.Cleanup(func() {
		h.Close()
		srv.Close()
	})
	return h, "ws" + strings.TrimPrefix(srv.URL, "http")
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", url, err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func waitClients(t *testing.T, h *Hub, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for h.Clients() != n {
		if time.Now().After(deadline) {
			t.Fatalf("want %d clients, got %d", n, h.Clients())
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func readChange(t *testing.T, conn *websocket.Conn) domain.CacheChange {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, raw, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var ch domain.CacheChange
	if err := json.Unmarshal(raw, &ch); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return ch
}

func TestHub_BroadcastFiltersByIntegration(t *testing.T) {
	h, url := startHub(t)

	all := dial(t, url)
	onlyC2 := dial(t, url+"?integration=C2")
	waitClients(t, h, 2)

	h.Broadcast(domain.CacheChange{Collection: "routes", Parent: "C1", Op: domain.OpMove, Sequence: []string{"b", "a"}})
	h.Broadcast(domain.CacheChange{Collection: "routes", Parent: "C2", Op: domain.OpRemove, IDs: []string{"x"}})

	if got := readChange(t, all); got.Parent != "C1" || got.Op != domain.OpMove {
		t.Fatalf("first change for unfiltered client: %+v", got)
	}
	if got := readChange(t, all); got.Parent != "C2" {
		t.Fatalf("second change for unfiltered client: %+v", got)
	}
	if got := readChange(t, onlyC2); got.Parent != "C2" || got.Op != domain.OpRemove {
		t.Fatalf("filtered client must get only C2: %+v", got)
	}
}

func TestHub_FilterMatchesIntegrationIDs(t *testing.T) {
	h, url := startHub(t)

	conn := dial(t, url+"?integration=C7")
	waitClients(t, h, 1)

	h.Broadcast(domain.CacheChange{Collection: "integrations", Parent: "search:", Op: domain.OpEvict, IDs: []string{"C7"}})
	if got := readChange(t, conn); got.Collection != "integrations" || got.IDs[0] != "C7" {
		t.Fatalf("unexpected change: %+v", got)
	}
}

func TestHub_CloseDisconnects(t *testing.T) {
	h, url := startHub(t)

	conn := dial(t, url)
	waitClients(t, h, 1)

	h.Close()
	if h.Clients() != 0 {
		t.Fatalf("want 0 clients after close, got %d", h.Clients())
	}
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Fatalf("connection must be closed")
	}
}

func TestHub_UnregisterOnClientClose(t *testing.T) {
	h, url := startHub(t)

	conn := dial(t, url)
	waitClients(t, h, 1)
	_ = conn.Close()
	waitClients(t, h, 0)
}
