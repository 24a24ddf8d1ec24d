package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"placement-hub/internal/domain/application"

	"github.com/google/uuid"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met before timeout")
}

func TestHub_BroadcastReachesClients(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(nil)
	go hub.Run(ctx)

	c := &Client{hub: hub, send: make(chan []byte, 4)}
	hub.Register(c)
	waitFor(t, func() bool { return hub.ClientCount() == 1 })

	jobID := uuid.New()
	n := NewNotifier(hub)
	if err := n.Publish(ctx, application.Event{Type: application.EventShortlistReconciled, JobID: jobID, Status: application.StatusShortlisted}); err != nil {
		t.Fatalf("publish: %v", err)
	}

	select {
	case msg := <-c.send:
		var evt application.Event
		if err := json.Unmarshal(msg, &evt); err != nil {
			t.Fatalf("decode event: %v", err)
		}
		if evt.Type != application.EventShortlistReconciled || evt.JobID != jobID {
			t.Fatalf("unexpected event: %+v", evt)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("client did not receive broadcast")
	}
}

func TestHub_UnregisterClosesSend(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(nil)
	go hub.Run(ctx)

	c := &Client{hub: hub, send: make(chan []byte, 1)}
	hub.Register(c)
	waitFor(t, func() bool { return hub.ClientCount() == 1 })

	hub.Unregister(c)
	waitFor(t, func() bool { return hub.ClientCount() == 0 })

	if _, ok := <-c.send; ok {
		t.Fatalf("expected send channel to be closed")
	}
}

func TestNotifier_NilHub(t *testing.T) {
	var n *Notifier
	if err := n.Publish(context.Background(), application.Event{}); err != nil {
		t.Fatalf("nil notifier must be a no-op, got %v", err)
	}
}

func TestHub_UnregisterAfterStopDoesNotBlock(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub(nil)
	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()

	const n = 300
	clients := make([]*Client, n)
	for i := range clients {
		clients[i] = &Client{hub: hub, send: make(chan []byte, 1)}
		hub.Register(clients[i])
	}
	waitFor(t, func() bool { return hub.ClientCount() == n })

	cancel()
	<-stopped

	var wg sync.WaitGroup
	for _, c := range clients {
		wg.Add(1)
		go func(c *Client) {
			defer wg.Done()
			hub.Unregister(c)
		}(c)
	}
	finished := make(chan struct{})
	go func() {
		wg.Wait()
		close(finished)
	}()
	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatalf("unregister blocked after hub stopped")
	}

	for i, c := range clients {
		if _, ok := <-c.send; ok {
			t.Fatalf("client %d: expected send channel closed on stop", i)
		}
	}
	if hub.Register(&Client{hub: hub, send: make(chan []byte, 1)}) {
		t.Fatalf("expected register to be refused after stop")
	}
}

func TestOriginChecker(t *testing.T) {
	req := func(host, origin string) *http.Request {
		r := httptest.NewRequest(http.MethodGet, "http://"+host+"/ws/applications", nil)
		if origin != "" {
			r.Header.Set("Origin", origin)
		}
		return r
	}

	sameOrigin := originChecker(nil)
	if !sameOrigin(req("hub.example.edu", "https://hub.example.edu")) {
		t.Fatalf("expected same host to pass")
	}
	if sameOrigin(req("hub.example.edu", "https://evil.example.com")) {
		t.Fatalf("expected foreign origin to be rejected")
	}
	if !sameOrigin(req("hub.example.edu", "")) {
		t.Fatalf("expected request without origin to pass")
	}

	listed := originChecker([]string{"https://tpo.example.edu/"})
	if !listed(req("api.example.edu", "HTTPS://tpo.example.edu")) {
		t.Fatalf("expected listed origin to pass")
	}
	if listed(req("api.example.edu", "https://api.example.edu")) {
		t.Fatalf("expected unlisted origin to be rejected when a list is set")
	}

	if !originChecker([]string{"*"})(req("api.example.edu", "https://anything.test")) {
		t.Fatalf("expected wildcard to allow any origin")
	}
}
