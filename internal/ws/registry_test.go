package ws

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, c *Client) Event {
	t.Helper()
	select {
	case evt, ok := <-c.Events():
		require.True(t, ok, "client channel closed unexpectedly")
		return evt
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func assertNoEvent(t *testing.T, c *Client) {
	t.Helper()
	select {
	case evt, ok := <-c.Events():
		if ok {
			t.Fatalf("unexpected event delivered: %+v", evt)
		}
	default:
	}
}

func TestPushDeliversToAllUserConnections(t *testing.T) {
	r := NewRegistry()
	u1 := uuid.New()

	c1 := r.Register(u1)
	c2 := r.Register(u1)

	evt := Event{Type: "new_match", MatchID: "m1"}
	r.Push(u1, evt)

	assert.Equal(t, evt, receive(t, c1))
	assert.Equal(t, evt, receive(t, c2))

	// After unregistering c1, a subsequent push reaches only c2.
	r.Unregister(c1)
	r.Push(u1, Event{Type: "new_match", MatchID: "m2"})

	got := receive(t, c2)
	assert.Equal(t, "m2", got.MatchID)
	assert.Equal(t, 1, r.Connections())
}

func TestEventWireFormat(t *testing.T) {
	b, err := json.Marshal(Event{Type: "new_match", MatchID: "m1"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"new_match","matchId":"m1"}`, string(b))
}

func TestPushWithoutConnectionsIsNoop(t *testing.T) {
	r := NewRegistry()

	// Must not panic or block.
	r.Push(uuid.New(), Event{Type: "notification", Message: "hello"})
	assert.Equal(t, 0, r.Connections())
}

func TestPushDoesNotCrossUsers(t *testing.T) {
	r := NewRegistry()
	u1, u2 := uuid.New(), uuid.New()

	c1 := r.Register(u1)
	c2 := r.Register(u2)

	r.Push(u1, Event{Type: "notification", Message: "for u1"})

	assert.Equal(t, "for u1", receive(t, c1).Message)
	assertNoEvent(t, c2)
}

func TestUnregisterIsIdempotent(t *testing.T) {
	r := NewRegistry()
	c := r.Register(uuid.New())

	r.Unregister(c)
	// Second call must be a silent no-op, not a double close.
	r.Unregister(c)

	assert.Equal(t, 0, r.Connections())

	_, ok := <-c.Events()
	assert.False(t, ok, "channel should be closed after unregister")
}

func TestUnregisteredClientNeverReceives(t *testing.T) {
	r := NewRegistry()
	u1 := uuid.New()
	c := r.Register(u1)

	r.Unregister(c)
	r.Push(u1, Event{Type: "new_match", MatchID: "m1"})

	_, ok := <-c.Events()
	assert.False(t, ok)
}

func TestBroadcastReachesEveryConnection(t *testing.T) {
	r := NewRegistry()
	c1 := r.Register(uuid.New())
	c2 := r.Register(uuid.New())
	c3 := r.Register(c2.UserID())

	r.Broadcast(Event{Type: "new_report", ReportID: "r1"})

	for _, c := range []*Client{c1, c2, c3} {
		assert.Equal(t, "r1", receive(t, c).ReportID)
	}
}

func TestFullBufferDropsInsteadOfBlocking(t *testing.T) {
	r := NewRegistry()
	u1 := uuid.New()
	c := r.Register(u1)

	done := make(chan struct{})
	go func() {
		for i := 0; i < sendBuffer*2; i++ {
			r.Push(u1, Event{Type: "notification"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("push blocked on a full client buffer")
	}

	// The buffer holds at most sendBuffer events; the rest were dropped.
	n := 0
	for {
		select {
		case <-c.Events():
			n++
			continue
		default:
		}
		break
	}
	assert.Equal(t, sendBuffer, n)
}

func TestShutdownClosesAllClients(t *testing.T) {
	r := NewRegistry()
	c1 := r.Register(uuid.New())
	c2 := r.Register(uuid.New())

	r.Shutdown()

	assert.Equal(t, 0, r.Connections())
	_, ok := <-c1.Events()
	assert.False(t, ok)
	_, ok = <-c2.Events()
	assert.False(t, ok)
}

func TestConcurrentRegisterUnregisterPush(t *testing.T) {
	r := NewRegistry()
	u1 := uuid.New()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			c := r.Register(u1)
			r.Push(u1, Event{Type: "notification"})
			r.Unregister(c)
		}
		close(done)
	}()

	for i := 0; i < 100; i++ {
		c := r.Register(u1)
		r.Push(u1, Event{Type: "notification"})
		r.Unregister(c)
	}

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("concurrent registry usage deadlocked")
	}
	assert.Equal(t, 0, r.Connections())
}
