package server

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ocean-server/pkg/api"
)

func TestClientForward_ClosesSendWithHub(t *testing.T) {
	c := &Client{ID: "c1", Send: make(chan api.StateResponse, 4), done: make(chan struct{})}
	updates := make(chan api.StateResponse, 2)
	updates <- api.StateResponse{Turn: 1}
	updates <- api.StateResponse{Turn: 2}
	close(updates)

	c.forward(updates)

	assert.Equal(t, 1, (<-c.Send).Turn)
	assert.Equal(t, 2, (<-c.Send).Turn)
	_, ok := <-c.Send
	assert.False(t, ok, "Send must be closed after the hub channel")
}

func TestClientForward_StopsWhenWriterGone(t *testing.T) {
	// Send забит, писатель уже вышел: пересылка не должна зависнуть
	c := &Client{ID: "c2", Send: make(chan api.StateResponse, 1), done: make(chan struct{})}
	c.Send <- api.StateResponse{Turn: 1}
	close(c.done)

	updates := make(chan api.StateResponse, 1)
	updates <- api.StateResponse{Turn: 2}

	finished := make(chan struct{})
	go func() {
		c.forward(updates)
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("forward blocked on a full Send after writer exit")
	}
	require.Len(t, c.Send, 1)
}
