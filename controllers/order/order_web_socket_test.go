package orderControllers

import (
	"testing"
	"time"

	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderPlacedDoesNotWaitForSlowClient(t *testing.T) {
	f := NewFeed()
	stalled := &feedClient{send: make(chan []byte, 1)}
	live := &feedClient{send: make(chan []byte, 4)}
	f.add(stalled)
	f.add(live)

	done := make(chan struct{})
	go func() {
		f.OrderPlaced(models.Order{ID: "o-1"})
		f.OrderPlaced(models.Order{ID: "o-2"})
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("broadcast blocked on a full client queue")
	}

	assert.Equal(t, 1, f.Len())
	assert.Len(t, live.send, 2)

	first, ok := <-stalled.send
	require.True(t, ok)
	assert.Contains(t, string(first), `"id":"o-1"`)
	_, ok = <-stalled.send
	assert.False(t, ok, "dropped client's queue is closed")
}

func TestFeedRemoveAndCloseAreIdempotent(t *testing.T) {
	f := NewFeed()
	c := &feedClient{send: make(chan []byte, 1)}
	f.add(c)

	f.Close()
	assert.Equal(t, 0, f.Len())
	assert.NotPanics(t, func() { f.remove(c) })
	assert.NotPanics(t, func() { f.OrderPlaced(models.Order{ID: "o-1"}) })
}
