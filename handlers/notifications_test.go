package handlers

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"eduplay/models"
)

// overlapConn reports whether two WriteJSON calls ever ran at the same time.
type overlapConn struct {
	inWrite int32
	overlap int32
	writes  int32
}

func (c *overlapConn) WriteJSON(v interface{}) error {
	if !atomic.CompareAndSwapInt32(&c.inWrite, 0, 1) {
		atomic.StoreInt32(&c.overlap, 1)
	}
	time.Sleep(time.Millisecond)
	atomic.AddInt32(&c.writes, 1)
	atomic.StoreInt32(&c.inWrite, 0)
	return nil
}

func (c *overlapConn) Close() error { return nil }

type failingConn struct{}

func (failingConn) WriteJSON(v interface{}) error { return errors.New("broken pipe") }
func (failingConn) Close() error                  { return nil }

func TestNotifyBadgesSerializesWritesPerConnection(t *testing.T) {
	n := NewNotifier()
	conn := &overlapConn{}
	n.subscribe("u-1", conn)

	badges := []models.BadgeDefinition{{ID: "first_quiz", Name: "First Steps"}}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n.NotifyBadges("u-1", badges)
		}()
	}
	wg.Wait()

	if atomic.LoadInt32(&conn.overlap) != 0 {
		t.Error("concurrent NotifyBadges wrote the same connection simultaneously")
	}
	if got := atomic.LoadInt32(&conn.writes); got != 8 {
		t.Errorf("writes = %d, want 8", got)
	}
}

func TestNotifyBadgesDropsFailedConnection(t *testing.T) {
	n := NewNotifier()
	n.subscribe("u-1", failingConn{})

	n.NotifyBadges("u-1", []models.BadgeDefinition{{ID: "first_quiz"}})

	n.mu.RLock()
	remaining := len(n.conns["u-1"])
	n.mu.RUnlock()
	if remaining != 0 {
		t.Errorf("failed connection still subscribed, %d left", remaining)
	}
}

func TestNotifyBadgesOnlyReachesOwnUser(t *testing.T) {
	n := NewNotifier()
	mine := &overlapConn{}
	other := &overlapConn{}
	n.subscribe("u-1", mine)
	n.subscribe("u-2", other)

	n.NotifyBadges("u-1", []models.BadgeDefinition{{ID: "first_quiz"}})

	if atomic.LoadInt32(&mine.writes) != 1 {
		t.Errorf("subscriber writes = %d, want 1", mine.writes)
	}
	if atomic.LoadInt32(&other.writes) != 0 {
		t.Errorf("other user's subscriber writes = %d, want 0", other.writes)
	}
}
