package audio

import (
	"sync"

	"github.com/gopxl/beep"
)

// Channel is an ordered playback queue. Queued streamers play strictly
// back to back; when the queue is empty the channel streams silence so
// the speaker keeps pulling from it. Append is safe for concurrent
// callers; ordering between two concurrent appends is whichever
// acquires the lock first.
//
// A disabled channel accepts and discards everything. This is the
// degraded mode used when no audio device could be opened: callers
// behave identically whether or not sound actually plays.
type Channel struct {
	mu       sync.Mutex
	queue    []beep.Streamer
	disabled bool
	waiters  []chan struct{}
}

// NewChannel creates an empty channel
func NewChannel() *Channel {
	return &Channel{}
}

// Disable permanently turns the channel into a no-op sink
func (c *Channel) Disable() {
	c.mu.Lock()
	c.disabled = true
	c.queue = nil
	c.notifyDrainedLocked()
	c.mu.Unlock()
}

// Append queues streamers for playback after everything already queued.
// It never blocks on playback; it returns once the queue is updated.
func (c *Channel) Append(streamers ...beep.Streamer) {
	c.mu.Lock()
	if !c.disabled {
		c.queue = append(c.queue, streamers...)
	}
	c.mu.Unlock()
}

// Len returns the number of queued streamers, including the one
// currently playing
func (c *Channel) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.queue)
}

// Drained returns a channel closed once the queue next becomes empty.
// If the queue is already empty it is closed immediately.
func (c *Channel) Drained() <-chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()

	done := make(chan struct{})
	if len(c.queue) == 0 {
		close(done)
		return done
	}
	c.waiters = append(c.waiters, done)
	return done
}

func (c *Channel) notifyDrainedLocked() {
	for _, done := range c.waiters {
		close(done)
	}
	c.waiters = nil
}

// Stream implements beep.Streamer. It drains queued streamers in
// submission order and fills with silence when the queue is empty,
// always reporting more samples available.
func (c *Channel) Stream(samples [][2]float64) (n int, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	filled := 0
	for filled < len(samples) {
		if len(c.queue) == 0 {
			for i := filled; i < len(samples); i++ {
				samples[i] = [2]float64{}
			}
			break
		}

		m, streaming := c.queue[0].Stream(samples[filled:])
		filled += m
		if !streaming {
			c.queue = c.queue[1:]
			if len(c.queue) == 0 {
				c.notifyDrainedLocked()
			}
		}
	}
	return len(samples), true
}

func (c *Channel) Err() error { return nil }
