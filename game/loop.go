package game

import (
	"context"
	"errors"
	"sync"
	"time"
)

const commandQueueSize = 64

// ErrLoopFinished is returned by Run on a Loop that has already run.
var ErrLoopFinished = errors.New("loop already finished")

// Loop drives a Game from one goroutine: queued commands and timer ticks are
// handled strictly one after the other, and a snapshot is published after
// each of them.
type Loop struct {
	game      *Game
	commands  chan Command
	snapshots chan Snapshot
	done      chan struct{}

	mutex   sync.Mutex
	started bool
	running bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

func NewLoop(g *Game) *Loop {
	return &Loop{
		game:      g,
		commands:  make(chan Command, commandQueueSize),
		snapshots: make(chan Snapshot, 1), // latest state only
		done:      make(chan struct{}),
	}
}

// Submit queues a command. It returns false once the loop has stopped.
func (l *Loop) Submit(cmd Command) bool {
	select {
	case <-l.done:
		return false
	default:
	}
	select {
	case l.commands <- cmd:
		return true
	case <-l.done:
		return false
	}
}

// Snapshots delivers the most recent state. Stale snapshots are dropped when
// the reader falls behind.
func (l *Loop) Snapshots() <-chan Snapshot {
	return l.snapshots
}

// Run processes commands and ticks until ctx is cancelled. The ticker follows
// the level's interval and is re-armed whenever it changes. A Loop runs once;
// later calls return ErrLoopFinished.
func (l *Loop) Run(ctx context.Context) error {
	l.mutex.Lock()
	if l.started {
		l.mutex.Unlock()
		return ErrLoopFinished
	}
	l.started = true
	l.mutex.Unlock()
	defer close(l.done)

	interval := l.game.TickInterval()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	l.publish()
	for {
		select {
		case <-ctx.Done():
			return nil
		case cmd := <-l.commands:
			l.game.Apply(cmd)
		case <-ticker.C:
			// A tick that fires after a pause or reset is a no-op in Tick.
			l.game.Tick()
		}

		if next := l.game.TickInterval(); next != interval {
			interval = next
			ticker.Reset(interval)
		}
		l.publish()
	}
}

// Start runs the loop in its own goroutine. It does nothing if the loop is
// running or has already run.
func (l *Loop) Start() {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	if l.running || l.started {
		return
	}
	l.running = true

	ctx, cancel := context.WithCancel(context.Background())
	l.cancel = cancel
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		l.Run(ctx)
	}()
}

// Stop ends a loop started with Start and waits for it to return.
func (l *Loop) Stop() {
	l.mutex.Lock()
	if !l.running {
		l.mutex.Unlock()
		return
	}
	l.running = false
	cancel := l.cancel
	l.mutex.Unlock()

	cancel()
	l.wg.Wait()
}

// publish sends without blocking, replacing an unread snapshot.
func (l *Loop) publish() {
	s := l.game.Snapshot()
	select {
	case l.snapshots <- s:
		return
	default:
	}
	select {
	case <-l.snapshots:
	default:
	}
	select {
	case l.snapshots <- s:
	default:
	}
}
