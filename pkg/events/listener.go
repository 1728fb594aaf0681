package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/dhiyaancnirmal/mintaborate/pkg/store"
)

// listenCmd is a LISTEN/UNLISTEN command executed by the receive loop, which
// is the sole goroutine that touches the pgx connection.
type listenCmd struct {
	sql    string
	result chan error
}

// NotifyListener bridges cross-replica run events: it LISTENs on run
// channels, resolves each compact NOTIFY envelope to the persisted event and
// rebroadcasts it into the local Hub. Streamers deduplicate by id, so an
// event arriving both locally and via NOTIFY is harmless.
type NotifyListener struct {
	connString string
	store      store.Store
	hub        *Hub

	conn   *pgx.Conn // dedicated connection for LISTEN
	connMu sync.Mutex

	channels   map[string]bool // currently LISTENing channels
	channelsMu sync.RWMutex

	// cmdCh serializes LISTEN/UNLISTEN through the receive loop. This avoids
	// the "conn busy" race between WaitForNotification and Exec.
	cmdCh   chan listenCmd
	running atomic.Bool

	cancelLoop context.CancelFunc
	loopDone   chan struct{}
}

// NewNotifyListener creates a NOTIFY listener for run channels.
func NewNotifyListener(connString string, st store.Store, hub *Hub) *NotifyListener {
	return &NotifyListener{
		connString: connString,
		store:      st,
		hub:        hub,
		channels:   make(map[string]bool),
		cmdCh:      make(chan listenCmd, 16),
	}
}

// Start establishes the dedicated LISTEN connection and begins receiving.
func (l *NotifyListener) Start(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, l.connString)
	if err != nil {
		return fmt.Errorf("failed to connect for LISTEN: %w", err)
	}

	l.connMu.Lock()
	l.conn = conn
	l.connMu.Unlock()

	l.running.Store(true)

	loopCtx, cancel := context.WithCancel(ctx)
	l.cancelLoop = cancel
	l.loopDone = make(chan struct{})
	go func() {
		defer close(l.loopDone)
		l.receiveLoop(loopCtx)
	}()

	slog.Info("NotifyListener started")
	return nil
}

// SubscribeRun sends LISTEN for a run's channel on the dedicated connection.
func (l *NotifyListener) SubscribeRun(ctx context.Context, runID string) error {
	return l.listen(ctx, RunChannel(runID), true)
}

// UnsubscribeRun sends UNLISTEN for a run's channel.
func (l *NotifyListener) UnsubscribeRun(ctx context.Context, runID string) error {
	return l.listen(ctx, RunChannel(runID), false)
}

func (l *NotifyListener) listen(ctx context.Context, channel string, on bool) error {
	l.channelsMu.Lock()
	if l.channels[channel] == on {
		l.channelsMu.Unlock()
		return nil
	}
	l.channelsMu.Unlock()

	if !l.running.Load() {
		if !on {
			return nil
		}
		return fmt.Errorf("LISTEN connection not established")
	}

	verb := "LISTEN "
	if !on {
		verb = "UNLISTEN "
	}
	cmd := listenCmd{
		sql:    verb + pgx.Identifier{channel}.Sanitize(),
		result: make(chan error, 1),
	}

	select {
	case l.cmdCh <- cmd:
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-cmd.result:
		if err != nil {
			return fmt.Errorf("%s failed: %w", cmd.sql, err)
		}
		l.channelsMu.Lock()
		if on {
			l.channels[channel] = true
		} else {
			delete(l.channels, channel)
		}
		l.channelsMu.Unlock()
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// receiveLoop is the sole goroutine touching the pgx connection.
func (l *NotifyListener) receiveLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		l.processPendingCmds(ctx)

		l.connMu.Lock()
		conn := l.conn
		l.connMu.Unlock()

		if conn == nil {
			l.reconnect(ctx)
			continue
		}

		// Short timeout so pending LISTEN/UNLISTEN commands get picked up.
		waitCtx, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
		notification, err := conn.WaitForNotification(waitCtx)
		cancel()

		if err != nil {
			if ctx.Err() != nil {
				return
			}
			if waitCtx.Err() != nil {
				continue
			}
			slog.Error("NOTIFY receive error", "error", err)
			l.reconnect(ctx)
			continue
		}

		l.dispatch(ctx, notification.Payload)
	}
}

// dispatch resolves a NOTIFY envelope to the persisted event and rebroadcasts it.
func (l *NotifyListener) dispatch(ctx context.Context, payload string) {
	var envelope notifyEnvelope
	if err := json.Unmarshal([]byte(payload), &envelope); err != nil {
		slog.Warn("Malformed NOTIFY envelope", "error", err)
		return
	}
	events, err := l.store.GetRunEventsAfter(ctx, envelope.RunID, envelope.EventID-1, 1)
	if err != nil || len(events) == 0 {
		slog.Warn("Failed to resolve NOTIFY envelope",
			"run_id", envelope.RunID, "event_id", envelope.EventID, "error", err)
		return
	}
	l.hub.Broadcast(events[0])
}

func (l *NotifyListener) processPendingCmds(ctx context.Context) {
	for {
		select {
		case cmd := <-l.cmdCh:
			l.connMu.Lock()
			conn := l.conn
			l.connMu.Unlock()

			if conn == nil {
				cmd.result <- fmt.Errorf("LISTEN connection not established")
				continue
			}
			_, err := conn.Exec(ctx, cmd.sql)
			cmd.result <- err
		default:
			return
		}
	}
}

// reconnect re-establishes the LISTEN connection with exponential backoff and
// re-subscribes every channel.
func (l *NotifyListener) reconnect(ctx context.Context) {
	l.connMu.Lock()
	defer l.connMu.Unlock()

	if l.conn != nil {
		_ = l.conn.Close(ctx)
		l.conn = nil
	}

	backoff := time.Second
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}

		conn, err := pgx.Connect(ctx, l.connString)
		if err != nil {
			slog.Error("LISTEN reconnect failed", "error", err, "backoff", backoff)
			backoff = min(backoff*2, 30*time.Second)
			continue
		}
		l.conn = conn

		l.channelsMu.RLock()
		for ch := range l.channels {
			if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{ch}.Sanitize()); err != nil {
				slog.Error("Re-LISTEN failed", "channel", ch, "error", err)
			}
		}
		l.channelsMu.RUnlock()

		slog.Info("NotifyListener reconnected")
		return
	}
}

// Stop signals the receive loop to exit, waits for it, then closes the
// connection. Closing before the loop exits would race WaitForNotification.
func (l *NotifyListener) Stop(ctx context.Context) {
	l.running.Store(false)

	if l.cancelLoop != nil {
		l.cancelLoop()
	}
	if l.loopDone != nil {
		<-l.loopDone
	}

	l.connMu.Lock()
	defer l.connMu.Unlock()
	if l.conn != nil {
		_ = l.conn.Close(ctx)
		l.conn = nil
	}
}
