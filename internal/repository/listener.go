package repository

import (
	"context"
	"sync"

	"github.com/avast/retry-go/v4"
	pkgRetry "github.com/ideanest/ideanest-backend/internal/pkg/retry"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const validationsChannel = "validations_changed"

// ChangeListener bridges the store's NOTIFY trigger to in-process
// subscribers. Subscribers get an opaque "something changed" signal per idea,
// at most once per change and coalesced under load; they re-fetch and
// re-aggregate, no delta is carried.
type ChangeListener struct {
	databaseURL string
	retryCfg    pkgRetry.RetryConfig
	logger      *zap.Logger

	mu     sync.Mutex
	subs   map[string]map[int]chan struct{}
	nextID int
}

func NewChangeListener(databaseURL string, retryCfg pkgRetry.RetryConfig, logger *zap.Logger) *ChangeListener {
	return &ChangeListener{
		databaseURL: databaseURL,
		retryCfg:    retryCfg,
		logger:      logger,
		subs:        make(map[string]map[int]chan struct{}),
	}
}

// Subscribe registers for change signals on one idea. The returned channel
// has a one-slot buffer; pending signals coalesce. The cancel func must be
// called when the consumer goes away.
func (l *ChangeListener) Subscribe(ideaID string) (<-chan struct{}, func()) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.nextID++
	id := l.nextID

	ch := make(chan struct{}, 1)
	if l.subs[ideaID] == nil {
		l.subs[ideaID] = make(map[int]chan struct{})
	}
	l.subs[ideaID][id] = ch

	cancel := func() {
		l.mu.Lock()
		defer l.mu.Unlock()

		if group, ok := l.subs[ideaID]; ok {
			delete(group, id)
			if len(group) == 0 {
				delete(l.subs, ideaID)
			}
		}
	}

	return ch, cancel
}

// Run listens on the validations channel until ctx is done. A dedicated
// connection is used because LISTEN state must not leak back into the pool;
// connection loss is retried with backoff.
func (l *ChangeListener) Run(ctx context.Context) {
	opts := append(l.retryCfg.ToRetryOptions(),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
	)

	for ctx.Err() == nil {
		err := retry.Do(func() error {
			return l.listen(ctx)
		}, opts...)

		if ctx.Err() != nil {
			l.logger.Info("change listener stopped")
			return
		}

		l.logger.Error("change listener connection lost, reconnecting", zap.Error(err))
	}
}

func (l *ChangeListener) listen(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, l.databaseURL)
	if err != nil {
		return err
	}
	defer conn.Close(context.Background())

	if _, err := conn.Exec(ctx, "LISTEN "+validationsChannel); err != nil {
		return err
	}

	l.logger.Info("change listener attached", zap.String("channel", validationsChannel))

	for {
		notification, err := conn.WaitForNotification(ctx)
		if err != nil {
			return err
		}

		l.dispatch(notification.Payload)
	}
}

func (l *ChangeListener) dispatch(ideaID string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, ch := range l.subs[ideaID] {
		select {
		case ch <- struct{}{}:
		default:
			// Subscriber already has a pending signal; coalesce.
		}
	}
}
