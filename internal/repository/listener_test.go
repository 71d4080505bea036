package repository

import (
	"testing"
	"time"

	pkgRetry "github.com/ideanest/ideanest-backend/internal/pkg/retry"
	"go.uber.org/zap"
)

func newTestListener() *ChangeListener {
	return NewChangeListener("postgres://unused", *pkgRetry.DefaultRetryConfig(), zap.NewNop())
}

func TestSubscribeDispatchAndCancel(t *testing.T) {
	l := newTestListener()

	ch, cancel := l.Subscribe("idea-1")
	other, cancelOther := l.Subscribe("idea-2")
	defer cancelOther()

	l.dispatch("idea-1")

	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("expected a change signal for idea-1")
	}

	select {
	case <-other:
		t.Fatal("idea-2 subscriber must not receive idea-1 signals")
	default:
	}

	cancel()
	l.dispatch("idea-1")

	select {
	case <-ch:
		t.Fatal("cancelled subscriber must not receive signals")
	default:
	}
}

func TestDispatchCoalesces(t *testing.T) {
	l := newTestListener()

	ch, cancel := l.Subscribe("idea-1")
	defer cancel()

	// A burst of changes collapses into at most one pending signal.
	l.dispatch("idea-1")
	l.dispatch("idea-1")
	l.dispatch("idea-1")

	<-ch
	select {
	case <-ch:
		t.Fatal("signals should coalesce into a single pending notification")
	default:
	}
}
