package llm

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/nguyentantai21042004/report-flow/internal/logger"
)

// fakeProvider returns the scripted outcomes in order, then repeats
// the last one.
type fakeProvider struct {
	outcomes []outcome
	calls    int
	rotated  int
}

type outcome struct {
	text string
	err  error
}

func (f *fakeProvider) Complete(ctx context.Context, system, user string, maxOutput int) (string, error) {
	i := f.calls
	if i >= len(f.outcomes) {
		i = len(f.outcomes) - 1
	}
	f.calls++
	o := f.outcomes[i]
	return o.text, o.err
}

func (f *fakeProvider) RotateKey() { f.rotated++ }

func svcErr(kind Kind) error {
	return &ServiceError{Kind: kind, Provider: "fake", Err: fmt.Errorf("scripted")}
}

func TestGatewayRetriesRateLimited(t *testing.T) {
	provider := &fakeProvider{outcomes: []outcome{
		{err: svcErr(RateLimited)},
		{text: "ok"},
	}}
	gw := NewGateway(provider, 4, time.Millisecond, logger.New("error"))

	text, err := gw.Complete(context.Background(), "sys", "user", 0)
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if text != "ok" {
		t.Errorf("Complete() = %q, want ok", text)
	}
	if provider.calls != 2 {
		t.Errorf("provider calls = %d, want 2", provider.calls)
	}
	if provider.rotated != 1 {
		t.Errorf("key rotations = %d, want 1", provider.rotated)
	}
}

func TestGatewayRetriesTimeoutWithoutRotation(t *testing.T) {
	provider := &fakeProvider{outcomes: []outcome{
		{err: svcErr(Timeout)},
		{text: "ok"},
	}}
	gw := NewGateway(provider, 4, time.Millisecond, logger.New("error"))

	if _, err := gw.Complete(context.Background(), "sys", "user", 0); err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if provider.rotated != 0 {
		t.Errorf("key rotations = %d, want 0", provider.rotated)
	}
}

func TestGatewayUnauthorizedNoRetry(t *testing.T) {
	provider := &fakeProvider{outcomes: []outcome{{err: svcErr(Unauthorized)}}}
	gw := NewGateway(provider, 4, time.Millisecond, logger.New("error"))

	_, err := gw.Complete(context.Background(), "sys", "user", 0)
	if err == nil {
		t.Fatal("Complete() error = nil, want unauthorized")
	}
	if provider.calls != 1 {
		t.Errorf("provider calls = %d, want 1 (zero retries)", provider.calls)
	}

	var sErr *ServiceError
	if !errors.As(err, &sErr) || sErr.Kind != Unauthorized {
		t.Errorf("error = %v, want Unauthorized ServiceError", err)
	}
	if !IsFatal(err) {
		t.Error("Unauthorized should be fatal")
	}
}

func TestGatewayInvalidResponseNoRetry(t *testing.T) {
	provider := &fakeProvider{outcomes: []outcome{{err: svcErr(InvalidResponse)}}}
	gw := NewGateway(provider, 4, time.Millisecond, logger.New("error"))

	if _, err := gw.Complete(context.Background(), "sys", "user", 0); err == nil {
		t.Fatal("Complete() error = nil, want invalid_response")
	}
	if provider.calls != 1 {
		t.Errorf("provider calls = %d, want 1", provider.calls)
	}
}

func TestGatewayExhaustsAttempts(t *testing.T) {
	provider := &fakeProvider{outcomes: []outcome{{err: svcErr(RateLimited)}}}
	gw := NewGateway(provider, 3, time.Millisecond, logger.New("error"))

	_, err := gw.Complete(context.Background(), "sys", "user", 0)
	if err == nil {
		t.Fatal("Complete() error = nil, want rate_limited after exhaustion")
	}
	if provider.calls != 3 {
		t.Errorf("provider calls = %d, want 3", provider.calls)
	}
	if !IsTransient(err) {
		t.Error("exhausted error should still carry the transient kind")
	}
}

func TestGatewayContextCancellation(t *testing.T) {
	provider := &fakeProvider{outcomes: []outcome{{err: svcErr(RateLimited)}}}
	gw := NewGateway(provider, 5, 50*time.Millisecond, logger.New("error"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := gw.Complete(ctx, "sys", "user", 0); err == nil {
		t.Fatal("Complete() with cancelled context should fail")
	}
}

func TestServiceErrorKinds(t *testing.T) {
	tests := []struct {
		kind      Kind
		transient bool
		fatal     bool
	}{
		{RateLimited, true, false},
		{Timeout, true, false},
		{Unauthorized, false, true},
		{InvalidResponse, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			err := svcErr(tt.kind)
			if IsTransient(err) != tt.transient {
				t.Errorf("IsTransient = %v, want %v", IsTransient(err), tt.transient)
			}
			if IsFatal(err) != tt.fatal {
				t.Errorf("IsFatal = %v, want %v", IsFatal(err), tt.fatal)
			}
		})
	}
}

func TestIsTransientPlainError(t *testing.T) {
	if IsTransient(fmt.Errorf("plain")) {
		t.Error("plain errors are not transient")
	}
	if IsFatal(fmt.Errorf("plain")) {
		t.Error("plain errors are not fatal service errors")
	}
}
