package chain

import (
	"context"
	"fmt"
	"testing"
)

func TestShouldRequeueKeepsInfrastructureFailures(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		requeue bool
	}{
		{"shutdown during backoff", context.Canceled, true},
		{"stage timeout", context.DeadlineExceeded, true},
		{"failed republish", fmt.Errorf("publish stage extract of chain c: broker gone"), true},
		{"unknown stage", fmt.Errorf("%w: unknown stage %q", ErrUnprocessable, "shred"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shouldRequeue(tt.err); got != tt.requeue {
				t.Fatalf("shouldRequeue(%v) = %v, want %v", tt.err, got, tt.requeue)
			}
		})
	}
}
