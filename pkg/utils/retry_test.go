package utils_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/shop-order-service/pkg/utils"
	"github.com/stretchr/testify/assert"
)

func TestRetry(t *testing.T) {
	temporary := errors.New("temporary")
	permanent := errors.New("permanent")
	cfg := utils.RetryConfig{MaxAttempts: 3, InitialDelay: time.Millisecond}

	testCases := []struct {
		name      string
		results   []error
		wantCalls int
		wantErr   error
	}{
		{
			name:      "success on first attempt",
			results:   []error{nil},
			wantCalls: 1,
		},
		{
			name:      "success after temporary failures",
			results:   []error{temporary, temporary, nil},
			wantCalls: 3,
		},
		{
			name:      "attempts exhausted",
			results:   []error{temporary, temporary, temporary},
			wantCalls: 3,
			wantErr:   temporary,
		},
		{
			name:      "permanent error stops retrying",
			results:   []error{permanent, nil},
			wantCalls: 1,
			wantErr:   permanent,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			calls := 0
			err := utils.Retry(context.Background(), cfg, func() error {
				err := tc.results[calls]
				calls++
				return err
			}, permanent)

			assert.Equal(t, tc.wantCalls, calls)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRetry_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := utils.Retry(ctx, utils.RetryConfig{MaxAttempts: 5, InitialDelay: time.Second}, func() error {
		calls++
		return errors.New("fail")
	})

	assert.Equal(t, 1, calls)
	assert.ErrorIs(t, err, context.Canceled)
}
