package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/drawguide"
	"github.com/fwojciec/drawguide/mock"
	dgslog "github.com/fwojciec/drawguide/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs fetch with bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (*drawguide.FetchResult, error) {
				return &drawguide.FetchResult{URL: url, HTML: "<html>content</html>"}, nil
			},
		}

		fetcher := dgslog.NewLoggingFetcher(inner, logger)
		result, err := fetcher.Fetch(context.Background(), "https://easydrawingguides.com/cat/")

		require.NoError(t, err)
		assert.Equal(t, "<html>content</html>", result.HTML)
		output := buf.String()
		assert.Contains(t, output, "fetch")
		assert.Contains(t, output, "url=https://easydrawingguides.com/cat/")
		assert.Contains(t, output, "bytes=20")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (*drawguide.FetchResult, error) {
				return nil, errors.New("network error")
			},
		}

		fetcher := dgslog.NewLoggingFetcher(inner, logger)
		_, err := fetcher.Fetch(context.Background(), "https://easydrawingguides.com/cat/")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "bytes=0")
		assert.Contains(t, output, "err=\"network error\"")
	})
}

func TestLoggingFetcher_Close(t *testing.T) {
	t.Parallel()

	t.Run("delegates to inner fetcher", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		closeCalled := false
		inner := &mock.Fetcher{
			CloseFn: func() error {
				closeCalled = true
				return nil
			},
		}

		fetcher := dgslog.NewLoggingFetcher(inner, logger)
		err := fetcher.Close()

		require.NoError(t, err)
		assert.True(t, closeCalled)
	})
}

func TestLoggingValidator_Validate(t *testing.T) {
	t.Parallel()

	t.Run("logs outcome at debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.Validator{
			ValidateFn: func(ctx context.Context, url string) bool { return false },
		}

		ok := dgslog.NewLoggingValidator(inner, logger).Validate(context.Background(), "https://easydrawingguides.com/gone/")

		assert.False(t, ok)
		output := buf.String()
		assert.Contains(t, output, "level=DEBUG")
		assert.Contains(t, output, "msg=validate")
		assert.Contains(t, output, "reachable=false")
	})

	t.Run("is silent at info level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Validator{
			ValidateFn: func(ctx context.Context, url string) bool { return true },
		}

		ok := dgslog.NewLoggingValidator(inner, logger).Validate(context.Background(), "https://easydrawingguides.com/cat/")

		assert.True(t, ok)
		assert.Empty(t, buf.String())
	})
}
