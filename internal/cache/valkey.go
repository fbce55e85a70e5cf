package cache

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/valkey-io/valkey-go"
)

const VALKEY_RESPONSE_PREFIX = "chat:responses:"

// Valkey is the shared backend for multi-instance deployments. A stored
// response wins over any later computation for the same key, so every
// instance serves the same reply for identical input.
type Valkey struct {
	client valkey.Client
	ttl    time.Duration
}

type ValkeyOptions struct {
	Addr     string
	Password string
	UseTLS   bool
	TTL      time.Duration
}

func NewValkey(opts ValkeyOptions) (*Valkey, error) {
	clientOpts := valkey.ClientOption{
		InitAddress:      []string{opts.Addr},
		Password:         opts.Password,
		ConnWriteTimeout: 5 * time.Second,
		SelectDB:         0,
	}
	if opts.UseTLS {
		clientOpts.TLSConfig = &tls.Config{InsecureSkipVerify: false}
	}

	client, err := valkey.NewClient(clientOpts)
	if err != nil {
		return nil, fmt.Errorf("[ValkeyCache] failed to create Valkey client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	if res := client.Do(ctx, client.B().Ping().Build()); res.Error() != nil {
		client.Close()
		return nil, fmt.Errorf("[ValkeyCache] failed to ping Valkey: %w", res.Error())
	}

	slog.Info("[ValkeyCache] Successfully connected to valkey")

	ttl := opts.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Valkey{client: client, ttl: ttl}, nil
}

func (vc *Valkey) Close() {
	vc.client.Close()
}

func (vc *Valkey) GetOrCompute(ctx context.Context, key Key, compute func() string) string {
	k := VALKEY_RESPONSE_PREFIX + key.String()

	res := vc.doWithRetry(ctx, vc.client.B().Get().Key(k).Build(), 3)
	if res.Error() == nil {
		if stored, err := res.ToString(); err == nil {
			return stored
		}
	} else if !valkey.IsValkeyNil(res.Error()) {
		slog.Warn("[ValkeyCache] Get failed, computing fresh",
			slog.String("key", k),
			slog.String("error", res.Error().Error()))
	}

	response := compute()

	// SET NX: the first writer's value is the one everyone serves.
	setRes := vc.doWithRetry(ctx,
		vc.client.B().Set().Key(k).Value(response).Nx().Ex(vc.ttl).Build(), 3)
	if setRes.Error() != nil && !valkey.IsValkeyNil(setRes.Error()) {
		slog.Warn("[ValkeyCache] Set failed",
			slog.String("key", k),
			slog.String("error", setRes.Error().Error()))
		return response
	}

	winner := vc.client.Do(ctx, vc.client.B().Get().Key(k).Build())
	if stored, err := winner.ToString(); err == nil {
		return stored
	}
	return response
}

func (vc *Valkey) doWithRetry(ctx context.Context, completed valkey.Completed, retries int) valkey.ValkeyResult {
	var result valkey.ValkeyResult
	for i := 0; i < retries; i++ {
		result = vc.client.Do(ctx, completed)
		if result.Error() == nil || valkey.IsValkeyNil(result.Error()) {
			break
		}
		if !isConnectionError(result.Error()) {
			break
		}

		slog.Warn("[ValkeyCache] Do failed",
			slog.Int("attempt", i+1),
			slog.String("error", result.Error().Error()))

		time.Sleep(250 * time.Millisecond)
	}

	return result
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "EOF") ||
		strings.Contains(msg, "i/o timeout")
}
