//go:build integration

package idempotency

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"corpreg/pkg/testutil/containers"
)

func TestRedisStoreAgainstRealRedis(t *testing.T) {
	rc := containers.NewRedisContainer(t)
	ctx := context.Background()
	st := NewRedisStore(rc.Client, time.Minute)

	_, reserved, err := st.Reserve(ctx, "k1", "fp")
	require.NoError(t, err)
	require.True(t, reserved)

	existing, reserved, err := st.Reserve(ctx, "k1", "fp")
	require.NoError(t, err)
	assert.False(t, reserved)
	assert.Equal(t, statePending, existing.State)

	require.NoError(t, st.Complete(ctx, "k1", Record{Fingerprint: "fp", Status: http.StatusCreated, Body: []byte(`{"id":1}`)}))
	existing, _, err = st.Reserve(ctx, "k1", "fp")
	require.NoError(t, err)
	assert.Equal(t, stateCompleted, existing.State)
	assert.Equal(t, `{"id":1}`, string(existing.Body))

	ttl, err := rc.Client.TTL(ctx, keyPrefix+"k1").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, 30*time.Second)
}

func TestConcurrentRepeatsRunHandlerOnce(t *testing.T) {
	rc := containers.NewRedisContainer(t)
	m := NewMiddleware(NewRedisStore(rc.Client, time.Minute), nil)

	var calls atomic.Int32
	release := make(chan struct{})
	h := m.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		<-release
		w.WriteHeader(http.StatusCreated)
	}))

	var wg sync.WaitGroup
	codes := make([]int, 5)
	for i := range codes {
		wg.Add(1)
		go func() {
			defer wg.Done()
			codes[i] = send(h, "same-key", `{}`).Code
		}()
	}
	// Let every request reach the store before the first one finishes.
	time.Sleep(200 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	created, conflicts := 0, 0
	for _, c := range codes {
		switch c {
		case http.StatusCreated:
			created++
		case http.StatusConflict:
			conflicts++
		}
	}
	assert.Equal(t, 1, created)
	assert.Equal(t, len(codes)-1, conflicts)
}
