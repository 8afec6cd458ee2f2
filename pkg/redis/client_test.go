package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return NewFromRedis(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
}

func TestSetGetDel(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", "v", time.Minute))

	val, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", val)

	require.NoError(t, c.Del(ctx, "k"))
	_, err = c.Get(ctx, "k")
	assert.True(t, IsNil(err))
}

func TestSetNX(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	ok, err := c.SetNX(ctx, "lock", "processing", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.SetNX(ctx, "lock", "processing", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNewWithBadURL(t *testing.T) {
	_, err := New("not-a-url", "")
	assert.Error(t, err)
}
