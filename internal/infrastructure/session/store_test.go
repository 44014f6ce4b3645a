package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/user"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})
	return mr, client
}

func TestNewID(t *testing.T) {
	a, err := NewID()
	require.NoError(t, err)
	b, err := NewID()
	require.NoError(t, err)

	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
}

func TestData_TakeFlash(t *testing.T) {
	d := &Data{Flash: &Flash{Type: "success", Message: "User created successfully"}}
	f := d.TakeFlash()
	require.NotNil(t, f)
	assert.Equal(t, "User created successfully", f.Message)
	assert.Nil(t, d.TakeFlash())
	assert.False(t, d.Authenticated())
}

// storeContract runs the behaviour every Store must share.
func storeContract(t *testing.T, s Store) {
	ctx := context.Background()

	got, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, got)

	data := &Data{UserID: 3, Role: user.RoleAdmin, Flash: &Flash{Type: "error", Message: "nope"}, CreatedAt: time.Now().UTC()}
	require.NoError(t, s.Save(ctx, "abc", data))

	got, err = s.Get(ctx, "abc")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(3), got.UserID)
	assert.Equal(t, user.RoleAdmin, got.Role)
	require.NotNil(t, got.Flash)
	assert.Equal(t, "nope", got.Flash.Message)
	assert.True(t, got.Authenticated())

	require.NoError(t, s.Delete(ctx, "abc"))
	got, err = s.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStore(t *testing.T) {
	storeContract(t, NewMemoryStore(time.Hour))
}

func TestMemoryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(time.Minute)
	now := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	require.NoError(t, s.Save(ctx, "id", &Data{UserID: 1, Role: user.RoleStaff}))

	now = now.Add(59 * time.Second)
	got, err := s.Get(ctx, "id")
	require.NoError(t, err)
	assert.NotNil(t, got)

	now = now.Add(time.Second)
	got, err = s.Get(ctx, "id")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Zero(t, s.Len())
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(time.Hour)
	require.NoError(t, s.Save(ctx, "id", &Data{UserID: 1, Flash: &Flash{Message: "hi"}}))

	got, _ := s.Get(ctx, "id")
	got.TakeFlash()

	again, _ := s.Get(ctx, "id")
	require.NotNil(t, again.Flash)
}

func TestRedisStore(t *testing.T) {
	_, client := setupTestRedis(t)
	storeContract(t, NewRedisStore(client, "", time.Hour))
}

func TestRedisStore_TTLAndPrefix(t *testing.T) {
	mr, client := setupTestRedis(t)
	s := NewRedisStore(client, "test:sess:", 30*time.Minute)

	require.NoError(t, s.Save(context.Background(), "xyz", &Data{UserID: 9}))
	assert.True(t, mr.Exists("test:sess:xyz"))
	assert.Equal(t, 30*time.Minute, mr.TTL("test:sess:xyz"))

	mr.FastForward(31 * time.Minute)
	got, err := s.Get(context.Background(), "xyz")
	require.NoError(t, err)
	assert.Nil(t, got)
}
