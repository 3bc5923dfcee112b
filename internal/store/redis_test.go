package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"auction-board/internal/boarderrors"
	model "auction-board/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// Helper to start an in-process Redis and a seeded store on it
func newTestRedisStore(t *testing.T, opts ...Option) (*RedisStore, *miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	s := NewRedisStore(client, "test", opts...)
	require.NoError(t, s.Seed(context.Background()))
	return s, mr, client
}

func TestRedisStore_Seed(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, mr, client := newTestRedisStore(t)

	users, err := s.Users(ctx)
	require.NoError(t, err)
	require.Equal(t, DefaultInitialUsers(), users.Records)

	// a second instance on the same keys must not seed again
	other := NewRedisStore(client, "test")
	require.NoError(t, other.Seed(ctx))

	users, err = other.Users(ctx)
	require.NoError(t, err)
	require.Equal(t, len(DefaultInitialUsers()), users.TotalCount)

	length, err := mr.List("test:users")
	require.NoError(t, err)
	require.Len(t, length, len(DefaultInitialUsers()))
}

func TestRedisStore_CounterOperations(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, _, _ := newTestRedisStore(t)

	counter, err := s.Counter(ctx)
	require.NoError(t, err)
	require.Zero(t, counter.Value, "missing key reads as zero")

	got, err := s.Increment(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), got.Value)

	got, err = s.Increment(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(2), got.Value)

	got, err = s.Decrement(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), got.Value)

	for i := 0; i < 3; i++ {
		got, err = s.Decrement(ctx)
		require.NoError(t, err)
	}
	require.Equal(t, int64(-2), got.Value, "no floor on decrement")

	got, err = s.Reset(ctx)
	require.NoError(t, err)
	require.Zero(t, got.Value)

	state, err := s.State(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(7), state.Version)
	require.Zero(t, state.Counter.Value)
}

func TestRedisStore_AddUser(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, _, _ := newTestRedisStore(t, WithInitialUsers())

	for i := 0; i < 4; i++ {
		state, err := s.AddUser(ctx, newUser(fmt.Sprintf("u%d", i)))
		require.NoError(t, err)
		require.Equal(t, i+1, state.TotalCount)
	}

	users, err := s.Users(ctx)
	require.NoError(t, err)
	require.Equal(t, 4, users.TotalCount)
	for i, u := range users.Records {
		require.Equal(t, newUser(fmt.Sprintf("u%d", i)), u)
	}
}

func TestRedisStore_ConcurrentInstances(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	a, _, client := newTestRedisStore(t)
	b := NewRedisStore(client, "test")

	var wg sync.WaitGroup
	for _, s := range []*RedisStore{a, b} {
		for g := 0; g < 4; g++ {
			wg.Add(1)
			s := s
			go func() {
				defer wg.Done()
				for i := 0; i < 25; i++ {
					_, err := s.Increment(ctx)
					require.NoError(t, err)
				}
				for i := 0; i < 10; i++ {
					_, err := s.Decrement(ctx)
					require.NoError(t, err)
				}
			}()
		}
	}
	wg.Wait()

	got, err := b.Counter(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(2*4*(25-10)), got.Value)
}

func TestRedisStore_CrossInstanceEvents(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a, _, client := newTestRedisStore(t, WithOrigin("module-a"))
	b := NewRedisStore(client, "test", WithOrigin("module-b"))

	events := make(chan model.StoreEvent, 16)
	b.Subscribe(func(ev model.StoreEvent) { events <- ev })

	var local []model.StoreEvent
	a.Subscribe(func(ev model.StoreEvent) { local = append(local, ev) })

	listenErr := make(chan error, 1)
	go func() { listenErr <- b.Listen(ctx) }()

	// wait until b is subscribed before publishing
	require.Eventually(t, func() bool {
		n, err := client.PubSubNumSub(ctx, b.Channel()).Result()
		return err == nil && n[b.Channel()] > 0
	}, 2*time.Second, 10*time.Millisecond)

	_, err := a.Increment(ctx)
	require.NoError(t, err)
	_, err = a.AddUser(ctx, newUser("remote"))
	require.NoError(t, err)

	first := <-events
	require.Equal(t, model.ActionIncrement, first.Action)
	require.Equal(t, "module-a", first.Origin)
	require.Equal(t, int64(1), first.State.Counter.Value)

	second := <-events
	require.Equal(t, model.ActionAddUser, second.Action)
	require.Equal(t, len(DefaultInitialUsers())+1, second.State.Users.TotalCount)
	require.Len(t, second.State.Users.Records, len(DefaultInitialUsers())+1)
	require.Equal(t, newUser("remote"), second.State.Users.Records[len(second.State.Users.Records)-1])
	require.Greater(t, second.State.Version, first.State.Version)

	require.Len(t, local, 2, "the issuing instance notifies its own listeners directly")

	cancel()
	select {
	case err := <-listenErr:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Listen did not stop after cancel")
	}
}

func TestRedisStore_HandleRemote(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, _, _ := newTestRedisStore(t, WithOrigin("self"))

	var got []model.StoreEvent
	s.Subscribe(func(ev model.StoreEvent) { got = append(got, ev) })

	s.handleRemote(ctx, `{not json`)
	s.handleRemote(ctx, `{"action":"counter/increment","state":{"counter":{"value":5},"version":5},"origin":"self"}`)
	s.handleRemote(ctx, `{"action":"counter/increment","state":{"counter":{"value":3},"version":3},"origin":"other"}`)
	s.handleRemote(ctx, `{"action":"counter/decrement","state":{"counter":{"value":2},"version":2},"origin":"other"}`)
	s.handleRemote(ctx, `{"action":"counter/reset","state":{"counter":{"value":0},"version":4},"origin":"other"}`)

	require.Len(t, got, 2, "malformed, own and stale events are dropped")
	require.Equal(t, uint64(3), got[0].State.Version)
	require.Equal(t, model.ActionReset, got[1].Action)
}

func TestRedisStore_FlushedRedisResyncs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, mr, _ := newTestRedisStore(t)

	var got []model.StoreEvent
	s.Subscribe(func(ev model.StoreEvent) { got = append(got, ev) })

	for i := 0; i < 3; i++ {
		_, err := s.Increment(ctx)
		require.NoError(t, err)
	}

	mr.FlushAll()

	for i := 0; i < 2; i++ {
		counter, err := s.Increment(ctx)
		require.NoError(t, err)
		require.Equal(t, int64(i+1), counter.Value)
	}

	require.Len(t, got, 5, "every mutation is delivered after the keys are lost")

	var versions []uint64
	for _, ev := range got {
		versions = append(versions, ev.State.Version)
	}
	require.Equal(t, []uint64{1, 2, 3, 1, 2}, versions)
	require.True(t, got[3].Resync)
	require.False(t, got[4].Resync)
	require.Zero(t, got[3].State.Users.TotalCount)
	require.Empty(t, got[3].State.Users.Records, "cached records of the lost registry are not reused")

	state, err := s.AddUser(ctx, newUser("after-flush"))
	require.NoError(t, err)
	require.Equal(t, []model.User{newUser("after-flush")}, state.Records)
}

func TestRedisStore_RemoteResync(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, _, _ := newTestRedisStore(t, WithOrigin("self"), WithInitialUsers())

	var got []model.StoreEvent
	s.Subscribe(func(ev model.StoreEvent) { got = append(got, ev) })

	s.handleRemote(ctx, `{"action":"counter/increment","state":{"counter":{"value":9},"version":9},"origin":"other"}`)
	s.handleRemote(ctx, `{"action":"counter/increment","state":{"counter":{"value":1},"version":1},"origin":"other"}`)
	s.handleRemote(ctx, `{"action":"counter/increment","state":{"counter":{"value":1},"version":1},"origin":"other","resync":true}`)
	s.handleRemote(ctx, `{"action":"counter/increment","state":{"counter":{"value":2},"version":2},"origin":"other"}`)

	var versions []uint64
	for _, ev := range got {
		versions = append(versions, ev.State.Version)
	}
	require.Equal(t, []uint64{9, 1, 2}, versions, "a remote resync becomes the new baseline")
}

func TestRedisStore_PublishedEventsOmitRecords(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, _, client := newTestRedisStore(t)

	pubsub := client.Subscribe(ctx, s.Channel())
	t.Cleanup(func() { _ = pubsub.Close() })
	_, err := pubsub.Receive(ctx)
	require.NoError(t, err)

	var local []model.StoreEvent
	s.Subscribe(func(ev model.StoreEvent) { local = append(local, ev) })

	_, err = s.Increment(ctx)
	require.NoError(t, err)

	msg, err := pubsub.ReceiveMessage(ctx)
	require.NoError(t, err)

	var wire model.StoreEvent
	require.NoError(t, json.Unmarshal([]byte(msg.Payload), &wire))
	require.Equal(t, len(DefaultInitialUsers()), wire.State.Users.TotalCount)
	require.Nil(t, wire.State.Users.Records)

	require.Len(t, local, 1)
	require.Equal(t, DefaultInitialUsers(), local[0].State.Users.Records, "local listeners get the full snapshot")
}

func TestRedisStore_Unavailable(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, mr, _ := newTestRedisStore(t)
	mr.Close()

	_, err := s.Increment(ctx)
	require.ErrorIs(t, err, boarderrors.ErrStoreUnavailable)

	_, err = s.Counter(ctx)
	require.ErrorIs(t, err, boarderrors.ErrStoreUnavailable)

	_, err = s.AddUser(ctx, newUser("late"))
	require.ErrorIs(t, err, boarderrors.ErrStoreUnavailable)

	_, err = s.Users(ctx)
	require.ErrorIs(t, err, boarderrors.ErrStoreUnavailable)

	_, err = s.State(ctx)
	require.ErrorIs(t, err, boarderrors.ErrStoreUnavailable)
}
