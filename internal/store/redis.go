package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"auction-board/internal/boarderrors"
	model "auction-board/internal/models"
	"auction-board/utils"

	"github.com/redis/go-redis/v9"
)

// DefaultKeyPrefix namespaces every key and channel of the shared store
const DefaultKeyPrefix = "auction-board"

// seedScript pushes the initial users only when the registry does not exist yet.
// KEYS[1]: users list, ARGV: JSON user records
var seedScript = redis.NewScript(`
	if redis.call('EXISTS', KEYS[1]) == 1 then
		return 0
	end
	for i = 1, #ARGV do
		redis.call('RPUSH', KEYS[1], ARGV[i])
	end
	return #ARGV
`)

// RedisStore shares the counter and registry between processes through Redis.
// Mutations run in MULTI transactions and are published on the events channel;
// Listen relays events issued by other instances to local listeners.
type RedisStore struct {
	client redis.UniversalClient
	origin string

	counterKey string
	usersKey   string
	versionKey string
	channel    string

	initialUsers []model.User

	// dispatchMu serializes mutate+notify and guards lastVersion and usersCache
	dispatchMu  sync.Mutex
	lastVersion uint64
	usersCache  []model.User
	listeners   *listenerSet
}

// NewRedisStore creates a store on top of client. Call Seed once before use.
func NewRedisStore(client redis.UniversalClient, keyPrefix string, opts ...Option) *RedisStore {
	if keyPrefix == "" {
		keyPrefix = DefaultKeyPrefix
	}
	o := buildOptions(opts)
	return &RedisStore{
		client:       client,
		origin:       o.origin,
		counterKey:   keyPrefix + ":counter",
		usersKey:     keyPrefix + ":users",
		versionKey:   keyPrefix + ":version",
		channel:      keyPrefix + ":events",
		initialUsers: o.initialUsers,
		listeners:    newListenerSet(),
	}
}

// Origin returns the identifier stamped on this instance's events
func (s *RedisStore) Origin() string {
	return s.origin
}

// Channel returns the pub/sub channel events are published on
func (s *RedisStore) Channel() string {
	return s.channel
}

// Seed writes the initial users if no instance has created the registry yet
func (s *RedisStore) Seed(ctx context.Context) error {
	args := make([]any, 0, len(s.initialUsers))
	for _, u := range s.initialUsers {
		raw, err := json.Marshal(u)
		if err != nil {
			return fmt.Errorf("seed users: %w", err)
		}
		args = append(args, string(raw))
	}
	if len(args) == 0 {
		return nil
	}

	pushed, err := seedScript.Run(ctx, s.client, []string{s.usersKey}, args...).Int()
	if err != nil {
		return fmt.Errorf("seed users: %w: %v", boarderrors.ErrStoreUnavailable, err)
	}
	utils.Info("store: redis registry seeded", map[string]any{"pushed": pushed, "key": s.usersKey})
	return nil
}

// Increment raises the counter by exactly one
func (s *RedisStore) Increment(ctx context.Context) (model.CounterState, error) {
	state, err := s.mutateCounter(ctx, model.ActionIncrement, func(pipe redis.Pipeliner) *redis.IntCmd {
		return pipe.Incr(ctx, s.counterKey)
	})
	return state.Counter, err
}

// Decrement lowers the counter by exactly one. There is no floor.
func (s *RedisStore) Decrement(ctx context.Context) (model.CounterState, error) {
	state, err := s.mutateCounter(ctx, model.ActionDecrement, func(pipe redis.Pipeliner) *redis.IntCmd {
		return pipe.Decr(ctx, s.counterKey)
	})
	return state.Counter, err
}

// Reset sets the counter to zero
func (s *RedisStore) Reset(ctx context.Context) (model.CounterState, error) {
	state, err := s.mutateCounter(ctx, model.ActionReset, func(pipe redis.Pipeliner) *redis.IntCmd {
		pipe.Set(ctx, s.counterKey, 0, 0)
		// INCRBY 0 reads the value back inside the transaction
		return pipe.IncrBy(ctx, s.counterKey, 0)
	})
	return state.Counter, err
}

// Counter returns the current counter value
func (s *RedisStore) Counter(ctx context.Context) (model.CounterState, error) {
	v, err := s.client.Get(ctx, s.counterKey).Int64()
	if errors.Is(err, redis.Nil) {
		return model.CounterState{}, nil
	}
	if err != nil {
		return model.CounterState{}, unavailable("read counter", err)
	}
	return model.CounterState{Value: v}, nil
}

// AddUser appends user to the shared registry
func (s *RedisStore) AddUser(ctx context.Context, user model.User) (model.UsersState, error) {
	raw, err := json.Marshal(user)
	if err != nil {
		return model.UsersState{}, fmt.Errorf("add user %s: %w", user.ID, err)
	}

	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	var (
		lengthCmd  *redis.IntCmd
		versionCmd *redis.IntCmd
		counterCmd *redis.StringCmd
	)
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		lengthCmd = pipe.RPush(ctx, s.usersKey, raw)
		versionCmd = pipe.Incr(ctx, s.versionKey)
		counterCmd = pipe.Get(ctx, s.counterKey)
		return nil
	})
	if err != nil && !errors.Is(err, redis.Nil) {
		return model.UsersState{}, unavailable("add user", err)
	}

	state, err := s.buildStateLocked(ctx, counterValue(counterCmd), lengthCmd.Val(), uint64(versionCmd.Val()))
	if err != nil {
		return model.UsersState{}, err
	}
	s.publishLocked(ctx, model.ActionAddUser, state)
	return state.Users, nil
}

// Users returns the registry records in append order
func (s *RedisStore) Users(ctx context.Context) (model.UsersState, error) {
	raw, err := s.client.LRange(ctx, s.usersKey, 0, -1).Result()
	if err != nil {
		return model.UsersState{}, unavailable("read users", err)
	}
	return decodeUsers(raw)
}

// State returns a consistent snapshot of the whole store
func (s *RedisStore) State(ctx context.Context) (model.StoreState, error) {
	var (
		counterCmd *redis.StringCmd
		versionCmd *redis.StringCmd
		usersCmd   *redis.StringSliceCmd
	)
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		counterCmd = pipe.Get(ctx, s.counterKey)
		versionCmd = pipe.Get(ctx, s.versionKey)
		usersCmd = pipe.LRange(ctx, s.usersKey, 0, -1)
		return nil
	})
	if err != nil && !errors.Is(err, redis.Nil) {
		return model.StoreState{}, unavailable("read state", err)
	}

	users, err := decodeUsers(usersCmd.Val())
	if err != nil {
		return model.StoreState{}, err
	}
	version, _ := versionCmd.Uint64()
	return model.StoreState{
		Counter: model.CounterState{Value: counterValue(counterCmd)},
		Users:   users,
		Version: version,
	}, nil
}

// Subscribe registers l for every subsequent mutation seen by this instance
func (s *RedisStore) Subscribe(l Listener) func() {
	return s.listeners.add(l)
}

// Listen relays events published by other instances until ctx is done.
// This is a blocking operation - run it in a goroutine.
func (s *RedisStore) Listen(ctx context.Context) error {
	pubsub := s.client.Subscribe(ctx, s.channel)
	defer pubsub.Close()

	// wait for the subscription to be confirmed before reporting readiness
	if _, err := pubsub.Receive(ctx); err != nil {
		return unavailable("subscribe to store events", err)
	}
	utils.Info("store: listening for remote events", map[string]any{"channel": s.channel, "origin": s.origin})

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			s.handleRemote(ctx, msg.Payload)
		}
	}
}

func (s *RedisStore) handleRemote(ctx context.Context, payload string) {
	var ev model.StoreEvent
	if err := json.Unmarshal([]byte(payload), &ev); err != nil {
		utils.Warn("store: dropping malformed event", map[string]any{"error": err.Error()})
		return
	}
	if ev.Origin == s.origin {
		return
	}

	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	if ev.Resync {
		s.usersCache = nil
	}
	// records are not published, rebuild them from the local cache
	users, err := s.usersLocked(ctx, int64(ev.State.Users.TotalCount))
	if err != nil {
		utils.Error("store: failed to load users for remote event", map[string]any{
			"action":  string(ev.Action),
			"version": ev.State.Version,
			"error":   err.Error(),
		})
		return
	}
	ev.State.Users = users
	s.deliverLocked(ev)
}

func (s *RedisStore) mutateCounter(ctx context.Context, action model.StoreAction, op func(redis.Pipeliner) *redis.IntCmd) (model.StoreState, error) {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	var (
		counterCmd *redis.IntCmd
		versionCmd *redis.IntCmd
		lengthCmd  *redis.IntCmd
	)
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		counterCmd = op(pipe)
		versionCmd = pipe.Incr(ctx, s.versionKey)
		lengthCmd = pipe.LLen(ctx, s.usersKey)
		return nil
	})
	if err != nil {
		return model.StoreState{}, unavailable(string(action), err)
	}

	state, err := s.buildStateLocked(ctx, counterCmd.Val(), lengthCmd.Val(), uint64(versionCmd.Val()))
	if err != nil {
		return model.StoreState{}, err
	}
	s.publishLocked(ctx, action, state)
	return state, nil
}

func (s *RedisStore) buildStateLocked(ctx context.Context, counter, length int64, version uint64) (model.StoreState, error) {
	// a transaction that does not move the version forward ran on flushed keys
	if version <= s.lastVersion {
		s.usersCache = nil
	}
	users, err := s.usersLocked(ctx, length)
	if err != nil {
		return model.StoreState{}, err
	}
	return model.StoreState{
		Counter: model.CounterState{Value: counter},
		Users:   users,
		Version: version,
	}, nil
}

// usersLocked returns the first n registry records. The list is append-only,
// so only records past the cached ones are fetched.
func (s *RedisStore) usersLocked(ctx context.Context, n int64) (model.UsersState, error) {
	if cached := int64(len(s.usersCache)); n > cached {
		raw, err := s.client.LRange(ctx, s.usersKey, cached, n-1).Result()
		if err != nil {
			return model.UsersState{}, unavailable("read users", err)
		}
		fetched, err := decodeUsers(raw)
		if err != nil {
			return model.UsersState{}, err
		}
		s.usersCache = append(s.usersCache, fetched.Records...)
	}

	records := s.usersCache
	if int64(len(records)) > n {
		records = records[:n]
	}
	return model.UsersState{TotalCount: int(n), Records: copyUsers(records)}, nil
}

// publishLocked delivers locally, then publishes for other instances without
// the user records, which receivers rebuild from their own cache.
// A failed publish is logged; the mutation itself has already been applied.
func (s *RedisStore) publishLocked(ctx context.Context, action model.StoreAction, state model.StoreState) {
	ev := s.deliverLocked(model.StoreEvent{Action: action, State: state, Origin: s.origin})

	wire := ev
	wire.State.Users.Records = nil
	raw, err := json.Marshal(wire)
	if err != nil {
		utils.Error("store: failed to encode event", map[string]any{"action": string(action), "error": err.Error()})
		return
	}
	if err := s.client.Publish(ctx, s.channel, raw).Err(); err != nil {
		utils.Error("store: failed to publish event", map[string]any{
			"action":  string(action),
			"version": state.Version,
			"error":   err.Error(),
		})
	}
}

// deliverLocked drops events older than the last delivered one;
// a newer snapshot already contains their effect.
// Own events are transaction results and always current: one that is not newer
// means the version key went backwards (Redis lost its data), so it is
// delivered as a resync and becomes the new baseline. Resync events from
// other instances are accepted the same way. It returns the event as delivered.
func (s *RedisStore) deliverLocked(ev model.StoreEvent) model.StoreEvent {
	if ev.State.Version <= s.lastVersion && !ev.Resync {
		if ev.Origin != s.origin {
			utils.Debug("store: skipping stale event", map[string]any{
				"action":       string(ev.Action),
				"version":      ev.State.Version,
				"last_version": s.lastVersion,
			})
			return ev
		}
		utils.Warn("store: version went backwards, resyncing listeners", map[string]any{
			"action":       string(ev.Action),
			"version":      ev.State.Version,
			"last_version": s.lastVersion,
		})
		ev.Resync = true
	}
	s.lastVersion = ev.State.Version
	s.listeners.notify(ev)
	return ev
}

func counterValue(cmd *redis.StringCmd) int64 {
	v, err := cmd.Int64()
	if err != nil {
		return 0
	}
	return v
}

func decodeUsers(raw []string) (model.UsersState, error) {
	records := make([]model.User, 0, len(raw))
	for _, r := range raw {
		var u model.User
		if err := json.Unmarshal([]byte(r), &u); err != nil {
			return model.UsersState{}, fmt.Errorf("decode user record: %w", err)
		}
		records = append(records, u)
	}
	return model.UsersState{TotalCount: len(records), Records: records}, nil
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, boarderrors.ErrStoreUnavailable, err)
}
