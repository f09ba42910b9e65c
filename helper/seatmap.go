package helper

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"teatr_manager/model"
	"teatr_manager/utils"

	"github.com/redis/go-redis/v9"
)

// SeatUpdate is pushed to the seat map of a seance after a booking.
type SeatUpdate struct {
	SeanceId     uint   `json:"seanceId"`
	TakenSeatIds []uint `json:"takenSeatIds"`
}

type SeatMapHub interface {
	Publish(ctx context.Context, u SeatUpdate) error
	// Subscribe delivers updates for one seance until cancel is called.
	Subscribe(ctx context.Context, seanceID uint) (updates <-chan SeatUpdate, cancel func(), err error)
}

func seanceChannel(id uint) string {
	return fmt.Sprintf("seance:%d", id)
}

// RedisSeatMap fans updates out through Redis pub/sub so every instance
// sees every booking.
type RedisSeatMap struct {
	rdb *redis.Client
}

func NewRedisSeatMap(addr string) *RedisSeatMap {
	return &RedisSeatMap{rdb: redis.NewClient(&redis.Options{Addr: addr})}
}

func (m *RedisSeatMap) Publish(ctx context.Context, u SeatUpdate) error {
	payload, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return m.rdb.Publish(ctx, seanceChannel(u.SeanceId), payload).Err()
}

func (m *RedisSeatMap) Subscribe(ctx context.Context, seanceID uint) (<-chan SeatUpdate, func(), error) {
	pubsub := m.rdb.Subscribe(ctx, seanceChannel(seanceID))
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, nil, err
	}

	out := make(chan SeatUpdate, 8)
	go func() {
		defer close(out)
		for msg := range pubsub.Channel() {
			var u SeatUpdate
			if err := json.Unmarshal([]byte(msg.Payload), &u); err != nil {
				utils.Log.WithError(err).Warn("bad seat map payload")
				continue
			}
			select {
			case out <- u:
			default:
			}
		}
	}()
	return out, func() { _ = pubsub.Close() }, nil
}

func (m *RedisSeatMap) Close() error {
	return m.rdb.Close()
}

// LocalSeatMap is the single instance hub used when Redis is not configured.
type LocalSeatMap struct {
	mu   sync.Mutex
	subs map[uint]map[chan SeatUpdate]struct{}
}

func NewLocalSeatMap() *LocalSeatMap {
	return &LocalSeatMap{subs: make(map[uint]map[chan SeatUpdate]struct{})}
}

func (m *LocalSeatMap) Publish(_ context.Context, u SeatUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for ch := range m.subs[u.SeanceId] {
		select {
		case ch <- u:
		default:
		}
	}
	return nil
}

func (m *LocalSeatMap) Subscribe(_ context.Context, seanceID uint) (<-chan SeatUpdate, func(), error) {
	ch := make(chan SeatUpdate, 8)
	m.mu.Lock()
	if m.subs[seanceID] == nil {
		m.subs[seanceID] = make(map[chan SeatUpdate]struct{})
	}
	m.subs[seanceID][ch] = struct{}{}
	m.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			m.mu.Lock()
			delete(m.subs[seanceID], ch)
			if len(m.subs[seanceID]) == 0 {
				delete(m.subs, seanceID)
			}
			m.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel, nil
}

// SeatMapNotifier publishes the full set of taken seats after each booking.
type SeatMapNotifier struct {
	Hub   SeatMapHub
	Taken func(ctx context.Context, seanceID uint) ([]uint, error)
}

func (n SeatMapNotifier) BookingConfirmed(ctx context.Context, res model.BookingResult) error {
	taken, err := n.Taken(ctx, res.SeanceId)
	if err != nil {
		return fmt.Errorf("taken seats: %w", err)
	}
	return n.Hub.Publish(ctx, SeatUpdate{SeanceId: res.SeanceId, TakenSeatIds: taken})
}
