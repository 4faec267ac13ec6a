package repository

import (
	"context"
	"encoding/json"
	"errors"
	"larekStore/entities"
	"larekStore/models"
	"log"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const basketTTL = 24 * time.Hour

type BasketRepository interface {
	SetBasket(sessionId string, lines []entities.BasketLine) (err error)
	GetBasket(sessionId string) (lines []entities.BasketLine, err error)
}

type BasketRepo struct {
	rdb *redis.Client
	ctx context.Context
}

func NewBasketRepository(redis_conn *redis.Client, _ctx context.Context) (BasketRepository, error) {
	if redis_conn == nil {
		return nil, errors.New("conn must be non-nil")
	}
	err := redis_conn.Ping(_ctx).Err()
	if err != nil {
		return nil, err
	}
	return &BasketRepo{
		rdb: redis_conn,
		ctx: _ctx,
	}, nil
}

func basketKey(sessionId string) string {
	return "basket:" + sessionId
}

func (b *BasketRepo) SetBasket(sessionId string, lines []entities.BasketLine) (err error) {
	jsonData, err := json.Marshal(lines)
	if err != nil {
		log.Printf("SetBasket: Marshal err: %v", err)
		err = models.ErrServerError
		return
	}
	err = b.rdb.Set(b.ctx, basketKey(sessionId), jsonData, basketTTL).Err()
	if err != nil {
		log.Printf("SetBasket: redis err: %v", err)
		err = models.ErrServerError
	}
	return
}

func (b *BasketRepo) GetBasket(sessionId string) (lines []entities.BasketLine, err error) {
	lines = []entities.BasketLine{}
	val, e := b.rdb.Get(b.ctx, basketKey(sessionId)).Result()
	if e != nil {
		if e == redis.Nil {
			return
		}
		log.Printf("GetBasket: redis err: %v", e)
		err = models.ErrServerError
		return
	}
	err = json.Unmarshal([]byte(val), &lines)
	if err != nil {
		log.Printf("GetBasket: Unmarshal err: %v", err)
		err = models.ErrServerError
	}
	return
}

// MemoryBasketRepo keeps basket snapshots in process memory. It is used
// when no redis is configured.
type MemoryBasketRepo struct {
	mu    sync.RWMutex
	store map[string][]entities.BasketLine
}

func NewMemoryBasketRepository() *MemoryBasketRepo {
	return &MemoryBasketRepo{store: make(map[string][]entities.BasketLine)}
}

func (m *MemoryBasketRepo) SetBasket(sessionId string, lines []entities.BasketLine) error {
	snapshot := make([]entities.BasketLine, len(lines))
	copy(snapshot, lines)
	m.mu.Lock()
	m.store[sessionId] = snapshot
	m.mu.Unlock()
	return nil
}

func (m *MemoryBasketRepo) GetBasket(sessionId string) ([]entities.BasketLine, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	lines := make([]entities.BasketLine, len(m.store[sessionId]))
	copy(lines, m.store[sessionId])
	return lines, nil
}

var _ BasketRepository = (*MemoryBasketRepo)(nil)
