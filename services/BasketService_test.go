package services

import (
	"sync"
	"testing"

	"larekStore/entities"
	"larekStore/events"
	"larekStore/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasketService_SavesOnChange(t *testing.T) {
	bus := events.NewBus()
	state := NewAppState(bus)
	repo := repository.NewMemoryBasketRepository()
	bs := NewBasketService(bus, state, &Turn{}, repo, "s1")
	catalog := testCatalog()
	state.SetCatalog(catalog)

	state.AddToBasket(catalog[0])
	state.AddToBasket(catalog[2])
	bs.Wait()

	lines, err := repo.GetBasket("s1")
	require.NoError(t, err)
	assert.Equal(t, []entities.BasketLine{
		{Id: "a", Title: "+1 час в сутках", Price: 100},
		{Id: "c", Title: "Бэкенд-антистресс", Price: 1000},
	}, lines)

	state.RemoveFromBasket("a")
	bs.Wait()
	lines, _ = repo.GetBasket("s1")
	assert.Len(t, lines, 1)
}

func TestBasketService_Restore(t *testing.T) {
	repo := repository.NewMemoryBasketRepository()
	require.NoError(t, repo.SetBasket("s1", []entities.BasketLine{
		{Id: "a", Title: "old title", Price: 1},
		{Id: "b", Title: "not for sale", Price: 5},
		{Id: "gone", Title: "removed", Price: 7},
	}))

	bus := events.NewBus()
	state := NewAppState(bus)
	state.SetCatalog(testCatalog())
	bs := NewBasketService(bus, state, &Turn{}, repo, "s1")

	restored, err := bs.Restore()
	bs.Wait()

	require.NoError(t, err)
	assert.Equal(t, 1, restored)
	assert.Equal(t, 100, state.BasketTotal())
	a, _ := state.Product("a")
	assert.True(t, a.Selected)
	assert.Equal(t, "s1", bs.SessionId())
}

func TestBasketService_RestoreEmpty(t *testing.T) {
	bus := events.NewBus()
	state := NewAppState(bus)
	bs := NewBasketService(bus, state, &Turn{}, repository.NewMemoryBasketRepository(), "new")

	restored, err := bs.Restore()

	require.NoError(t, err)
	assert.Zero(t, restored)
	assert.Zero(t, state.BasketCount())
}

type blockingBasketRepo struct {
	mu      sync.Mutex
	saved   [][]entities.BasketLine
	started chan struct{}
	release chan struct{}
}

func (r *blockingBasketRepo) SetBasket(sessionId string, lines []entities.BasketLine) error {
	r.started <- struct{}{}
	<-r.release
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saved = append(r.saved, lines)
	return nil
}

func (r *blockingBasketRepo) GetBasket(sessionId string) ([]entities.BasketLine, error) {
	return []entities.BasketLine{}, nil
}

func TestBasketService_SavesOutsideTurn(t *testing.T) {
	bus := events.NewBus()
	state := NewAppState(bus)
	turn := &Turn{}
	repo := &blockingBasketRepo{started: make(chan struct{}, 1), release: make(chan struct{})}
	bs := NewBasketService(bus, state, turn, repo, "s1")
	catalog := testCatalog()
	state.SetCatalog(catalog)

	turn.Run(func() { state.AddToBasket(catalog[0]) })
	<-repo.started

	var count int
	turn.Run(func() { count = state.BasketCount() })
	assert.Equal(t, 1, count)

	close(repo.release)
	bs.Wait()
	require.Len(t, repo.saved, 1)
	assert.Equal(t, "a", repo.saved[0][0].Id)
}

func TestBasketService_LatestSnapshotWins(t *testing.T) {
	bus := events.NewBus()
	state := NewAppState(bus)
	repo := repository.NewMemoryBasketRepository()
	bs := NewBasketService(bus, state, &Turn{}, repo, "s1")
	catalog := testCatalog()
	state.SetCatalog(catalog)

	for i := 0; i < 20; i++ {
		state.AddToBasket(catalog[0])
		state.RemoveFromBasket("a")
	}
	state.AddToBasket(catalog[2])
	bs.Wait()

	lines, err := repo.GetBasket("s1")
	require.NoError(t, err)
	assert.Equal(t, []entities.BasketLine{{Id: "c", Title: "Бэкенд-антистресс", Price: 1000}}, lines)
}
