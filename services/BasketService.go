package services

import (
	"log"
	"sync"

	"larekStore/entities"
	"larekStore/events"
	"larekStore/repository"
)

// BasketService mirrors the basket into a BasketRepository so a session
// can pick it up again after a restart. The snapshot is taken inside the
// turn; the write happens in the background.
type BasketService struct {
	repo      repository.BasketRepository
	state     *AppState
	turn      *Turn
	sessionId string

	wg      sync.WaitGroup
	saveMu  sync.Mutex
	seq     uint64
	written uint64
}

func NewBasketService(bus *events.Bus, state *AppState, turn *Turn, repo repository.BasketRepository, sessionId string) *BasketService {
	bs := &BasketService{
		repo:      repo,
		state:     state,
		turn:      turn,
		sessionId: sessionId,
	}
	events.Subscribe(bus, events.KindBasketChanged, func(events.BasketChanged) {
		bs.seq++
		seq, lines := bs.seq, bs.state.Basket()
		bs.wg.Add(1)
		go func() {
			defer bs.wg.Done()
			bs.save(seq, lines)
		}()
	})
	return bs
}

func (bs *BasketService) SessionId() string {
	return bs.sessionId
}

// save writes lines unless a newer snapshot has been saved already.
func (bs *BasketService) save(seq uint64, lines []entities.BasketLine) {
	bs.saveMu.Lock()
	defer bs.saveMu.Unlock()
	if seq <= bs.written {
		return
	}
	bs.written = seq
	if err := bs.repo.SetBasket(bs.sessionId, lines); err != nil {
		log.Printf("BasketService.save: %v", err)
	}
}

// Wait blocks until every save started so far has finished.
func (bs *BasketService) Wait() {
	bs.wg.Wait()
}

// Restore re-adds the saved basket lines whose products are still in the
// catalog and for sale. It must run after the catalog is loaded.
func (bs *BasketService) Restore() (restored int, err error) {
	lines, err := bs.repo.GetBasket(bs.sessionId)
	if err != nil {
		return
	}
	bs.turn.Run(func() {
		for _, line := range lines {
			p, exists := bs.state.Product(line.Id)
			if !exists || !p.Purchasable() {
				log.Printf("Restore: product %s is no longer available", line.Id)
				continue
			}
			bs.state.AddToBasket(p)
			restored++
		}
	})
	return
}
