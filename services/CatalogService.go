package services

import (
	"context"
	"log"

	"larekStore/entities"
	"larekStore/repository"
)

type CatalogService struct {
	source repository.ProductSource
	state  *AppState
	turn   *Turn
}

func NewCatalogService(source repository.ProductSource, state *AppState, turn *Turn) CatalogService {
	return CatalogService{
		source: source,
		state:  state,
		turn:   turn,
	}
}

// Load fetches the product list and replaces the catalog. On failure the
// previous catalog stays in place.
func (cs *CatalogService) Load(ctx context.Context) (err error) {
	prods, err := cs.source.GetProductList(ctx)
	if err != nil {
		log.Printf("Load: %v", err)
		return
	}
	cs.turn.Run(func() {
		cs.state.SetCatalog(prods)
	})
	log.Printf("catalog loaded: %d products", len(prods))
	return
}

// GetProduct looks the product up in the loaded catalog first and asks the
// source only when it is missing.
func (cs *CatalogService) GetProduct(ctx context.Context, id string) (prod entities.Product, err error) {
	var exists bool
	cs.turn.Run(func() {
		prod, exists = cs.state.Product(id)
	})
	if exists {
		return
	}
	prod, err = cs.source.GetProduct(ctx, id)
	return
}
