package services

import (
	"context"
	"testing"

	"larekStore/events"
	"larekStore/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_Load(t *testing.T) {
	state := NewAppState(events.NewBus())
	cs := NewCatalogService(&fakeSource{prods: testCatalog()}, state, &Turn{})

	err := cs.Load(context.Background())

	require.NoError(t, err)
	assert.Len(t, state.Catalog(), 3)
}

func TestCatalogService_LoadFailureKeepsCatalog(t *testing.T) {
	state := NewAppState(events.NewBus())
	source := &fakeSource{prods: testCatalog()}
	cs := NewCatalogService(source, state, &Turn{})
	require.NoError(t, cs.Load(context.Background()))

	source.err = models.ErrServerError
	err := cs.Load(context.Background())

	assert.ErrorIs(t, err, models.ErrServerError)
	assert.Len(t, state.Catalog(), 3)
}

func TestCatalogService_GetProduct(t *testing.T) {
	state := NewAppState(events.NewBus())
	extra := testCatalog()
	source := &fakeSource{prods: extra}
	cs := NewCatalogService(source, state, &Turn{})
	state.SetCatalog(extra[:1])

	p, err := cs.GetProduct(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, "a", p.Id)

	p, err = cs.GetProduct(context.Background(), "c")
	require.NoError(t, err)
	assert.Equal(t, 1000, *p.Price)

	_, err = cs.GetProduct(context.Background(), "missing")
	assert.ErrorIs(t, err, models.ErrNotFoundError)
}
