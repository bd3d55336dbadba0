package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedFillsEmptyCatalogOnce(t *testing.T) {
	s := newMemStore()
	svc := &CatalogService{Products: &memProductRepo{s: s}, Logger: testLogger()}

	n, err := svc.Seed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	// A second run against the filled table inserts nothing.
	n, err = svc.Seed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	products, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 5)

	assert.Equal(t, "Classic Federal Bond 1 Month", products[0].Name)
	assert.Equal(t, "2.5% p.a.", products[0].Rate)
	assert.False(t, products[0].IsGreen)

	assert.Equal(t, "Green Federal Bond 4 Years", products[4].Name)
	assert.Equal(t, "4 Years", products[4].Duration)
	assert.True(t, products[4].IsGreen)
}

func TestCatalogGetUnknownProduct(t *testing.T) {
	s := newMemStore()
	svc := &CatalogService{Products: &memProductRepo{s: s}, Logger: testLogger()}

	_, err := svc.Seed(context.Background())
	require.NoError(t, err)

	p, err := svc.Get(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Classic Federal Bond 12 Months", p.Name)

	_, err = svc.Get(context.Background(), 999)
	assert.ErrorIs(t, err, ErrNotFound)
}
