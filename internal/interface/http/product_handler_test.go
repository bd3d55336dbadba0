package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/federalbonds/backend/internal/application"
)

func newProductRouter() *gin.Engine {
	svc := &application.CatalogService{
		Products: &productRepoStub{products: sampleProducts()},
		Logger:   testLogger(),
	}
	h := NewProductHandler(svc, testLogger())

	r := gin.New()
	r.GET("/api/products", h.List)
	r.GET("/api/products/:id", h.Details)
	return r
}

func TestProductList(t *testing.T) {
	r := newProductRouter()

	w := performJSON(r, http.MethodGet, "/api/products", nil)
	require.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	var products []productResponse
	require.NoError(t, json.Unmarshal(env.Data, &products))
	require.Len(t, products, 2)
	assert.Equal(t, "Classic Federal Bond 1 Month", products[0].Name)
	assert.True(t, products[1].IsGreen)
}

func TestProductDetails(t *testing.T) {
	r := newProductRouter()

	w := performJSON(r, http.MethodGet, "/api/products/2", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var p productResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &p))
	assert.Equal(t, "Green Federal Bond 6 Months", p.Name)
	assert.Equal(t, "2.8% p.a.", p.Rate)
}

func TestProductDetailsNotFound(t *testing.T) {
	r := newProductRouter()

	w := performJSON(r, http.MethodGet, "/api/products/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProductDetailsBadID(t *testing.T) {
	r := newProductRouter()

	w := performJSON(r, http.MethodGet, "/api/products/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
