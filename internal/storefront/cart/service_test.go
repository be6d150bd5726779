// Copyright (c) 2026 Voltcart. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cart

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/voltcart/internal/session"
)

// fakeBackend records the sequence of upstream calls and serves a canned
// cart payload on refetch.
type fakeBackend struct {
	calls       []string
	cartPayload string
	writeErr    error
	fetchErr    error
}

func (f *fakeBackend) Get(_ context.Context, path string, _ url.Values, out any) error {
	f.calls = append(f.calls, "GET "+path)
	if f.fetchErr != nil {
		return f.fetchErr
	}
	return json.Unmarshal([]byte(f.cartPayload), out)
}

func (f *fakeBackend) Post(_ context.Context, path string, _ url.Values, _, _ any) error {
	f.calls = append(f.calls, "POST "+path)
	return f.writeErr
}

func (f *fakeBackend) Put(_ context.Context, path string, _ url.Values, _, _ any) error {
	f.calls = append(f.calls, "PUT "+path)
	return f.writeErr
}

func (f *fakeBackend) Delete(_ context.Context, path string, _ url.Values, _ any) error {
	f.calls = append(f.calls, "DELETE "+path)
	return f.writeErr
}

const oneShirtCart = `{
	"cartItems": [
		{"id": 11, "quantity": 2, "product": {"id": 7, "title": "Linen Shirt"}, "mrpPrice": 2000, "sellingPrice": 1500}
	],
	"totalItem": 2,
	"totalMrpPrice": 4000,
	"totalSellingPrice": 3000,
	"discount": 25
}`

func shopper() *session.Session {
	return &session.Session{Token: "t", Role: session.RoleUser}
}

func newTestService(backend *fakeBackend) (*Service, *MemoryStore) {
	cache := NewMemoryStore()
	return NewService(backend, cache, slog.New(slog.NewTextHandler(io.Discard, nil))), cache
}

func TestAddItemWritesThenReplacesCache(t *testing.T) {
	backend := &fakeBackend{cartPayload: oneShirtCart}
	service, cache := newTestService(backend)

	// Seed a stale cached view to prove it is replaced, not patched.
	require.NoError(t, cache.Put(context.Background(), "sid-1", &Cart{TotalItem: 99}))

	view, err := service.AddItem(context.Background(), "sid-1", 7, 2)

	require.NoError(t, err)
	assert.Equal(t, []string{"POST /user/cart/add", "GET /user/cart"}, backend.calls)
	assert.Equal(t, 2, view.TotalItem)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "Linen Shirt", view.Items[0].ProductName)

	cached, err := cache.Get(context.Background(), "sid-1")
	require.NoError(t, err)
	assert.Equal(t, view, cached)
}

func TestWriteFailureKeepsCacheAndSkipsRefetch(t *testing.T) {
	backend := &fakeBackend{writeErr: errors.New("upstream rejected")}
	service, cache := newTestService(backend)
	require.NoError(t, cache.Put(context.Background(), "sid-1", &Cart{TotalItem: 3}))

	_, err := service.AddItem(context.Background(), "sid-1", 7, 1)

	require.Error(t, err)
	assert.Equal(t, []string{"POST /user/cart/add"}, backend.calls)

	cached, err := cache.Get(context.Background(), "sid-1")
	require.NoError(t, err)
	assert.Equal(t, 3, cached.TotalItem)
}

func TestRefetchFailureAfterWriteDropsCache(t *testing.T) {
	backend := &fakeBackend{fetchErr: errors.New("upstream unreachable")}
	service, cache := newTestService(backend)
	require.NoError(t, cache.Put(context.Background(), "sid-1", &Cart{TotalItem: 3}))

	_, err := service.RemoveItem(context.Background(), "sid-1", 11)

	require.Error(t, err)
	assert.Equal(t, []string{"DELETE /user/cart/item/11", "GET /user/cart"}, backend.calls)

	// The backend applied the write; the stale view must not survive.
	_, err = cache.Get(context.Background(), "sid-1")
	require.Error(t, err)
}

func TestViewServesCachedCopyWithoutUpstreamCall(t *testing.T) {
	backend := &fakeBackend{cartPayload: oneShirtCart}
	service, cache := newTestService(backend)
	require.NoError(t, cache.Put(context.Background(), "sid-1", &Cart{TotalItem: 2}))

	view, err := service.View(context.Background(), shopper(), "sid-1")

	require.NoError(t, err)
	assert.Empty(t, backend.calls)
	assert.Equal(t, 2, view.TotalItem)
}

func TestViewFetchesOnCacheMiss(t *testing.T) {
	backend := &fakeBackend{cartPayload: oneShirtCart}
	service, cache := newTestService(backend)

	view, err := service.View(context.Background(), shopper(), "sid-1")

	require.NoError(t, err)
	assert.Equal(t, []string{"GET /user/cart"}, backend.calls)
	assert.Equal(t, 2, view.TotalItem)

	cached, err := cache.Get(context.Background(), "sid-1")
	require.NoError(t, err)
	assert.Equal(t, view, cached)
}

func TestViewForAdministrativeRoleSkipsBackend(t *testing.T) {
	backend := &fakeBackend{}
	service, _ := newTestService(backend)
	admin := &session.Session{Token: "t", Role: session.RoleAdmin}

	view, err := service.View(context.Background(), admin, "sid-1")

	require.NoError(t, err)
	assert.Empty(t, backend.calls)
	assert.Empty(t, view.Items)
	assert.Zero(t, view.TotalItem)
}

func TestViewForAnonymousSkipsBackend(t *testing.T) {
	backend := &fakeBackend{}
	service, _ := newTestService(backend)

	view, err := service.View(context.Background(), nil, "")

	require.NoError(t, err)
	assert.Empty(t, backend.calls)
	assert.Empty(t, view.Items)
}

func TestClearEmptiesCartAndCache(t *testing.T) {
	backend := &fakeBackend{cartPayload: `{"cartItems": [], "totalItem": 0}`}
	service, cache := newTestService(backend)
	require.NoError(t, cache.Put(context.Background(), "sid-1", &Cart{TotalItem: 2}))

	view, err := service.Clear(context.Background(), "sid-1")

	require.NoError(t, err)
	assert.Equal(t, []string{"DELETE /user/cart/clear", "GET /user/cart"}, backend.calls)
	assert.Zero(t, view.TotalItem)
	assert.Empty(t, view.Items)
}

func TestResetDropsCachedView(t *testing.T) {
	service, cache := newTestService(&fakeBackend{})
	require.NoError(t, cache.Put(context.Background(), "sid-1", &Cart{TotalItem: 2}))

	require.NoError(t, service.Reset(context.Background(), "sid-1"))

	_, err := cache.Get(context.Background(), "sid-1")
	require.Error(t, err)
}
