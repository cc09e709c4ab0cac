package storage

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestStore(t *testing.T) *DiskStore {
	store, err := NewDiskStore(t.TempDir())
	assert.NoError(t, err)
	return store
}

func TestDiskStore_SaveOpenRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	err := store.Save(ctx, "incidencias/foto.png", strings.NewReader("contenido"), 9, "image/png")
	assert.NoError(t, err)

	exists, err := store.Exists(ctx, "incidencias/foto.png")
	assert.NoError(t, err)
	assert.True(t, exists)

	r, err := store.Open(ctx, "incidencias/foto.png")
	assert.NoError(t, err)
	data, err := io.ReadAll(r)
	assert.NoError(t, err)
	assert.NoError(t, r.Close())
	assert.Equal(t, "contenido", string(data))
}

func TestDiskStore_OpenMissing(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Open(context.Background(), "incidencias/nada")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDiskStore_Delete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	assert.NoError(t, store.Save(ctx, "a/b", strings.NewReader("x"), 1, "text/plain"))
	assert.NoError(t, store.Delete(ctx, "a/b"))

	exists, err := store.Exists(ctx, "a/b")
	assert.NoError(t, err)
	assert.False(t, exists)

	assert.ErrorIs(t, store.Delete(ctx, "a/b"), ErrNotFound)
}

func TestDiskStore_TraversalGuard(t *testing.T) {
	store := newTestStore(t)

	got := store.path("../../etc/passwd")
	assert.True(t, strings.HasPrefix(got, store.root))
	assert.Equal(t, filepath.Join(store.root, "etc", "passwd"), got)
}
