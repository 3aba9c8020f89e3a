package assets

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const minimalGLTF = `{
  "asset": {"version": "2.0"},
  "nodes": [{"name": "root"}, {"name": "hips"}],
  "animations": []
}`

func writeModel(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hero.gltf")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestGLTFLoaderLoadsNodes(t *testing.T) {
	path := writeModel(t, minimalGLTF)
	l := &GLTFLoader{URLPrefix: "/models/", Clips: []string{"Idle"}, Log: zap.NewNop()}

	var calls int
	var last int64
	m, err := l.Load(context.Background(), path, func(loaded, total int64) {
		calls++
		last = loaded
		assert.Positive(t, total)
	})
	require.NoError(t, err)
	assert.Equal(t, "hero.gltf", m.Name)
	assert.Equal(t, "/models/hero.gltf", m.URL)
	assert.Equal(t, 2, m.Nodes)
	assert.False(t, m.HasClip("Idle"))
	assert.Equal(t, 2, calls)
	assert.Equal(t, int64(len(minimalGLTF)), last)
}

func TestGLTFLoaderErrors(t *testing.T) {
	l := &GLTFLoader{}
	_, err := l.Load(context.Background(), "", nil)
	assert.True(t, errors.Is(err, ErrEmptyPath))

	_, err = l.Load(context.Background(), filepath.Join(t.TempDir(), "missing.glb"), nil)
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = l.Load(ctx, writeModel(t, minimalGLTF), nil)
	assert.ErrorIs(t, err, context.Canceled)
}

type failingLoader struct{}

func (failingLoader) Load(context.Context, string, Progress) (*Model, error) {
	return nil, errors.New("no such model")
}

func TestLoadAsyncFailureFallsBackToPlaceholder(t *testing.T) {
	res := <-LoadAsync(context.Background(), failingLoader{}, "hero.glb", nil)
	require.Error(t, res.Err)

	m := res.OrPlaceholder(zap.NewNop())
	assert.True(t, m.Placeholder)
	assert.Equal(t, "placeholder", m.Name)
}

func TestLoadAsyncSuccess(t *testing.T) {
	path := writeModel(t, minimalGLTF)
	res := <-LoadAsync(context.Background(), &GLTFLoader{}, path, nil)
	require.NoError(t, res.Err)
	assert.Same(t, res.Model, res.OrPlaceholder(nil))
}
