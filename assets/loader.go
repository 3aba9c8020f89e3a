// Package assets resolves the player model that the browser will display.
package assets

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"go.uber.org/zap"
)

var ErrEmptyPath = errors.New("empty model path")

// Model is what the server needs to know about a loaded character model.
type Model struct {
	Name        string   `json:"name"`
	URL         string   `json:"url,omitempty"`
	Clips       []string `json:"clips"`
	Nodes       int      `json:"nodes"`
	Placeholder bool     `json:"placeholder"`
}

func (m *Model) HasClip(name string) bool {
	for _, c := range m.Clips {
		if c == name {
			return true
		}
	}
	return false
}

// Placeholder stands in for a model that failed to load. The page draws it as a box.
func Placeholder() *Model {
	return &Model{Name: "placeholder", Placeholder: true}
}

// Progress reports bytes read out of total.
type Progress func(loaded, total int64)

type Loader interface {
	Load(ctx context.Context, path string, progress Progress) (*Model, error)
}

// GLTFLoader reads .gltf and .glb files from disk.
type GLTFLoader struct {
	// URLPrefix is prepended to the file name to build the URL the page fetches.
	URLPrefix string
	// Clips lists animation names the model is expected to carry.
	Clips []string
	Log   *zap.Logger
}

func (l *GLTFLoader) Load(ctx context.Context, path string, progress Progress) (*Model, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	if progress == nil {
		progress = func(int64, int64) {}
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat model: %w", err)
	}
	progress(0, info.Size())

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open model %s: %w", path, err)
	}
	progress(info.Size(), info.Size())

	name := filepath.Base(path)
	m := &Model{
		Name:  name,
		URL:   l.URLPrefix + name,
		Nodes: len(doc.Nodes),
	}
	for _, a := range doc.Animations {
		m.Clips = append(m.Clips, a.Name)
	}

	log := l.Log
	if log == nil {
		log = zap.NewNop()
	}
	for _, want := range l.Clips {
		if !m.HasClip(want) {
			log.Warn("model is missing animation clip", zap.String("model", name), zap.String("clip", want))
		}
	}
	return m, nil
}

// Result is delivered once an asynchronous load finishes.
type Result struct {
	Model *Model
	Err   error
}

// LoadAsync runs l.Load on its own goroutine. progress is called from that
// goroutine; the result is sent on the returned channel exactly once.
func LoadAsync(ctx context.Context, l Loader, path string, progress Progress) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		m, err := l.Load(ctx, path, progress)
		out <- Result{Model: m, Err: err}
	}()
	return out
}

// OrPlaceholder returns the loaded model, or the placeholder when the load failed.
func (r Result) OrPlaceholder(log *zap.Logger) *Model {
	if r.Err == nil && r.Model != nil {
		return r.Model
	}
	if log != nil {
		log.Warn("model load failed, using placeholder", zap.Error(r.Err))
	}
	return Placeholder()
}
