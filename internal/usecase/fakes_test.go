package usecase

import (
	"context"
	"errors"
	"sync"

	g "maragu.dev/gomponents"
)

type fakeRenderer struct {
	mu    sync.Mutex
	calls int
	html  string
	err   error
}

func (r *fakeRenderer) Render(_ context.Context, p Page) ([]byte, error) {
	r.mu.Lock()
	r.calls++
	r.mu.Unlock()

	if r.err != nil {
		return nil, r.err
	}
	if r.html != "" {
		return []byte(r.html), nil
	}
	return []byte("<html>" + p.Config.Pattern + "</html>"), nil
}

func (r *fakeRenderer) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

var errRenderFailed = errors.New("render failed")

func textBody(text string) func() g.Node {
	return func() g.Node { return g.Text(text) }
}

type mockOutput struct {
	files []string
}

func (m *mockOutput) PrintFile(path string) { m.files = append(m.files, path) }
