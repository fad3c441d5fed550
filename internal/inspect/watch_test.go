package inspect

import (
	"bytes"
	"context"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestWatch_ReinspectsOnWrite(t *testing.T) {
	path := writeFile(t, "friends.tsx", []byte("clean\n"))
	out := &lockedBuffer{}
	in := New(out, DefaultOptions(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- in.Watch(ctx, path, 20*time.Millisecond) }()

	// Give the watcher time to register before the write.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("one\n"+`two\nthree`), 0o644))

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), `Line 2: 'two\\nthree'`)
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
	assert.Contains(t, out.String(), watchSeparator)
}

func TestWatch_IgnoresOtherFiles(t *testing.T) {
	path := writeFile(t, "friends.tsx", []byte("clean\n"))
	out := &lockedBuffer{}
	in := New(out, DefaultOptions(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- in.Watch(ctx, path, 10*time.Millisecond) }()

	time.Sleep(100 * time.Millisecond)
	sibling := path + ".bak"
	require.NoError(t, os.WriteFile(sibling, []byte(`x\ny`), 0o644))
	time.Sleep(200 * time.Millisecond)

	cancel()
	require.NoError(t, <-done)
	assert.Empty(t, out.String())
}

func TestWatch_MissingDirectory(t *testing.T) {
	in := New(&bytes.Buffer{}, DefaultOptions(), nil)

	err := in.Watch(context.Background(), t.TempDir()+"/gone/friends.tsx", 0)
	assert.Error(t, err)
}
