package mockdata

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/SnookieTejas/launch-access-forecast/internal/logger"
)

type verboseOn struct{}

func (verboseOn) IsVerbose() bool { return true }

func TestWatcherReloadsOnWrite(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := writeOverride(t, dir, "kpis: []\n")

	w, err := NewWatcher(path, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	reloads := make(chan *Store, 4)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(s *Store, err error) {
			if err == nil {
				select {
				case reloads <- s:
				default:
				}
			}
		})
	}()

	body := "kpis:\n  - icon: rocket\n    label: Reloaded\n    color: \"#000000\"\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	// a truncate can be reported before the write lands
	deadline := time.After(5 * time.Second)
	for reloaded := false; !reloaded; {
		select {
		case s := <-reloads:
			kpis := s.KPIs()
			reloaded = len(kpis) == 1 && kpis[0].Label == "Reloaded"
		case <-deadline:
			t.Fatal("no reload after write")
		}
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatcherLogsReloadFields(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := writeOverride(t, dir, "kpis: []\n")

	var buf bytes.Buffer
	w, err := NewWatcher(path, logger.NewWithWriter("mockdata", verboseOn{}, &buf))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	reloaded := make(chan struct{}, 4)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(_ *Store, err error) {
			if err == nil {
				select {
				case reloaded <- struct{}{}:
				default:
				}
			}
		})
	}()

	require.NoError(t, os.WriteFile(path, []byte("kpis: []\n"), 0o600))
	select {
	case <-reloaded:
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after write")
	}

	cancel()
	require.NoError(t, <-done)

	out := buf.String()
	assert.Contains(t, out, "reloaded data override")
	assert.Contains(t, out, "count")
	assert.Contains(t, out, "duration")
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := writeOverride(t, dir, "kpis: []\n")

	w, err := NewWatcher(path, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	calls := make(chan struct{}, 4)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(*Store, error) {
			select {
			case calls <- struct{}{}:
			default:
			}
		})
	}()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600))

	select {
	case <-calls:
		t.Fatal("reload triggered by unrelated file")
	case <-time.After(200 * time.Millisecond):
	}

	cancel()
	require.NoError(t, <-done)
}

func TestNewWatcherRejectsBadPaths(t *testing.T) {
	dir := t.TempDir()

	_, err := NewWatcher("", nil)
	assert.Error(t, err)

	_, err = NewWatcher(filepath.Join(dir, "missing.yaml"), nil)
	assert.Error(t, err)

	txt := filepath.Join(dir, "data.txt")
	require.NoError(t, os.WriteFile(txt, []byte("x"), 0o600))
	_, err = NewWatcher(txt, nil)
	assert.Error(t, err)

	_, err = NewWatcher("../escape.yaml", nil)
	assert.Error(t, err)
}
