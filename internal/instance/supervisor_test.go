package instance

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cubeworks/mc-manager/internal/api"
	"github.com/cubeworks/mc-manager/internal/save"
)

const doneLine = "[12:00:00] [Server thread/INFO]: Done (5.2s)! For help, type \"help\"\n"

type stdinRecorder struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (r *stdinRecorder) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.buf.Write(p)
}

func (r *stdinRecorder) Close() error { return nil }

func (r *stdinRecorder) String() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.buf.String()
}

type fakeProc struct {
	stdin  *stdinRecorder
	outR   *io.PipeReader
	outW   *io.PipeWriter
	exited chan error
}

func newFakeProc() *fakeProc {
	r, w := io.Pipe()
	return &fakeProc{
		stdin:  &stdinRecorder{},
		outR:   r,
		outW:   w,
		exited: make(chan error, 1),
	}
}

func (p *fakeProc) Stdin() io.WriteCloser { return p.stdin }
func (p *fakeProc) Stdout() io.ReadCloser { return p.outR }
func (p *fakeProc) Wait() error           { return <-p.exited }

func (p *fakeProc) emit(t *testing.T, s string) {
	t.Helper()
	if _, err := p.outW.Write([]byte(s)); err != nil {
		t.Fatalf("emit: %v", err)
	}
}

func (p *fakeProc) exit(err error) {
	p.outW.Close()
	p.exited <- err
}

type fakeSpawner struct {
	mu        sync.Mutex
	procs     map[string][]*fakeProc // keyed by save name
	launchErr error
}

func newFakeSpawner() *fakeSpawner {
	return &fakeSpawner{procs: make(map[string][]*fakeProc)}
}

func (f *fakeSpawner) Spawn(dir string) (Proc, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.launchErr != nil {
		return nil, &LaunchError{Err: f.launchErr}
	}
	p := newFakeProc()
	name := filepath.Base(dir)
	f.procs[name] = append(f.procs[name], p)
	return p, nil
}

func (f *fakeSpawner) proc(t *testing.T, name string) *fakeProc {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	procs := f.procs[name]
	if len(procs) == 0 {
		t.Fatalf("no process spawned for %q", name)
	}
	return procs[len(procs)-1]
}

func (f *fakeSpawner) spawnCount(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.procs[name])
}

func newTestSupervisor(t *testing.T) (*Supervisor, *save.Store, *fakeSpawner) {
	t.Helper()
	base := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(base, "saves"), 0755))
	store := save.NewStore(base)
	spawner := newFakeSpawner()
	return NewSupervisor(store, spawner), store, spawner
}

func addSave(t *testing.T, store *save.Store, name, port string) {
	t.Helper()
	require.NoError(t, os.Mkdir(store.SaveDir(name), 0755))
	content := "server-port=" + port + "\r\nmc-manager-access-time=2024-01-01 00:00:00\r\n"
	require.NoError(t, os.WriteFile(store.PropsPath(name), []byte(content), 0644))
}

func requireStatus(t *testing.T, sup *Supervisor, name string, want Status) {
	t.Helper()
	assert.Eventually(t, func() bool {
		status, err := sup.Query(name)
		return err == nil && status == want
	}, 2*time.Second, 5*time.Millisecond, "status of %q never reached %v", name, want)
}

func kindOf(t *testing.T, err error) api.Kind {
	t.Helper()
	var ae *api.Error
	require.True(t, errors.As(err, &ae), "error %v is not an api error", err)
	return ae.Kind
}

func TestStartLifecycle(t *testing.T) {
	sup, store, spawner := newTestSupervisor(t)
	addSave(t, store, "w1", "25565")

	require.NoError(t, sup.Start("w1"))
	status, err := sup.Query("w1")
	require.NoError(t, err)
	assert.Equal(t, Loading, status)

	proc := spawner.proc(t, "w1")
	proc.emit(t, "[12:00:00] [main/INFO]: Starting minecraft server\n")
	proc.emit(t, doneLine)
	requireStatus(t, sup, "w1", Online)

	require.NoError(t, sup.Stop("w1"))
	status, err = sup.Query("w1")
	require.NoError(t, err)
	assert.Equal(t, Shutdown, status)
	assert.Equal(t, "stop\r\n", proc.stdin.String())

	proc.exit(nil)
	requireStatus(t, sup, "w1", Offline)

	buf, err := sup.Read("w1")
	require.NoError(t, err)
	assert.Eventually(t, func() bool { return !buf.Alive() }, 2*time.Second, 5*time.Millisecond)
}

func TestStartErrors(t *testing.T) {
	sup, store, spawner := newTestSupervisor(t)

	assert.Equal(t, api.KindNotFound, kindOf(t, sup.Start("missing")))

	addSave(t, store, "noport", "")
	require.NoError(t, os.WriteFile(store.PropsPath("noport"), []byte("motd=hi\r\n"), 0644))
	err := sup.Start("noport")
	assert.Equal(t, api.KindBadConfig, kindOf(t, err))

	addSave(t, store, "badport", "not-a-port")
	err = sup.Start("badport")
	assert.Equal(t, api.KindBadConfig, kindOf(t, err))

	addSave(t, store, "w1", "25565")
	spawner.launchErr = errors.New("java not installed")
	err = sup.Start("w1")
	assert.Equal(t, api.KindJavaError, kindOf(t, err))
}

func TestStartWhileRunning(t *testing.T) {
	sup, store, _ := newTestSupervisor(t)
	addSave(t, store, "w1", "25565")

	require.NoError(t, sup.Start("w1"))
	err := sup.Start("w1")
	require.Error(t, err)
	var ae *api.Error
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, api.KindBadInstanceStatus, ae.Kind)
	assert.Equal(t, "loading", ae.Status)
}

func TestPortConflict(t *testing.T) {
	sup, store, spawner := newTestSupervisor(t)
	addSave(t, store, "w1", "25565")
	addSave(t, store, "w2", "25565")
	addSave(t, store, "w3", "25600")

	require.NoError(t, sup.Start("w1"))
	assert.Equal(t, api.KindPortInUse, kindOf(t, sup.Start("w2")))
	require.NoError(t, sup.Start("w3"))

	// once the first instance is offline its port is free again
	spawner.proc(t, "w1").exit(nil)
	requireStatus(t, sup, "w1", Offline)
	require.NoError(t, sup.Start("w2"))
}

func TestRestartReplacesBuffer(t *testing.T) {
	sup, store, spawner := newTestSupervisor(t)
	addSave(t, store, "w1", "25565")

	require.NoError(t, sup.Start("w1"))
	first, err := sup.Read("w1")
	require.NoError(t, err)

	spawner.proc(t, "w1").exit(nil)
	requireStatus(t, sup, "w1", Offline)

	require.NoError(t, sup.Start("w1"))
	assert.Equal(t, 2, spawner.spawnCount("w1"))
	second, err := sup.Read("w1")
	require.NoError(t, err)
	assert.NotSame(t, first, second)
	assert.False(t, first.Alive())
	assert.True(t, second.Alive())
}

func TestConcurrentStart(t *testing.T) {
	sup, store, _ := newTestSupervisor(t)
	addSave(t, store, "w1", "25565")

	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() { errs <- sup.Start("w1") }()
	}
	var failures, successes int
	for i := 0; i < 2; i++ {
		if err := <-errs; err != nil {
			assert.Equal(t, api.KindBadInstanceStatus, kindOf(t, err))
			failures++
		} else {
			successes++
		}
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, failures)
}

func TestWriteCommand(t *testing.T) {
	sup, store, spawner := newTestSupervisor(t)
	addSave(t, store, "w1", "25565")

	require.NoError(t, sup.Start("w1"))
	proc := spawner.proc(t, "w1")

	err := sup.Write("w1", "list")
	assert.Equal(t, api.KindBadInstanceStatus, kindOf(t, err))

	proc.emit(t, doneLine)
	requireStatus(t, sup, "w1", Online)

	require.NoError(t, sup.Write("w1", "hello players"))
	require.NoError(t, sup.Write("w1", "/say hi"))
	require.NoError(t, sup.Write("w1", "  list  "))
	assert.Equal(t, "say hello players\r\nsay hi\r\nsay list\r\n", proc.stdin.String())

	assert.Equal(t, api.KindBadRequest, kindOf(t, sup.Write("w1", "bad\x01byte")))

	require.NoError(t, sup.Write("w1", "/stop"))
	status, err := sup.Query("w1")
	require.NoError(t, err)
	assert.Equal(t, Shutdown, status)
	assert.Contains(t, proc.stdin.String(), "stop\r\n")
}

func TestWriteCold(t *testing.T) {
	sup, store, _ := newTestSupervisor(t)
	addSave(t, store, "w1", "25565")
	err := sup.Write("w1", "list")
	var ae *api.Error
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, api.KindBadInstanceStatus, ae.Kind)
	assert.Equal(t, "cold", ae.Status)
}

func TestStopStates(t *testing.T) {
	sup, store, spawner := newTestSupervisor(t)
	addSave(t, store, "w1", "25565")

	err := sup.Stop("w1")
	var ae *api.Error
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, "cold", ae.Status)

	require.NoError(t, sup.Start("w1"))
	err = sup.Stop("w1")
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, "loading", ae.Status)

	proc := spawner.proc(t, "w1")
	proc.emit(t, doneLine)
	requireStatus(t, sup, "w1", Online)
	require.NoError(t, sup.Stop("w1"))
	require.NoError(t, sup.Stop("w1")) // already shutting down

	proc.exit(nil)
	requireStatus(t, sup, "w1", Offline)
	err = sup.Stop("w1")
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, "offline", ae.Status)
}

func TestQueryRequiresSave(t *testing.T) {
	sup, store, _ := newTestSupervisor(t)
	_, err := sup.Query("missing")
	assert.Equal(t, api.KindNotFound, kindOf(t, err))

	addSave(t, store, "w1", "25565")
	status, err := sup.Query("w1")
	require.NoError(t, err)
	assert.Equal(t, Cold, status)
}

func TestReadCold(t *testing.T) {
	sup, store, _ := newTestSupervisor(t)
	addSave(t, store, "w1", "25565")
	_, err := sup.Read("w1")
	assert.Equal(t, api.KindBadInstanceStatus, kindOf(t, err))
}

func TestStatusSummary(t *testing.T) {
	sup, store, spawner := newTestSupervisor(t)
	addSave(t, store, "w1", "25565")
	addSave(t, store, "w2", "25600")
	addSave(t, store, "cold", "25700")

	assert.Empty(t, sup.StatusSummary())

	require.NoError(t, sup.Start("w1"))
	require.NoError(t, sup.Start("w2"))
	spawner.proc(t, "w2").emit(t, doneLine)
	requireStatus(t, sup, "w2", Online)

	summary := sup.StatusSummary()
	assert.Equal(t, map[string]string{"w1": "loading", "w2": "online"}, summary)
}

func TestReaderStreamsOutput(t *testing.T) {
	sup, store, spawner := newTestSupervisor(t)
	addSave(t, store, "w1", "25565")
	require.NoError(t, sup.Start("w1"))

	proc := spawner.proc(t, "w1")
	proc.emit(t, "A\n")
	proc.emit(t, "B\n")

	buf, err := sup.Read("w1")
	require.NoError(t, err)
	assert.Eventually(t, func() bool { return buf.Len() == 4 }, 2*time.Second, 5*time.Millisecond)

	delta, _, _, _ := buf.SnapshotFrom(0)
	assert.Equal(t, "A\nB\n", string(delta))
	delta, _, _, _ = buf.SnapshotFrom(2)
	assert.Equal(t, "B\n", string(delta))

	proc.exit(nil)
	assert.Eventually(t, func() bool { return !buf.Alive() }, 2*time.Second, 5*time.Millisecond)
}

func TestShutdownAll(t *testing.T) {
	sup, store, spawner := newTestSupervisor(t)
	addSave(t, store, "online", "25565")
	addSave(t, store, "loading", "25600")

	require.NoError(t, sup.Start("online"))
	require.NoError(t, sup.Start("loading"))
	onlineProc := spawner.proc(t, "online")
	onlineProc.emit(t, doneLine)
	requireStatus(t, sup, "online", Online)

	onlineBuf, err := sup.Read("online")
	require.NoError(t, err)
	loadingBuf, err := sup.Read("loading")
	require.NoError(t, err)

	sup.ShutdownAll()
	assert.True(t, sup.IsShutdown())

	status, err := sup.Query("online")
	require.NoError(t, err)
	assert.Equal(t, Shutdown, status)
	assert.Equal(t, "stop\r\n", onlineProc.stdin.String())

	// every buffer is finished so subscribers drain
	assert.False(t, onlineBuf.Alive())
	assert.False(t, loadingBuf.Alive())

	// a child that only now finishes loading receives the deferred stop
	loadingProc := spawner.proc(t, "loading")
	loadingProc.emit(t, doneLine)
	assert.Eventually(t, func() bool {
		return loadingProc.stdin.String() == "stop\r\n"
	}, 2*time.Second, 5*time.Millisecond)
	requireStatus(t, sup, "loading", Shutdown)

	sup.ShutdownAll() // idempotent
}
