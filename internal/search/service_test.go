package search

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ToderitaLoredana/PlaneBooking/internal/config"
	"github.com/ToderitaLoredana/PlaneBooking/internal/engine"
	"github.com/ToderitaLoredana/PlaneBooking/internal/engine/enginetest"
	"github.com/ToderitaLoredana/PlaneBooking/internal/resultstore"
)

func engineConfig(t *testing.T, isolation string) config.EngineConfig {
	t.Helper()
	dir := t.TempDir()
	return config.EngineConfig{
		Path:       "./main.exe",
		InputFile:  "data.json",
		OutputFile: filepath.Join(dir, "output.json"),
		Isolation:  isolation,
		ScratchDir: filepath.Join(dir, "scratch"),
	}
}

func query(source string) engine.Query {
	return engine.Query{Source: source, Destination: "BER", Day: "Monday", DepartureTime: "08:00"}
}

func encode(t *testing.T, doc resultstore.Document) string {
	t.Helper()
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	return string(data)
}

func TestRunPerRequestReadsOwnOutput(t *testing.T) {
	cfg := engineConfig(t, config.IsolationPerRequest)
	stub := &enginetest.Stub{Result: `{"flights":[{"id":1}]}`}
	svc := NewService(cfg, stub, logr.Discard())

	res := svc.Run(context.Background(), query("NYC"))

	require.True(t, res.Outcome.Succeeded())
	assert.Equal(t, resultstore.StatusOK, res.Status)
	assert.JSONEq(t, `{"flights":[{"id":1}]}`, encode(t, res.Document))

	calls := stub.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, cfg.Path, calls[0].ExecutablePath)
	assert.Equal(t, cfg.InputFile, calls[0].InputFile)
	assert.NotEqual(t, cfg.OutputFile, calls[0].OutputFile)
	assert.Equal(t, cfg.ScratchDir, filepath.Dir(calls[0].OutputFile))

	_, err := os.Stat(calls[0].OutputFile)
	assert.True(t, os.IsNotExist(err), "per-request output must be removed")

	latest, status := svc.Latest()
	assert.Equal(t, resultstore.StatusOK, status)
	assert.JSONEq(t, `{"flights":[{"id":1}]}`, encode(t, latest))
}

func TestRunPerRequestFailureDoesNotPublish(t *testing.T) {
	cfg := engineConfig(t, config.IsolationPerRequest)
	require.NoError(t, os.WriteFile(cfg.OutputFile, []byte(`{"flights":["old"]}`), 0o644))
	stub := &enginetest.Stub{Outcome: engine.Failure(2)}
	svc := NewService(cfg, stub, logr.Discard())

	res := svc.Run(context.Background(), query("NYC"))

	assert.Equal(t, engine.KindEngineFailure, res.Outcome.Kind)
	assert.Equal(t, resultstore.StatusMissing, res.Status)
	assert.Equal(t, resultstore.NoDataMessage, res.Document["message"])

	latest, _ := svc.Latest()
	assert.JSONEq(t, `{"flights":["old"]}`, encode(t, latest))
}

func TestRunPerRequestIsolatesConcurrentSearches(t *testing.T) {
	cfg := engineConfig(t, config.IsolationPerRequest)
	stub := &enginetest.Stub{
		OnInvoke: func(inv engine.Invocation) {
			time.Sleep(5 * time.Millisecond)
			body := fmt.Sprintf(`{"source":%q}`, inv.Query.Source)
			_ = os.WriteFile(inv.OutputFile, []byte(body), 0o644)
		},
	}
	svc := NewService(cfg, stub, logr.Discard())

	var wg sync.WaitGroup
	results := make([]Result, 10)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = svc.Run(context.Background(), query(fmt.Sprintf("SRC%d", i)))
		}(i)
	}
	wg.Wait()

	for i, res := range results {
		require.Equal(t, resultstore.StatusOK, res.Status)
		assert.Equal(t, fmt.Sprintf("SRC%d", i), res.Document["source"])
	}
}

func TestRunSharedUsesSharedFile(t *testing.T) {
	cfg := engineConfig(t, config.IsolationShared)
	stub := &enginetest.Stub{Result: `{"flights":[]}`}
	svc := NewService(cfg, stub, logr.Discard())

	res := svc.Run(context.Background(), query("NYC"))

	require.Len(t, stub.Calls(), 1)
	assert.Equal(t, cfg.OutputFile, stub.Calls()[0].OutputFile)
	assert.JSONEq(t, `{"flights":[]}`, encode(t, res.Document))
}

func TestRunSharedFailureReturnsStaleResult(t *testing.T) {
	cfg := engineConfig(t, config.IsolationShared)
	require.NoError(t, os.WriteFile(cfg.OutputFile, []byte(`{"flights":["stale"]}`), 0o644))
	svc := NewService(cfg, &enginetest.Stub{Outcome: engine.Failure(1)}, logr.Discard())

	res := svc.Run(context.Background(), query("NYC"))

	assert.False(t, res.Outcome.Succeeded())
	assert.Equal(t, resultstore.StatusOK, res.Status)
	assert.JSONEq(t, `{"flights":["stale"]}`, encode(t, res.Document))
}

func TestRunSharedSerializesInvocations(t *testing.T) {
	cfg := engineConfig(t, config.IsolationShared)
	var inflight, peak int32
	stub := &enginetest.Stub{
		Result: `{"ok":true}`,
		OnInvoke: func(engine.Invocation) {
			n := atomic.AddInt32(&inflight, 1)
			for {
				p := atomic.LoadInt32(&peak)
				if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
					break
				}
			}
			time.Sleep(2 * time.Millisecond)
			atomic.AddInt32(&inflight, -1)
		},
	}
	svc := NewService(cfg, stub, logr.Discard())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			svc.Run(context.Background(), query("NYC"))
		}()
	}
	wg.Wait()

	assert.Len(t, stub.Calls(), 8)
	assert.Equal(t, int32(1), atomic.LoadInt32(&peak))
}

func TestLatestWaitsForSharedRun(t *testing.T) {
	cfg := engineConfig(t, config.IsolationShared)
	started := make(chan struct{})
	release := make(chan struct{})
	stub := &enginetest.Stub{
		Result: `{"flights":[{"id":1}]}`,
		OnInvoke: func(inv engine.Invocation) {
			_ = os.WriteFile(inv.OutputFile, []byte(`{"flights":[`), 0o644)
			close(started)
			<-release
		},
	}
	svc := NewService(cfg, stub, logr.Discard())

	done := make(chan struct{})
	go func() {
		defer close(done)
		svc.Run(context.Background(), query("NYC"))
	}()
	<-started

	type latest struct {
		doc    resultstore.Document
		status resultstore.Status
	}
	got := make(chan latest, 1)
	go func() {
		doc, status := svc.Latest()
		got <- latest{doc, status}
	}()

	select {
	case l := <-got:
		t.Fatalf("Latest returned during a run: %v %v", l.status, l.doc)
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	<-done
	l := <-got
	assert.Equal(t, resultstore.StatusOK, l.status)
	assert.JSONEq(t, `{"flights":[{"id":1}]}`, encode(t, l.doc))
}

func TestLatestWithoutResult(t *testing.T) {
	svc := NewService(engineConfig(t, config.IsolationPerRequest), &enginetest.Stub{}, logr.Discard())

	doc, status := svc.Latest()
	assert.Equal(t, resultstore.StatusMissing, status)
	assert.Equal(t, resultstore.NoDataMessage, doc["message"])
}
