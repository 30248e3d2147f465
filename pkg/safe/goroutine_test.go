package safe

import (
	"sync"
	"testing"

	"github.com/careconnect-hq/careconnect/pkg/log"
)

func TestMain(m *testing.M) {
	log.MustInit(log.SetDefaults())
	m.Run()
}

func TestDoRecoversFromPanic(t *testing.T) {
	// must not propagate the panic
	Do(func() {
		panic("boom")
	})
}

func TestGoRunsFunction(t *testing.T) {
	var wg sync.WaitGroup
	wg.Add(1)
	ran := false
	Go(func() {
		ran = true
		wg.Done()
	})
	wg.Wait()
	if !ran {
		t.Error("expected goroutine to run")
	}
}
