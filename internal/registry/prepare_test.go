package registry_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/toybox/internal/assets"
	"github.com/vovakirdan/toybox/internal/core"
	_ "github.com/vovakirdan/toybox/internal/games/invaders"
	_ "github.com/vovakirdan/toybox/internal/games/shooter"
	"github.com/vovakirdan/toybox/internal/registry"
)

// Sessions of the SSH server and the HTTP API prepare games concurrently
// against one shared store.
func TestPrepareSharesStoreConcurrently(t *testing.T) {
	store := assets.New()
	store.AddBoard("ship.txt", []string{"=}>"})
	opts := registry.Options{Assets: store}

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := "shooter"
			if i%2 == 1 {
				id = "invaders"
			}
			g, err := registry.Create(id)
			if !assert.NoError(t, err) {
				return
			}
			assert.NoError(t, registry.Prepare(g, opts))
			g.Reset(core.RuntimeConfig{Seed: int64(i), ScreenW: 80, ScreenH: 24, TickRate: 60})
			g.Step(core.NewInputFrame(core.ActionFire))
			g.Render(core.NewScreen(80, 24))
		}()
	}
	wg.Wait()

	require.Equal(t, 1, store.Len())
	assert.Equal(t, []string{"ship.txt"}, store.Names())
}
