package assets

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

var testSprites = map[string][]string{
	"ship.txt":   {"=]>"},
	"bullet.txt": {"-"},
}

func TestSheetFallsBack(t *testing.T) {
	sh := NewSheet(nil, testSprites)

	assert.Equal(t, []string{"=]>"}, sh.Sprite("ship.txt"))
	assert.Equal(t, []string{"-"}, sh.Sprite("bullet.txt"))
	assert.True(t, sh.Handle("ship.txt").Valid())
	assert.Nil(t, sh.Sprite("boss.txt"))
	assert.Nil(t, sh.Rows(Handle(99)))
}

func TestSheetPrefersStoreBoards(t *testing.T) {
	s := New()
	s.AddBoard("ship.txt", []string{"<#>"})
	s.AddSound("bullet.txt", []byte("RIFF"))

	sh := NewSheet(s, testSprites)

	assert.Equal(t, []string{"<#>"}, sh.Sprite("ship.txt"))
	assert.Equal(t, []string{"-"}, sh.Sprite("bullet.txt"), "wrong kind keeps the fallback")
	assert.Equal(t, 2, s.Len())
}

func TestSheetLeavesStoreUntouched(t *testing.T) {
	s := New()
	s.AddBoard("ship.txt", []string{"<#>"})

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sh := NewSheet(s, testSprites)
			assert.Equal(t, []string{"<#>"}, sh.Sprite("ship.txt"))
		}()
	}
	wg.Wait()

	assert.Equal(t, []string{"ship.txt"}, s.Names())
}
