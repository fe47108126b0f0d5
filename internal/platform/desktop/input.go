package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// simKeys lists the keys that hold each simulation action.
var simKeys = map[core.Action][]ebiten.Key{
	core.ActionLeft:    {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.ActionRight:   {ebiten.KeyArrowRight, ebiten.KeyD},
	core.ActionJump:    {ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW},
	core.ActionPause:   {ebiten.KeyP},
	core.ActionRestart: {ebiten.KeyR},
}

// Command keys, acted on when first pressed.
var (
	startKeys = []ebiten.Key{ebiten.KeyEnter}
	helpKeys  = []ebiten.Key{ebiten.KeyF1, ebiten.KeyH}
	menuKeys  = []ebiten.Key{ebiten.KeyB}
	quitKeys  = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}
)

// heldFrame builds the held set from a key state query. Desktop keyboards
// report real key state, so no hold window is needed.
func heldFrame(pressed func(ebiten.Key) bool) core.InputFrame {
	f := core.NewInputFrame()
	for a, keys := range simKeys {
		if anyKey(keys, pressed) {
			f.Set(a)
		}
	}
	return f
}

func anyKey(keys []ebiten.Key, pressed func(ebiten.Key) bool) bool {
	for _, k := range keys {
		if pressed(k) {
			return true
		}
	}
	return false
}
