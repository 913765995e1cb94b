package viewer

import (
	"bank-interior/core"
)

// KeyBindings maps number keys to the view presets and R to a camera reset.
type KeyBindings struct {
	Views map[int]string
	Reset int
}

func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Views: map[int]string{
			core.Key1: ViewTop,
			core.Key2: ViewSide,
			core.Key3: ViewIso,
		},
		Reset: core.KeyR,
	}
}

// Handle applies the binding for key, if any. It reports whether the key
// was bound.
func (kb KeyBindings) Handle(sc *SceneContext, key int) bool {
	if key == kb.Reset {
		sc.ResetCamera()
		return true
	}
	name, ok := kb.Views[key]
	if !ok {
		return false
	}
	if err := sc.SetView(name); err != nil {
		sc.logger.Warn("bad key binding", "key", key, "err", err)
	}
	return true
}
