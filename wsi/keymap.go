package wsi

import "github.com/go-gl/glfw/v3.3/glfw"

// Key is the type of keyboard keys, independent of the underlying
// platform's own key codes.
type Key int

// Keyboard keys.
const (
	KeyUnknown Key = iota
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeySpace
	KeyEnter
	KeyEsc
	KeyTab
	KeyBackspace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

var keymap = map[glfw.Key]Key{
	glfw.KeyA: KeyA, glfw.KeyB: KeyB, glfw.KeyC: KeyC, glfw.KeyD: KeyD,
	glfw.KeyE: KeyE, glfw.KeyF: KeyF, glfw.KeyG: KeyG, glfw.KeyH: KeyH,
	glfw.KeyI: KeyI, glfw.KeyJ: KeyJ, glfw.KeyK: KeyK, glfw.KeyL: KeyL,
	glfw.KeyM: KeyM, glfw.KeyN: KeyN, glfw.KeyO: KeyO, glfw.KeyP: KeyP,
	glfw.KeyQ: KeyQ, glfw.KeyR: KeyR, glfw.KeyS: KeyS, glfw.KeyT: KeyT,
	glfw.KeyU: KeyU, glfw.KeyV: KeyV, glfw.KeyW: KeyW, glfw.KeyX: KeyX,
	glfw.KeyY: KeyY, glfw.KeyZ: KeyZ,
	glfw.Key0: Key0, glfw.Key1: Key1, glfw.Key2: Key2, glfw.Key3: Key3,
	glfw.Key4: Key4, glfw.Key5: Key5, glfw.Key6: Key6, glfw.Key7: Key7,
	glfw.Key8: Key8, glfw.Key9: Key9,
	glfw.KeySpace: KeySpace, glfw.KeyEnter: KeyEnter, glfw.KeyEscape: KeyEsc,
	glfw.KeyTab: KeyTab, glfw.KeyBackspace: KeyBackspace,
	glfw.KeyUp: KeyUp, glfw.KeyDown: KeyDown, glfw.KeyLeft: KeyLeft, glfw.KeyRight: KeyRight,
}

func keyOf(code glfw.Key) Key {
	if k, ok := keymap[code]; ok {
		return k
	}
	return KeyUnknown
}

// Modifier is the type of modifier key flags.
type Modifier int

// Modifier flags.
const (
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
	ModSuper
)

func modifierOf(mods glfw.ModifierKey) Modifier {
	var m Modifier
	if mods&glfw.ModShift != 0 {
		m |= ModShift
	}
	if mods&glfw.ModControl != 0 {
		m |= ModCtrl
	}
	if mods&glfw.ModAlt != 0 {
		m |= ModAlt
	}
	if mods&glfw.ModSuper != 0 {
		m |= ModSuper
	}
	return m
}

// Button is the type of pointer buttons.
type Button int

// Pointer buttons.
const (
	BtnUnknown Button = iota
	BtnLeft
	BtnRight
	BtnMiddle
)

func buttonOf(b glfw.MouseButton) Button {
	switch b {
	case glfw.MouseButtonLeft:
		return BtnLeft
	case glfw.MouseButtonRight:
		return BtnRight
	case glfw.MouseButtonMiddle:
		return BtnMiddle
	}
	return BtnUnknown
}
