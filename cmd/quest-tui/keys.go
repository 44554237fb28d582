package main

import (
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Terminals report key presses and auto-repeats but never releases. A key
// counts as held until holdTimeout passes without a repeat.
const holdTimeout = 150 * time.Millisecond

var runeCodes = map[rune]string{
	'w': "KeyW",
	'a': "KeyA",
	's': "KeyS",
	'd': "KeyD",
}

const sprintCode = "ShiftLeft"

var arrowCodes = map[tcell.Key]string{
	tcell.KeyUp:    "ArrowUp",
	tcell.KeyDown:  "ArrowDown",
	tcell.KeyLeft:  "ArrowLeft",
	tcell.KeyRight: "ArrowRight",
}

type KeyState struct {
	held map[string]time.Time
}

func NewKeyState() *KeyState {
	return &KeyState{held: make(map[string]time.Time)}
}

// Press records a key press and returns the codes that just went down.
// Capital letters also hold sprint.
func (k *KeyState) Press(r rune, now time.Time) []string {
	code, ok := runeCodes[unicode.ToLower(r)]
	if !ok {
		return nil
	}
	codes := []string{code}
	if unicode.IsUpper(r) {
		codes = append(codes, sprintCode)
	}

	return k.hold(now, codes...)
}

// PressCode is Press for keys that arrive as named keys (arrows).
func (k *KeyState) PressCode(code string, now time.Time) []string {
	return k.hold(now, code)
}

func (k *KeyState) hold(now time.Time, codes ...string) []string {
	var down []string
	for _, c := range codes {
		if _, held := k.held[c]; !held {
			down = append(down, c)
		}
		k.held[c] = now
	}
	return down
}

// Expired releases every key not repeated within holdTimeout.
func (k *KeyState) Expired(now time.Time) []string {
	var up []string
	for code, at := range k.held {
		if now.Sub(at) >= holdTimeout {
			up = append(up, code)
			delete(k.held, code)
		}
	}
	return up
}
