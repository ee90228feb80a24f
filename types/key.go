//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package types

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

type Key int

// Keys
const (
	KeyUnsupported Key = iota
	KeyRune
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyBackspace
	KeyDelete
	KeyEnd
	KeyEnter
	KeyEsc
	KeyHome
	KeyPgdn
	KeyPgup
	KeyTab
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlG
	KeyCtrlH
	KeyCtrlI
	KeyCtrlJ
	KeyCtrlK
	KeyCtrlL
	KeyCtrlM
	KeyCtrlN
	KeyCtrlO
	KeyCtrlP
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyCtrlT
	KeyCtrlU
	KeyCtrlV
	KeyCtrlW
	KeyCtrlX
	KeyCtrlY
	KeyCtrlZ
)

type Modifier int

const (
	ModNone Modifier = 0
	ModAlt  Modifier = 1
)

// A KeyEvent is a single keystroke: either a rune (Key == KeyRune) or a named key.
type KeyEvent struct {
	Key Key
	Ch  rune
	Mod Modifier
}

var keyNames = map[Key]string{
	KeyArrowDown:  "down",
	KeyArrowLeft:  "left",
	KeyArrowRight: "right",
	KeyArrowUp:    "up",
	KeyBackspace:  "backspace",
	KeyDelete:     "delete",
	KeyEnd:        "end",
	KeyEnter:      "enter",
	KeyEsc:        "esc",
	KeyHome:       "home",
	KeyPgdn:       "pgdn",
	KeyPgup:       "pgup",
	KeyTab:        "tab",
}

// CtrlKey returns the named key for ctrl plus a letter, or KeyUnsupported.
func CtrlKey(c rune) Key {
	switch {
	case c >= 'a' && c <= 'z':
		return KeyCtrlA + Key(c-'a')
	case c >= 'A' && c <= 'Z':
		return KeyCtrlA + Key(c-'A')
	}
	return KeyUnsupported
}

func (k Key) String() string {
	if k >= KeyCtrlA && k <= KeyCtrlZ {
		return fmt.Sprintf("ctrl-%c", 'a'+rune(k-KeyCtrlA))
	}
	if name, ok := keyNames[k]; ok {
		return name
	}
	if k == KeyRune {
		return "rune"
	}
	return "unsupported"
}

func (ev KeyEvent) String() string {
	var s string
	if ev.Key == KeyRune {
		s = string(ev.Ch)
	} else {
		s = ev.Key.String()
	}
	if ev.Mod&ModAlt != 0 {
		s = "alt-" + s
	}
	return s
}

// ParseKey reads a key name such as "ctrl-q", "esc", "alt-x" or "q".
func ParseKey(name string) (KeyEvent, error) {
	var ev KeyEvent
	raw := strings.TrimSpace(name)
	if len(raw) > len("alt-") && strings.EqualFold(raw[:len("alt-")], "alt-") {
		ev.Mod = ModAlt
		raw = raw[len("alt-"):]
	}
	if r := []rune(raw); len(r) == 1 {
		ev.Key = KeyRune
		ev.Ch = r[0]
		return ev, nil
	}
	s := strings.ToLower(raw)
	if strings.HasPrefix(s, "ctrl-") {
		if letter := []rune(s[len("ctrl-"):]); len(letter) == 1 {
			if k := CtrlKey(letter[0]); k != KeyUnsupported {
				ev.Key = k
				return ev, nil
			}
		}
		return KeyEvent{}, errors.Errorf("unknown key %q", name)
	}
	for k, n := range keyNames {
		if n == s {
			ev.Key = k
			return ev, nil
		}
	}
	return KeyEvent{}, errors.Errorf("unknown key %q", name)
}

// Typeable reports whether a terminal can deliver ev. Tab and Enter arrive as
// the same bytes as ctrl-i and ctrl-m, and alt only combines with printable
// runes that do not start an escape sequence.
func Typeable(ev KeyEvent) bool {
	switch ev.Mod {
	case ModNone:
	case ModAlt:
		return ev.Key == KeyRune && printable(ev.Ch) && ev.Ch != '[' && ev.Ch != 'O'
	default:
		return false
	}
	switch ev.Key {
	case KeyUnsupported, KeyCtrlI, KeyCtrlM:
		return false
	case KeyRune:
		return printable(ev.Ch)
	}
	return true
}

func printable(c rune) bool {
	return c >= 0x20 && c != 0x7f && c != utf8.RuneError && utf8.ValidRune(c)
}
