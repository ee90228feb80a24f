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
package screen

import (
	"bufio"
	"unicode/utf8"

	tilde "github.com/timburks/tilde/types"
)

const (
	esc       = 0x1b
	backspace = 0x7f
	maxParams = 16
)

// decode reads one keystroke. ok is false when the bytes read were not a key
// we understand; they have been consumed and the caller should read again.
func decode(r *bufio.Reader) (ev tilde.KeyEvent, ok bool, err error) {
	c, size, err := r.ReadRune()
	if err != nil {
		return ev, false, err
	}
	if c == utf8.RuneError && size == 1 {
		return ev, false, nil
	}
	switch {
	case c == esc:
		if r.Buffered() == 0 {
			return tilde.KeyEvent{Key: tilde.KeyEsc}, true, nil
		}
		return decodeEscape(r)
	case c == '\r':
		return tilde.KeyEvent{Key: tilde.KeyEnter}, true, nil
	case c == '\t':
		return tilde.KeyEvent{Key: tilde.KeyTab}, true, nil
	case c == backspace:
		return tilde.KeyEvent{Key: tilde.KeyBackspace}, true, nil
	case c >= 0x01 && c <= 0x1a:
		return tilde.KeyEvent{Key: tilde.CtrlKey('a' + c - 1)}, true, nil
	case c < 0x20:
		return ev, false, nil
	}
	return tilde.KeyEvent{Key: tilde.KeyRune, Ch: c}, true, nil
}

// decodeEscape handles the bytes that arrived together with an ESC.
func decodeEscape(r *bufio.Reader) (tilde.KeyEvent, bool, error) {
	c, _, err := r.ReadRune()
	if err != nil {
		return tilde.KeyEvent{}, false, err
	}
	switch {
	case c == '[' || c == 'O':
		return decodeSequence(r)
	case c >= 0x20 && c != backspace && c != utf8.RuneError:
		return tilde.KeyEvent{Key: tilde.KeyRune, Ch: c, Mod: tilde.ModAlt}, true, nil
	}
	// ESC followed by another control key: report the ESC and leave the rest.
	if err := r.UnreadRune(); err != nil {
		return tilde.KeyEvent{}, false, err
	}
	return tilde.KeyEvent{Key: tilde.KeyEsc}, true, nil
}

// decodeSequence reads the parameters and final byte of a CSI or SS3 sequence.
func decodeSequence(r *bufio.Reader) (tilde.KeyEvent, bool, error) {
	var params []byte
	var final byte
	for final == 0 {
		if r.Buffered() == 0 || len(params) > maxParams {
			// Truncated or runaway sequence. A sequence split across two
			// reads loses its prefix here and its tail arrives as plain runes.
			return tilde.KeyEvent{}, false, nil
		}
		b, err := r.ReadByte()
		if err != nil {
			return tilde.KeyEvent{}, false, err
		}
		if b >= 0x40 && b <= 0x7e {
			final = b
		} else {
			params = append(params, b)
		}
	}
	var key tilde.Key
	switch final {
	case 'A':
		key = tilde.KeyArrowUp
	case 'B':
		key = tilde.KeyArrowDown
	case 'C':
		key = tilde.KeyArrowRight
	case 'D':
		key = tilde.KeyArrowLeft
	case 'H':
		key = tilde.KeyHome
	case 'F':
		key = tilde.KeyEnd
	case '~':
		switch string(params) {
		case "1", "7":
			key = tilde.KeyHome
		case "3":
			key = tilde.KeyDelete
		case "4", "8":
			key = tilde.KeyEnd
		case "5":
			key = tilde.KeyPgup
		case "6":
			key = tilde.KeyPgdn
		}
	}
	if key == tilde.KeyUnsupported {
		return tilde.KeyEvent{}, false, nil
	}
	return tilde.KeyEvent{Key: key}, true, nil
}
