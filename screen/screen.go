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
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	tilde "github.com/timburks/tilde/types"
)

// The Screen is the terminal session. It holds the terminal in raw mode from
// Open until Close and buffers everything written to it until Flush.
type Screen struct {
	in   *bufio.Reader
	out  *bufio.Writer
	size tilde.Size // size at open time
	raw  *rawMode
}

// Open puts the controlling terminal (stdin/stdout) into raw mode.
func Open() (*Screen, error) {
	return OpenFile(os.Stdin, os.Stdout)
}

// OpenFile puts the terminal behind in into raw mode and reads the size of out.
func OpenFile(in, out *os.File) (*Screen, error) {
	if !isatty.IsTerminal(in.Fd()) && !isatty.IsCygwinTerminal(in.Fd()) {
		return nil, initError(errNotTerminal, in.Name())
	}
	raw, err := enterRawMode(int(in.Fd()))
	if err != nil {
		return nil, initError(err, "enter raw mode")
	}
	cols, rows, err := term.GetSize(int(out.Fd()))
	if err != nil {
		raw.restore()
		return nil, initError(err, "query size")
	}
	s := New(in, out, tilde.Size{Rows: rows, Cols: cols})
	s.raw = raw
	return s, nil
}

// New creates a Screen over arbitrary streams without touching any terminal
// mode. The size is taken as given.
func New(in io.Reader, out io.Writer, size tilde.Size) *Screen {
	return &Screen{
		in:   bufio.NewReader(in),
		out:  bufio.NewWriter(out),
		size: size,
	}
}

func (s *Screen) Size() tilde.Size {
	return s.size
}

func (s *Screen) ClearScreen() {
	s.out.WriteString("\x1b[2J")
}

// CursorPosition moves the cursor to a 0-based row and column.
func (s *Screen) CursorPosition(row, col int) {
	fmt.Fprintf(s.out, "\x1b[%d;%dH", row+1, col+1)
}

// WriteLine writes text clipped to the screen width, then returns to column 0
// of the next line. Raw mode does not translate "\n" into "\r\n".
func (s *Screen) WriteLine(text string) {
	if s.size.Cols > 0 {
		text = runewidth.Truncate(text, s.size.Cols, "")
	}
	s.out.WriteString(text)
	s.out.WriteString("\r\n")
}

func (s *Screen) Flush() error {
	if err := s.out.Flush(); err != nil {
		return ioError("flush", err)
	}
	return nil
}

// ReadKey blocks until one key has been typed.
func (s *Screen) ReadKey() (tilde.KeyEvent, error) {
	for {
		ev, ok, err := decode(s.in)
		if err != nil {
			return tilde.KeyEvent{}, ioError("read", err)
		}
		if ok {
			return ev, nil
		}
	}
}

// Close restores the terminal mode saved by Open. Only the first call does
// anything; later calls return the same result.
func (s *Screen) Close() error {
	return s.raw.restore()
}
