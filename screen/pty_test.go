//go:build linux

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
	"os"
	"testing"

	"github.com/creack/pty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	tilde "github.com/timburks/tilde/types"
)

func openPty(t *testing.T) (ptmx, tty *os.File) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("no pty available: %v", err)
	}
	t.Cleanup(func() {
		tty.Close()
		ptmx.Close()
	})
	require.NoError(t, pty.Setsize(ptmx, &pty.Winsize{Rows: 24, Cols: 80}))
	return ptmx, tty
}

func termios(t *testing.T, f *os.File) unix.Termios {
	tio, err := unix.IoctlGetTermios(int(f.Fd()), unix.TCGETS)
	require.NoError(t, err)
	return *tio
}

func TestRawModeIsRestored(t *testing.T) {
	_, tty := openPty(t)
	before := termios(t, tty)
	require.NotZero(t, before.Lflag&unix.ECHO)
	require.NotZero(t, before.Lflag&unix.ICANON)

	s, err := OpenFile(tty, tty)
	require.NoError(t, err)
	raw := termios(t, tty)
	assert.Zero(t, raw.Lflag&unix.ECHO)
	assert.Zero(t, raw.Lflag&unix.ICANON)

	require.NoError(t, s.Close())
	assert.Equal(t, before, termios(t, tty))

	// a second release must not touch the terminal again
	require.NoError(t, unix.IoctlSetTermios(int(tty.Fd()), unix.TCSETS, &raw))
	require.NoError(t, s.Close())
	assert.Equal(t, raw, termios(t, tty))
}

func TestOpenFileReadsSize(t *testing.T) {
	_, tty := openPty(t)
	s, err := OpenFile(tty, tty)
	require.NoError(t, err)
	defer s.Close()
	assert.Equal(t, tilde.Size{Rows: 24, Cols: 80}, s.Size())
}

func TestPtyRoundTrip(t *testing.T) {
	ptmx, tty := openPty(t)
	s, err := OpenFile(tty, tty)
	require.NoError(t, err)
	defer s.Close()

	_, err = ptmx.Write([]byte("x\x11"))
	require.NoError(t, err)
	ev, err := s.ReadKey()
	require.NoError(t, err)
	assert.Equal(t, tilde.KeyEvent{Key: tilde.KeyRune, Ch: 'x'}, ev)
	ev, err = s.ReadKey()
	require.NoError(t, err)
	assert.Equal(t, tilde.KeyEvent{Key: tilde.KeyCtrlQ}, ev)

	s.ClearScreen()
	s.CursorPosition(0, 0)
	require.NoError(t, s.Flush())
	want := "\x1b[2J\x1b[1;1H"
	got := make([]byte, 0, len(want))
	buf := make([]byte, 64)
	for len(got) < len(want) {
		n, err := ptmx.Read(buf)
		require.NoError(t, err)
		got = append(got, buf[:n]...)
	}
	assert.Equal(t, want, string(got))
}
