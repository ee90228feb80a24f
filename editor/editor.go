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
package editor

import (
	"log"

	"github.com/timburks/tilde/config"
	tilde "github.com/timburks/tilde/types"
)

// The Editor draws on a Screen and reads keys from it until it is told to quit.
// It owns the Screen and closes it in Close.
type Editor struct {
	screen      tilde.Screen
	mode        int            // ModeRunning until the quit key is read
	cursor      tilde.Point    // where the cursor rests after a refresh
	quit        tilde.KeyEvent // key that ends the session
	placeholder string         // drawn at the start of each empty row
	farewell    string         // written once after quitting
}

func NewEditor(s tilde.Screen, c *config.Config) (*Editor, error) {
	if c == nil {
		c = config.Default()
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	quit, _ := c.Quit()
	return &Editor{
		screen:      s,
		mode:        tilde.ModeRunning,
		quit:        quit,
		placeholder: c.Placeholder,
		farewell:    c.Farewell,
	}, nil
}

func (e *Editor) ShouldQuit() bool {
	return e.mode == tilde.ModeQuit
}

// Run refreshes the screen and handles one key at a time until the quit key
// is read. The first error ends the loop and is returned as is.
func (e *Editor) Run() error {
	for {
		if err := e.RefreshScreen(); err != nil {
			return err
		}
		if e.ShouldQuit() {
			return nil
		}
		if err := e.ProcessKeypress(); err != nil {
			return err
		}
	}
}

// RefreshScreen redraws the whole screen and flushes it. After quitting it
// only writes the farewell line.
func (e *Editor) RefreshScreen() error {
	e.screen.ClearScreen()
	e.screen.CursorPosition(0, 0)
	if e.ShouldQuit() {
		e.screen.WriteLine(e.farewell)
	} else {
		e.drawRows()
		e.screen.CursorPosition(e.cursor.Row, e.cursor.Col)
	}
	return e.screen.Flush()
}

// ProcessKeypress reads a single key. Only the quit key does anything.
func (e *Editor) ProcessKeypress() error {
	ev, err := e.screen.ReadKey()
	if err != nil {
		return err
	}
	if ev == e.quit {
		log.Printf("quit: %s", ev)
		e.mode = tilde.ModeQuit
	}
	return nil
}

// drawRows fills every row but the last with the placeholder.
// The last row is kept free for a status line.
func (e *Editor) drawRows() {
	for i := 0; i < e.screen.Size().Rows-1; i++ {
		e.screen.WriteLine(e.placeholder)
	}
}

func (e *Editor) Close() error {
	return e.screen.Close()
}
