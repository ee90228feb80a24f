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

// Editor modes
const (
	ModeRunning = 0
	ModeQuit    = 9999
)

type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

// Screen is the terminal session that an editor draws on and reads keys from.
// Output is buffered until Flush.
type Screen interface {
	Size() Size
	ClearScreen()
	CursorPosition(row, col int)
	WriteLine(text string)
	Flush() error
	ReadKey() (KeyEvent, error)
	Close() error
}
