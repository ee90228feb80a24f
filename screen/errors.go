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
	"github.com/pkg/errors"
)

// An InitError means the terminal could not be put into raw mode.
type InitError struct {
	err error
}

func initError(err error, message string) error {
	return &InitError{err: errors.Wrap(err, message)}
}

var errNotTerminal = errors.New("not a terminal")

func (e *InitError) Error() string { return "terminal init: " + e.err.Error() }
func (e *InitError) Cause() error  { return e.err }
func (e *InitError) Unwrap() error { return e.err }

// An IOError is a failed read, write or flush against the terminal.
type IOError struct {
	Op  string // "read" or "flush"
	err error
}

func ioError(op string, err error) error {
	return &IOError{Op: op, err: errors.WithStack(err)}
}

func (e *IOError) Error() string { return "terminal " + e.Op + ": " + e.err.Error() }
func (e *IOError) Cause() error  { return e.err }
func (e *IOError) Unwrap() error { return e.err }
