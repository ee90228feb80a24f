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
	"sync"

	"golang.org/x/term"
)

// rawMode holds the terminal state saved when raw mode was entered.
// restore puts it back exactly once.
type rawMode struct {
	fd    int
	state *term.State
	once  sync.Once
	err   error
}

func enterRawMode(fd int) (*rawMode, error) {
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return &rawMode{fd: fd, state: state}, nil
}

func (r *rawMode) restore() error {
	if r == nil {
		return nil
	}
	r.once.Do(func() {
		r.err = term.Restore(r.fd, r.state)
	})
	return r.err
}
