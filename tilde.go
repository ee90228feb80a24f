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
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/timburks/tilde/config"
	"github.com/timburks/tilde/editor"
	"github.com/timburks/tilde/screen"
	tilde "github.com/timburks/tilde/types"
)

func main() {
	os.Exit(run())
}

func run() int {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	// Open a log file.
	f, err := os.OpenFile(filepath.Join(home, ".tildelog"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		log.SetOutput(io.Discard)
	} else {
		log.SetOutput(f)
		defer f.Close()
	}

	c, err := config.Load(filepath.Join(home, ".tilde.yaml"))
	if err != nil {
		return fail(os.Stderr, err)
	}

	// The screen holds the terminal in raw mode until it is closed.
	s, err := screen.Open()
	if err != nil {
		return fail(os.Stderr, err)
	}

	// Put the terminal back if we are killed while waiting for a key.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGTERM, syscall.SIGHUP)
	go func() {
		sig := <-signals
		s.Close()
		log.Printf("exiting on %v", sig)
		os.Exit(1)
	}()

	return edit(s, c, os.Stderr)
}

// edit runs an editor on s until it quits or fails. s is closed on return.
func edit(s tilde.Screen, c *config.Config, stderr io.Writer) int {
	// The editor owns the screen from here on.
	e, err := editor.NewEditor(s, c)
	if err != nil {
		s.Close()
		return fail(stderr, err)
	}
	defer e.Close()

	if err := e.Run(); err != nil {
		return die(s, stderr, err)
	}
	return 0
}

// die clears away whatever was drawn, restores the terminal and reports err.
func die(s tilde.Screen, stderr io.Writer, err error) int {
	s.ClearScreen()
	s.CursorPosition(0, 0)
	s.Flush()
	s.Close()
	return fail(stderr, err)
}

func fail(stderr io.Writer, err error) int {
	log.Printf("%+v", err)
	fmt.Fprintf(stderr, "tilde: %v\n", err)
	return 1
}
