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
package config

import (
	"os"

	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	tilde "github.com/timburks/tilde/types"
)

// Config holds the user's settings. Every field has a default.
type Config struct {
	Placeholder string `yaml:"placeholder"` // drawn on rows with no content
	Farewell    string `yaml:"farewell"`    // printed after quitting
	QuitKey     string `yaml:"quit_key"`
}

func Default() *Config {
	return &Config{
		Placeholder: "~",
		Farewell:    "Goodbye.",
		QuitKey:     "ctrl-q",
	}
}

// Load reads a YAML settings file over the defaults. A missing file is not an
// error.
func Load(path string) (*Config, error) {
	c := Default()
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return c, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	if err := c.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid %s", path)
	}
	return c, nil
}

func (c *Config) Validate() error {
	if runewidth.StringWidth(c.Placeholder) != 1 {
		return errors.Errorf("placeholder %q must be one cell wide", c.Placeholder)
	}
	quit, err := c.Quit()
	if err != nil {
		return err
	}
	if !tilde.Typeable(quit) {
		return errors.Errorf("quit key %q cannot be typed", c.QuitKey)
	}
	return nil
}

// Quit returns the key that quits the editor.
func (c *Config) Quit() (tilde.KeyEvent, error) {
	return tilde.ParseKey(c.QuitKey)
}
