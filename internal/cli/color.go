// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// ErrColor indicates a color that is neither a known name nor #rrggbb.
var ErrColor = errors.New("unknown color")

// ParseColor accepts a tcell color name ("white", "darkorange") or a
// hex triplet ("#ff8800", "#f80").
func ParseColor(s string) (tcell.Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if strings.HasPrefix(name, "#") {
		c, err := colorful.Hex(name)
		if err != nil {
			return tcell.ColorDefault, fmt.Errorf("%q: %w", s, ErrColor)
		}
		r, g, b := c.RGB255()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b)), nil
	}
	if c, ok := tcell.ColorNames[name]; ok {
		return c, nil
	}

	return tcell.ColorDefault, fmt.Errorf("%q: %w", s, ErrColor)
}
