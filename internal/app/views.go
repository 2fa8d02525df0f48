// SPDX-License-Identifier: MIT

package app

import (
	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/blockgrid/term"
)

// hintStyle is used for the help line under the glyphs.
var hintStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)

// show centers lines on s, optionally framed, with hint one row below.
func show(s tcell.Screen, lines [][]term.Cell, framed bool, hint string) {
	w, h := term.Extent(lines)
	x, y := term.Center(s, w, h)
	term.Draw(s, x, y, lines)
	if framed {
		term.Frame(s, x, y, w, h, tcell.StyleDefault)
	}
	if hint != "" {
		term.Text(s, x, y+h+1, hint, hintStyle)
	}
}

// Sequence shows a fixed glyph text in a frame.
type Sequence struct {
	Text string
}

// Draw implements View.
func (v *Sequence) Draw(a *App, s tcell.Screen) error {
	lines, err := a.Line().Text(v.Text).Build()
	if err != nil {
		return err
	}
	show(s, lines, true, "q quit")

	return nil
}

// HandleKey implements View; the sequence does not react to keys.
func (v *Sequence) HandleKey(*tcell.EventKey) bool {
	return false
}

// Counter shows a number that grows by one per key press.
type Counter struct {
	Value uint64
}

// Draw implements View.
func (v *Counter) Draw(a *App, s tcell.Screen) error {
	lines, err := a.Line().Number(v.Value).Build()
	if err != nil {
		return err
	}
	show(s, lines, false, "a increment · r reset · q quit")

	return nil
}

// HandleKey implements View: 'a', '+' and space increment, 'r' resets.
// The counter stops at the largest uint64 instead of wrapping.
func (v *Counter) HandleKey(ev *tcell.EventKey) bool {
	if ev.Key() != tcell.KeyRune {
		return false
	}
	switch ev.Rune() {
	case 'a', 'A', '+', ' ':
		if v.Value == ^uint64(0) {
			return false
		}
		v.Value++
	case 'r', 'R':
		v.Value = 0
	default:
		return false
	}

	return true
}
