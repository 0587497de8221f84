// Package main is beanview, a small terminal viewer for beancount
// files. It renders a buffer with fold levels in a gutter, lets the
// cursor move and edit posting lines, and realigns amounts as you
// type. It serves as a live harness for the alignment pipeline.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/beanalign/internal/config"
	"github.com/dshills/beanalign/internal/engine/buffer"
	"github.com/dshills/beanalign/internal/fold"
	"github.com/dshills/beanalign/internal/format"
)

func main() {
	os.Exit(run())
}

func run() int {
	var configPath string
	var column int
	flag.StringVar(&configPath, "c", "", "Path to configuration file")
	flag.IntVar(&column, "col", 0, "Separator column (overrides config)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "beanview - interactive beancount alignment preview\n\n")
		fmt.Fprintf(os.Stderr, "Usage: beanview [options] file\n\n")
		fmt.Fprintf(os.Stderr, "Keys: arrows move, type to edit, backspace deletes,\n")
		fmt.Fprintf(os.Stderr, "      Ctrl-F formats the buffer, Esc or Ctrl-Q quits.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		return 1
	}
	path := flag.Arg(0)

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if column > 0 {
		cfg.SeparatorColumn = column
	}

	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	buf, err := buffer.FromReader(f)
	f.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init screen: %v\n", err)
		return 1
	}
	defer screen.Fini()

	v := &view{
		screen: screen,
		buf:    buf,
		folds:  fold.NewCache(buf),
		opts: format.Options{
			SeparatorColumn: cfg.SeparatorColumn,
			FixedCJKWidth:   cfg.FixedCJKWidth,
		},
		name: path,
	}
	v.loop()
	return 0
}

// loop runs the event loop until quit.
func (v *view) loop() {
	for {
		v.draw()
		ev := v.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			v.screen.Sync()
		case *tcell.EventKey:
			if !v.handleKey(ev) {
				return
			}
		}
	}
}

// handleKey processes one key event; returns false to quit.
func (v *view) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlQ:
		return false
	case tcell.KeyUp:
		v.moveCursor(-1, 0)
	case tcell.KeyDown:
		v.moveCursor(1, 0)
	case tcell.KeyLeft:
		v.moveByRune(-1)
	case tcell.KeyRight:
		v.moveByRune(1)
	case tcell.KeyCtrlF:
		format.FormatBuffer(v.buf, v.opts)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		v.deleteRune()
		v.realign()
	case tcell.KeyEnter:
		v.realign()
	case tcell.KeyRune:
		v.insertRune(ev.Rune())
		v.realign()
	}
	return true
}

// realign runs the interactive single-line alignment on the cursor
// line; cursor preservation keeps the caret on the same character.
func (v *view) realign() {
	line, _ := v.buf.CursorPosition()
	format.AlignLineAt(v.buf, line, v.opts)
}
