package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// progress draws a single-line bar on stderr when it is a terminal and
// stays silent otherwise.
type progress struct {
	w       io.Writer
	label   string
	width   int
	enabled bool
	last    int
}

func newProgress(label string) *progress {
	fd := int(os.Stderr.Fd())
	if !term.IsTerminal(fd) {
		return &progress{}
	}

	width := 40
	if cols, _, err := term.GetSize(fd); err == nil {
		width = max(min(cols-len(label)-10, 60), 10)
	}

	return &progress{w: os.Stderr, label: label, width: width, enabled: true, last: -1}
}

func (p *progress) update(done, total int) {
	if p == nil || !p.enabled || total <= 0 {
		return
	}

	filled := done * p.width / total
	if filled == p.last {
		return
	}

	p.last = filled
	fmt.Fprintf(p.w, "\r%s [%s%s] %3d%%", p.label,
		strings.Repeat("#", filled), strings.Repeat(" ", p.width-filled), done*100/total)
}

func (p *progress) done() {
	if p == nil || !p.enabled {
		return
	}

	fmt.Fprint(p.w, "\r\033[K")
}
