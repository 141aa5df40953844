package model

import (
	"fmt"
	"io"
	"os"
	"os/exec"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	macosClearCmd = "clear"
)

// Renderer receives one call per live cell; dead cells draw nothing
type Renderer interface {
	DrawCell(x, y int)
}

// TerminalRenderer implements basic terminal rendering for headless runs
type TerminalRenderer struct {
	out    io.Writer
	width  int
	height int
	frame  []bool
}

// NewTerminalRenderer creates a renderer for a width x height board writing to out
func NewTerminalRenderer(out io.Writer, width, height int) *TerminalRenderer {
	return &TerminalRenderer{
		out:    out,
		width:  width,
		height: height,
		frame:  make([]bool, width*height),
	}
}

// DrawCell marks a cell alive in the pending frame
func (r *TerminalRenderer) DrawCell(x, y int) {
	if x >= 0 && x < r.width && y >= 0 && y < r.height {
		r.frame[y*r.width+x] = true
	}
}

// Display renders the simulator to the terminal and resets the pending frame
func (r *TerminalRenderer) Display(s *Simulator) error {
	s.Render(r)
	for y := range r.height {
		for x := range r.width {
			cell := gridPosEmpty
			if r.frame[y*r.width+x] {
				cell = gridPosBlock
			}
			if _, err := io.WriteString(r.out, cell); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(r.out); err != nil {
			return err
		}
	}
	clear(r.frame)
	return nil
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(macosClearCmd)
	cmd.Stdout = os.Stdout
	if err := cmd.Run(); err != nil {
		fmt.Println("Error clearing terminal:", err)
	}
}
