package editor

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/mstrebkov/ledit/internal/textstat"
)

func (e *Editor) Render(s tcell.Screen) {
	w, h := s.Size()
	if w <= 0 || h <= 0 {
		return
	}

	statusY := h - 2
	cmdY := h - 1
	viewHeight := h - 2
	if h < 2 {
		statusY = h - 1
		cmdY = h - 1
	}
	if viewHeight < 0 {
		viewHeight = 0
	}
	e.viewHeight = viewHeight

	lines, curRow, curCol := e.layout()
	e.ensureCursorVisible(curRow, viewHeight)

	s.SetStyle(e.styleMain)
	s.Clear()

	for y := 0; y < viewHeight; y++ {
		lineIdx := e.scroll + y
		if lineIdx >= len(lines) {
			clearLine(s, y, w, e.styleMain)
			continue
		}
		e.drawLine(s, y, w, lines[lineIdx])
	}

	if statusY >= 0 {
		e.renderStatusline(s, w, statusY, curRow, curCol)
	}

	var cx, cy int
	cursorVisible := true
	if cmdY >= 0 {
		cmdCursor := e.renderCommandline(s, w, cmdY)
		if e.mode == ModeCommand {
			cx = cmdCursor
			cy = cmdY
		}
	}
	if e.mode != ModeCommand {
		cy = curRow - e.scroll
		if cy < 0 || cy >= viewHeight {
			cursorVisible = false
		}
		prefix := []rune(lines[curRow][:curCol])
		cx = visualCol(prefix, len(prefix), e.tabWidth)
		if cx >= w {
			cx = w - 1
		}
	}

	if !cursorVisible {
		s.HideCursor()
		s.Show()
		return
	}
	s.ShowCursor(cx, cy)
	s.Show()
}

func (e *Editor) drawLine(s tcell.Screen, y, w int, line string) {
	x := 0
	for _, r := range line {
		if x >= w {
			break
		}
		if r == '\t' {
			next := x + e.tabWidth - (x % e.tabWidth)
			for ; x < next && x < w; x++ {
				s.SetContent(x, y, ' ', nil, e.styleMain)
			}
			continue
		}
		s.SetContent(x, y, r, nil, e.styleMain)
		x++
	}
	for ; x < w; x++ {
		s.SetContent(x, y, ' ', nil, e.styleMain)
	}
}

func (e *Editor) renderStatusline(s tcell.Screen, w, y, curRow, curCol int) {
	name := e.filename
	if name == "" {
		name = "[No Name]"
	} else {
		name = filepath.Base(name)
	}
	dirty := ""
	if e.dirty {
		dirty = "*"
	}

	status := fmt.Sprintf(" %s%s ", name, dirty)
	if e.statusMessage != "" {
		status = fmt.Sprintf(" %s%s | %s ", name, dirty, e.statusMessage)
	}

	right := fmt.Sprintf(" Ln %d, Col %d | %d/%d", curRow+1, curCol+1, e.buf.Cursor(), e.buf.Len())
	if e.showStats {
		st := textstat.Count(e.buf.Text())
		right += fmt.Sprintf(" | %dw", st.Words)
	}
	if n := len(e.buf.Register()); n > 0 {
		right += fmt.Sprintf(" | reg %d", n)
	}
	right += " "

	line := composeStatusLine(status, right, w)
	for x, r := range line {
		if x >= w {
			break
		}
		s.SetContent(x, y, r, nil, e.styleStatus)
	}
}

// renderCommandline draws the command line and returns the screen
// column for the command cursor.
func (e *Editor) renderCommandline(s tcell.Screen, w, y int) int {
	clearLine(s, y, w, e.styleCommand)
	if e.mode != ModeCommand {
		return 0
	}
	line := append([]rune{':'}, e.cmd...)
	for x, r := range line {
		if x >= w {
			break
		}
		s.SetContent(x, y, r, nil, e.styleCommand)
	}
	cx := 1 + e.cmdCursor
	if cx >= w {
		cx = w - 1
	}
	return cx
}

func (e *Editor) ensureCursorVisible(row, viewHeight int) {
	if viewHeight <= 0 {
		return
	}
	if row < e.scroll-1 || row >= e.scroll+viewHeight+1 {
		e.scroll = row - viewHeight/2
		if e.scroll < 0 {
			e.scroll = 0
		}
		return
	}
	if row < e.scroll {
		e.scroll = row
		return
	}
	if row >= e.scroll+viewHeight {
		e.scroll = row - viewHeight + 1
	}
}

func clearLine(s tcell.Screen, y, w int, style tcell.Style) {
	for x := 0; x < w; x++ {
		s.SetContent(x, y, ' ', nil, style)
	}
}

func composeStatusLine(left, right string, width int) []rune {
	if width <= 0 {
		return nil
	}
	leftRunes := []rune(left)
	rightRunes := []rune(right)
	if len(leftRunes)+len(rightRunes) > width {
		if len(rightRunes) >= width {
			rightRunes = rightRunes[len(rightRunes)-width:]
			leftRunes = nil
		} else {
			leftRunes = leftRunes[:width-len(rightRunes)]
		}
	}
	spaceCount := width - len(leftRunes) - len(rightRunes)
	if spaceCount < 0 {
		spaceCount = 0
	}
	line := make([]rune, 0, width)
	line = append(line, leftRunes...)
	for i := 0; i < spaceCount; i++ {
		line = append(line, ' ')
	}
	line = append(line, rightRunes...)
	return line
}

func parseColor(name string, fallback tcell.Color) tcell.Color {
	name = strings.TrimSpace(name)
	if name == "" {
		return fallback
	}
	if strings.HasPrefix(name, "#") && len(name) == 7 {
		r, err1 := strconv.ParseInt(name[1:3], 16, 32)
		g, err2 := strconv.ParseInt(name[3:5], 16, 32)
		b, err3 := strconv.ParseInt(name[5:7], 16, 32)
		if err1 == nil && err2 == nil && err3 == nil {
			return tcell.NewRGBColor(int32(r), int32(g), int32(b))
		}
		return fallback
	}
	name = strings.ToLower(name)
	if name == "default" {
		return tcell.ColorDefault
	}
	c := tcell.GetColor(name)
	if c == tcell.ColorDefault {
		return fallback
	}
	return c
}

func visualCol(line []rune, logicalCol int, tabWidth int) int {
	if tabWidth < 1 {
		tabWidth = 1
	}
	if logicalCol > len(line) {
		logicalCol = len(line)
	}
	col := 0
	for i := 0; i < logicalCol; i++ {
		if line[i] == '\t' {
			col += tabWidth - (col % tabWidth)
			continue
		}
		col++
	}
	return col
}
