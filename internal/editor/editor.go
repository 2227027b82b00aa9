package editor

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/mstrebkov/ledit/internal/buffer"
	"github.com/mstrebkov/ledit/internal/config"
	"github.com/mstrebkov/ledit/internal/logger"
	"github.com/mstrebkov/ledit/internal/session"
	"github.com/mstrebkov/ledit/internal/textstat"
)

type Mode int

const (
	ModeEdit Mode = iota
	ModeCommand
)

const (
	actionMoveLeft     = "move_left"
	actionMoveRight    = "move_right"
	actionMoveUp       = "move_up"
	actionMoveDown     = "move_down"
	actionPageUp       = "page_up"
	actionPageDown     = "page_down"
	actionWordLeft     = "word_left"
	actionWordRight    = "word_right"
	actionMoveStart    = "move_start"
	actionMoveEnd      = "move_end"
	actionBackspace    = "backspace"
	actionDeleteChar   = "delete_char"
	actionDeleteWord   = "delete_word"
	actionCopyWord     = "copy_word"
	actionPaste        = "paste"
	actionNewline      = "newline"
	actionInsertTab    = "insert_tab"
	actionSave         = "save"
	actionQuit         = "quit"
	actionEnterCommand = "enter_command"
)

// Editor is the terminal shell over the editing buffer: it owns key
// dispatch, the command line, rendering and file I/O. All text
// manipulation goes through the buffer's cursor operations.
type Editor struct {
	buf           *buffer.Buffer
	filename      string
	dirty         bool
	keys          map[string]string
	mode          Mode
	cmd           []rune
	cmdCursor     int
	statusMessage string
	scroll        int
	viewHeight    int
	tabWidth      int
	showStats     bool
	styleMain     tcell.Style
	styleStatus   tcell.Style
	styleCommand  tcell.Style
	sessions      *session.Manager
}

func New(cfg config.Config) *Editor {
	keys := make(map[string]string, len(cfg.Keys))
	for k, v := range cfg.Keys {
		keys[k] = v
	}
	tabWidth := cfg.Editor.TabWidth
	if tabWidth < 1 {
		tabWidth = 1
	}
	mainFg := parseColor(cfg.Theme.Foreground, tcell.ColorWhite)
	mainBg := parseColor(cfg.Theme.Background, tcell.ColorBlack)
	statusFg := parseColor(cfg.Theme.StatuslineForeground, tcell.ColorBlack)
	statusBg := parseColor(cfg.Theme.StatuslineBackground, tcell.ColorGray)
	commandFg := parseColor(cfg.Theme.CommandlineForeground, statusFg)
	commandBg := parseColor(cfg.Theme.CommandlineBackground, statusBg)
	return &Editor{
		buf:          buffer.New(),
		keys:         keys,
		mode:         ModeEdit,
		tabWidth:     tabWidth,
		showStats:    cfg.Editor.ShowStats,
		styleMain:    tcell.StyleDefault.Foreground(mainFg).Background(mainBg),
		styleStatus:  tcell.StyleDefault.Foreground(statusFg).Background(statusBg),
		styleCommand: tcell.StyleDefault.Foreground(commandFg).Background(commandBg),
	}
}

// SetSessionManager wires session persistence; nil disables it.
func (e *Editor) SetSessionManager(sm *session.Manager) {
	e.sessions = sm
}

// OpenFile loads path into the buffer, replacing the current content,
// and restores the remembered cursor position if the session knows one.
func (e *Editor) OpenFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	e.buf.Reset()
	e.buf.InsertString(string(data))
	e.buf.MoveCursorToStart()
	e.filename = path
	e.dirty = false
	e.scroll = 0
	e.mode = ModeEdit
	e.cmd = e.cmd[:0]
	e.statusMessage = ""
	if e.sessions != nil {
		if state, ok := e.sessions.GetFileState(absPath(path)); ok {
			offset := state.CursorOffset
			if offset > e.buf.Len() {
				offset = e.buf.Len()
			}
			e.moveToOffset(offset)
			e.scroll = state.Scroll
		}
	}
	logger.Info("opened file", "path", path, "bytes", e.buf.Len())
	return nil
}

// OpenLastActive reopens the session's last active file, if any. It
// reports whether a file was opened.
func (e *Editor) OpenLastActive() bool {
	if e.sessions == nil {
		return false
	}
	last := e.sessions.GetActiveFile()
	if last == "" {
		return false
	}
	if err := e.OpenFile(last); err != nil {
		logger.Warn("could not reopen last file", "path", last, "err", err)
		return false
	}
	return true
}

// Save writes the buffer to path, or to the current filename if path is
// empty.
func (e *Editor) Save(path string) error {
	if path == "" {
		if e.filename == "" {
			return errors.New("no file name")
		}
		path = e.filename
	}
	if err := os.WriteFile(path, []byte(e.buf.Text()), 0o644); err != nil {
		return err
	}
	e.filename = path
	e.dirty = false
	e.SyncSession()
	logger.Info("saved file", "path", path, "bytes", e.buf.Len())
	return nil
}

// SyncSession records the current cursor position for the open file.
func (e *Editor) SyncSession() {
	if e.sessions == nil || e.filename == "" {
		return
	}
	e.sessions.SetFileState(absPath(e.filename), session.FileState{
		CursorOffset: e.buf.Cursor(),
		Scroll:       e.scroll,
	})
}

func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}

// Content returns the buffer text.
func (e *Editor) Content() string {
	return e.buf.Text()
}

// HandleKey processes one key event. It returns true when the editor
// should quit.
func (e *Editor) HandleKey(ev *tcell.EventKey) bool {
	if e.mode == ModeCommand {
		return e.handleCommand(ev)
	}
	if e.statusMessage != "" {
		e.statusMessage = ""
	}
	key := keyString(ev)
	if action, ok := e.keys[key]; ok {
		return e.execAction(action)
	}
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r < 32 || r > 126 {
			// The buffer holds single-byte characters only.
			logger.Debug("ignored non-ASCII input", "rune", string(r))
			return false
		}
		e.buf.InsertCharacter(byte(r))
		e.dirty = true
	}
	return false
}

func (e *Editor) execAction(action string) bool {
	switch action {
	case actionMoveLeft:
		e.buf.MoveCursorBackward()
	case actionMoveRight:
		e.buf.MoveCursorForward()
	case actionMoveUp:
		e.moveUp()
	case actionMoveDown:
		e.moveDown()
	case actionPageUp:
		e.movePage(-1)
	case actionPageDown:
		e.movePage(1)
	case actionWordLeft:
		e.buf.MoveCursorBackwardWord()
	case actionWordRight:
		e.buf.MoveCursorForwardWord()
	case actionMoveStart:
		e.buf.MoveCursorToStart()
	case actionMoveEnd:
		e.buf.MoveCursorToEnd()
	case actionBackspace:
		if e.buf.Cursor() > 0 {
			e.buf.MoveCursorBackward()
			e.buf.DeleteCharacter()
			e.dirty = true
		}
	case actionDeleteChar:
		before := e.buf.Len()
		e.buf.DeleteCharacter()
		if e.buf.Len() != before {
			e.dirty = true
		}
	case actionDeleteWord:
		before := e.buf.Len()
		e.buf.DeleteWord()
		if e.buf.Len() != before {
			e.dirty = true
		}
	case actionCopyWord:
		e.buf.CopyWords(1)
		e.setStatus(fmt.Sprintf("copied %d chars", len(e.buf.Register())))
	case actionPaste:
		if e.buf.Register() != "" {
			e.buf.Paste()
			e.dirty = true
		}
	case actionNewline:
		e.buf.InsertCharacter('\n')
		e.dirty = true
	case actionInsertTab:
		e.buf.InsertCharacter('\t')
		e.dirty = true
	case actionSave:
		if err := e.Save(""); err != nil {
			e.setStatus(err.Error())
		} else {
			e.setStatus("written")
		}
	case actionQuit:
		if e.dirty {
			e.setStatus("unsaved changes (use :q!)")
			return false
		}
		return true
	case actionEnterCommand:
		e.mode = ModeCommand
		e.cmd = e.cmd[:0]
		e.cmdCursor = 0
	}
	return false
}

func (e *Editor) handleCommand(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		e.mode = ModeEdit
		e.cmd = e.cmd[:0]
		e.cmdCursor = 0
		return false
	case tcell.KeyEnter:
		cmd := string(e.cmd)
		e.mode = ModeEdit
		e.cmd = e.cmd[:0]
		e.cmdCursor = 0
		return e.execCommand(cmd)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if e.cmdCursor > 0 {
			e.cmd = append(e.cmd[:e.cmdCursor-1], e.cmd[e.cmdCursor:]...)
			e.cmdCursor--
		}
		return false
	case tcell.KeyLeft:
		if e.cmdCursor > 0 {
			e.cmdCursor--
		}
		return false
	case tcell.KeyRight:
		if e.cmdCursor < len(e.cmd) {
			e.cmdCursor++
		}
		return false
	case tcell.KeyRune:
		e.cmd = append(e.cmd[:e.cmdCursor], append([]rune{ev.Rune()}, e.cmd[e.cmdCursor:]...)...)
		e.cmdCursor++
		return false
	}
	return false
}

func (e *Editor) execCommand(cmd string) bool {
	if cmd == "" {
		return false
	}
	fields := strings.Fields(cmd)
	name := fields[0]
	args := fields[1:]

	switch name {
	case "w":
		path := ""
		if len(args) > 0 {
			path = strings.Join(args, " ")
		}
		if err := e.Save(path); err != nil {
			e.setStatus(err.Error())
			return false
		}
		e.setStatus("written")
		return false
	case "q":
		if e.dirty {
			e.setStatus("unsaved changes (use :q!)")
			return false
		}
		return true
	case "q!":
		return true
	case "wq", "x":
		path := ""
		if len(args) > 0 {
			path = strings.Join(args, " ")
		}
		if err := e.Save(path); err != nil {
			e.setStatus(err.Error())
			return false
		}
		return true
	case "copy":
		n, err := commandCount(args)
		if err != nil {
			e.setStatus(err.Error())
			return false
		}
		e.buf.Copy(n)
		e.setStatus(fmt.Sprintf("copied %d chars", len(e.buf.Register())))
		return false
	case "copyw":
		n, err := commandCount(args)
		if err != nil {
			e.setStatus(err.Error())
			return false
		}
		e.buf.CopyWords(n)
		e.setStatus(fmt.Sprintf("copied %d chars", len(e.buf.Register())))
		return false
	case "stat":
		st := textstat.Count(e.buf.Text())
		e.setStatus(fmt.Sprintf("%d chars, %d words, %d lines", st.Chars, st.Words, st.Lines))
		return false
	default:
		e.setStatus("unknown command: " + name)
		return false
	}
}

func commandCount(args []string) (int, error) {
	if len(args) != 1 {
		return 0, errors.New("expected a count")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, errors.New("bad count: " + args[0])
	}
	return n, nil
}

func (e *Editor) setStatus(msg string) {
	e.statusMessage = msg
}

// layout splits the buffer into display lines and locates the cursor
// within them. The cursor column is a byte offset into its line.
func (e *Editor) layout() (lines []string, row, col int) {
	text := e.buf.Text()
	cursor := e.buf.Cursor()
	lines = strings.Split(text, "\n")
	prefix := text[:cursor]
	row = strings.Count(prefix, "\n")
	col = cursor - (strings.LastIndexByte(prefix, '\n') + 1)
	return lines, row, col
}

// Vertical movement is shell-side sugar: the buffer only knows forward
// and backward steps, so up/down recompute a target offset and walk to
// it from the start.

func (e *Editor) moveUp() {
	lines, row, col := e.layout()
	if row == 0 {
		return
	}
	e.moveToRowCol(lines, row-1, col)
}

func (e *Editor) moveDown() {
	lines, row, col := e.layout()
	if row >= len(lines)-1 {
		return
	}
	e.moveToRowCol(lines, row+1, col)
}

// movePage jumps a screenful of lines in dir (-1 up, +1 down), keeping
// the column. The step comes from the view height of the last render.
func (e *Editor) movePage(dir int) {
	lines, row, col := e.layout()
	step := e.viewHeight - 1
	if step < 1 {
		step = 1
	}
	row += dir * step
	if row < 0 {
		row = 0
	}
	if row > len(lines)-1 {
		row = len(lines) - 1
	}
	e.moveToRowCol(lines, row, col)
}

func (e *Editor) moveToRowCol(lines []string, row, col int) {
	if col > len(lines[row]) {
		col = len(lines[row])
	}
	offset := 0
	for i := 0; i < row; i++ {
		offset += len(lines[i]) + 1
	}
	e.moveToOffset(offset + col)
}

func (e *Editor) moveToOffset(offset int) {
	e.buf.MoveCursorToStart()
	for i := 0; i < offset; i++ {
		e.buf.MoveCursorForward()
	}
}
