// Package buffer implements the editing core: a forward-linked sequence
// of single-byte characters with a cursor and a single-slot copy
// register. Words are maximal runs of non-delimiter characters, bounded
// by spaces, newlines or the buffer edges.
package buffer

import "strings"

const (
	space   = ' '
	newline = '\n'
)

// none marks the absence of a successor and, for the cursor, the
// position before all content.
const none = -1

type cell struct {
	ch   byte
	next int32
}

// Buffer is an in-memory editing buffer. Cells live in an index-addressed
// arena; released cells are chained onto a free list and reused by later
// insertions, so the arena owns every cell for the buffer's lifetime.
//
// The cursor rests on one cell, or on the virtual position before all
// content. Insertion and deletion act on the cell immediately after the
// cursor. All operations are total: at a boundary they degrade to no-ops
// or clamped results instead of failing.
//
// Not safe for concurrent use.
type Buffer struct {
	cells    []cell
	free     int32 // head of the released-cell chain, linked via next
	head     int32 // first content cell, none if empty
	cursor   int32 // cell the cursor rests on, none = before all content
	length   int
	register string
}

// New returns an empty buffer with the cursor before all content.
func New() *Buffer {
	return &Buffer{free: none, head: none, cursor: none}
}

// Reset returns the buffer to its freshly constructed state, dropping
// all content, the cursor position and the copy register. The arena is
// kept for reuse.
func (b *Buffer) Reset() {
	b.cells = b.cells[:0]
	b.free = none
	b.head = none
	b.cursor = none
	b.length = 0
	b.register = ""
}

// IsDelimiter reports whether ch bounds a word.
func IsDelimiter(ch byte) bool {
	return ch == space || ch == newline
}

func (b *Buffer) succ(i int32) int32 {
	if i == none {
		return b.head
	}
	return b.cells[i].next
}

func (b *Buffer) setSucc(i, to int32) {
	if i == none {
		b.head = to
	} else {
		b.cells[i].next = to
	}
}

func (b *Buffer) alloc(ch byte) int32 {
	if b.free != none {
		i := b.free
		b.free = b.cells[i].next
		b.cells[i] = cell{ch: ch, next: none}
		return i
	}
	b.cells = append(b.cells, cell{ch: ch, next: none})
	return int32(len(b.cells) - 1)
}

func (b *Buffer) release(i int32) {
	b.cells[i] = cell{next: b.free}
	b.free = i
}

// MoveCursorForward advances the cursor one character. No-op at the end
// of the buffer.
func (b *Buffer) MoveCursorForward() {
	if next := b.succ(b.cursor); next != none {
		b.cursor = next
	}
}

// MoveCursorBackward moves the cursor one character back by scanning
// from the start for the cursor's predecessor. No-op at the start of
// the buffer.
func (b *Buffer) MoveCursorBackward() {
	if b.cursor == none {
		return
	}
	p := int32(none)
	for b.succ(p) != b.cursor {
		p = b.succ(p)
	}
	b.cursor = p
}

// MoveCursorToStart places the cursor before all content.
func (b *Buffer) MoveCursorToStart() {
	b.cursor = none
}

// MoveCursorToEnd advances the cursor to the last character.
func (b *Buffer) MoveCursorToEnd() {
	for next := b.succ(b.cursor); next != none; next = b.succ(b.cursor) {
		b.cursor = next
	}
}

// MoveCursorForwardWord skips the delimiter run immediately to the right
// of the cursor, then the word that follows, leaving the cursor on the
// word's last character. Both scans look one cell ahead of the cursor.
func (b *Buffer) MoveCursorForwardWord() {
	for next := b.succ(b.cursor); next != none && IsDelimiter(b.cells[next].ch); next = b.succ(b.cursor) {
		b.cursor = next
	}
	for next := b.succ(b.cursor); next != none && !IsDelimiter(b.cells[next].ch); next = b.succ(b.cursor) {
		b.cursor = next
	}
}

// MoveCursorBackwardWord backs over the delimiter run at and left of the
// cursor, then over the word, landing one position before the word's
// first character. Unlike the forward scan this examines the cursor's
// own character.
func (b *Buffer) MoveCursorBackwardWord() {
	for b.cursor != none && IsDelimiter(b.cells[b.cursor].ch) {
		b.MoveCursorBackward()
	}
	for b.cursor != none && !IsDelimiter(b.cells[b.cursor].ch) {
		b.MoveCursorBackward()
	}
}

// InsertCharacter splices ch in immediately after the cursor and
// advances the cursor onto the new character.
func (b *Buffer) InsertCharacter(ch byte) {
	n := b.alloc(ch)
	b.cells[n].next = b.succ(b.cursor)
	b.setSucc(b.cursor, n)
	b.cursor = n
	b.length++
}

// InsertString inserts each byte of s in order at the cursor, leaving
// the cursor after the last inserted character.
func (b *Buffer) InsertString(s string) {
	for i := 0; i < len(s); i++ {
		b.InsertCharacter(s[i])
	}
}

// DeleteCharacter removes the character after the cursor, if any. The
// cursor does not move.
func (b *Buffer) DeleteCharacter() {
	d := b.succ(b.cursor)
	if d == none {
		return
	}
	b.setSucc(b.cursor, b.cells[d].next)
	b.release(d)
	b.length--
}

// DeleteWord removes the delimiter run after the cursor, then the word
// that follows, stopping at the next delimiter or the end of the buffer.
func (b *Buffer) DeleteWord() {
	for d := b.succ(b.cursor); d != none && IsDelimiter(b.cells[d].ch); d = b.succ(b.cursor) {
		b.DeleteCharacter()
	}
	for d := b.succ(b.cursor); d != none && !IsDelimiter(b.cells[d].ch); d = b.succ(b.cursor) {
		b.DeleteCharacter()
	}
}

// Copy captures the next n characters after the cursor into the copy
// register, clamped to the end of the buffer. The cursor does not move.
func (b *Buffer) Copy(n int) {
	rest := b.textFrom(b.cursor)
	if n < 0 {
		n = 0
	}
	if n > len(rest) {
		n = len(rest)
	}
	b.register = rest[:n]
}

// CopyWords captures n words after the cursor into the copy register,
// interior delimiters included. The span starts at the character
// immediately after the cursor, so a delimiter run before the first word
// is part of it. It ends at the delimiter that completes the final word
// (exclusive), or at the end of the buffer if fewer than n words remain.
// The cursor does not move.
func (b *Buffer) CopyWords(n int) {
	rest := b.textFrom(b.cursor)
	i := 0
	for n > 0 {
		for i < len(rest) && IsDelimiter(rest[i]) {
			i++
		}
		for i < len(rest) {
			if IsDelimiter(rest[i]) {
				n--
				break
			}
			i++
		}
		if i == len(rest) {
			n = 0
		}
	}
	b.register = rest[:i]
}

// Paste inserts the copy register at the cursor, advancing the cursor
// past the pasted text. The register is kept, so repeated pastes insert
// the same text.
func (b *Buffer) Paste() {
	b.InsertString(b.register)
}

// Register returns the contents of the copy register.
func (b *Buffer) Register() string {
	return b.register
}

// Text returns the buffer contents in forward order.
func (b *Buffer) Text() string {
	return b.textFrom(none)
}

// Cursor returns the 0-based character offset of the cursor, counted by
// a forward scan from the start.
func (b *Buffer) Cursor() int {
	n := 0
	for i := int32(none); i != b.cursor; i = b.succ(i) {
		n++
	}
	return n
}

// Len returns the number of characters in the buffer.
func (b *Buffer) Len() int {
	return b.length
}

func (b *Buffer) textFrom(i int32) string {
	var sb strings.Builder
	sb.Grow(b.length)
	for j := b.succ(i); j != none; j = b.cells[j].next {
		sb.WriteByte(b.cells[j].ch)
	}
	return sb.String()
}
