// Package output implements C4, the OutputStream: a line-buffered,
// column-aware wrapper that resolves layout hints into concrete line
// breaks, strips trailing whitespace, and continues over-long lines
// with tab+space continuation (spec.md §4.5).
package output

import (
	"bytes"
	"io"
)

const (
	MaxLineLen    = 80
	MinLineItems  = 5
	MinLineExcess = 5
	TabSize       = 8
	SpaceIndent   = 4
)

// fragment is one write() call's worth of bytes plus the hints that
// were in effect for it.
type fragment struct {
	data  []byte
	hints Hint
}

func (f fragment) isWhitespace() bool {
	return len(bytes.TrimSpace(f.data)) == 0
}

// Stream is the OutputStream: callers write fragments with Write, and
// Stream decides, once a fragment completes a logical line, where
// to actually break the physical output into one or more lines.
type Stream struct {
	sink       io.Writer
	toStdout   bool
	linebreaks bool

	tabIndent int
	fragbuf   []fragment

	pending []byte // uncommitted bytes of the current physical line
	err     error

	// lastLineBlank records whether the most recently completed
	// physical line was empty, so callers re-emitting user blank
	// lines (the CST "nl" node) can collapse runs of them down to
	// one (spec.md §8 P8, "no more than one blank line ever appears
	// consecutively").
	lastLineBlank bool
}

// LastLineBlank reports whether the most recently completed physical
// line was blank.
func (s *Stream) LastLineBlank() bool {
	return s.lastLineBlank
}

// NewStream constructs a Stream writing to sink. toStdout should be
// true when sink is the process's real standard output, so a broken
// pipe can be handled by redirecting the fd to the null device
// instead of propagating a write error up through every formatter
// (spec.md §5, §7).
func NewStream(sink io.Writer, toStdout bool, enableLinebreaks bool) *Stream {
	return &Stream{sink: sink, toStdout: toStdout, linebreaks: enableLinebreaks}
}

// WriteIndent writes `indent` tabs at the start of a line and records
// them as the continuation indent the break algorithm uses for this
// logical line.
func (s *Stream) WriteIndent(indent int) {
	s.tabIndent = indent
	if indent > 0 {
		s.Write(bytes.Repeat([]byte{'\t'}, indent), NoLBAfter)
	}
}

// Write appends data to the current logical line's fragment buffer,
// under the given hints. Fragments are split on embedded newlines so
// each one carries at most one terminal '\n'; a fragment ending in a
// newline flushes the buffered logical line.
func (s *Stream) Write(data []byte, hints Hint) {
	start := 0
	for i := 0; i < len(data); i++ {
		if data[i] != '\n' {
			continue
		}
		s.fragbuf = append(s.fragbuf, fragment{data: data[start : i+1], hints: hints})
		start = i + 1
		s.flushLine()
	}
	if start < len(data) {
		s.fragbuf = append(s.fragbuf, fragment{data: data[start:], hints: hints})
	}
}

// WriteRaw flushes any pending logical line, then emits data
// unmodified (save for the same trailing-whitespace stripping every
// physical line gets), bypassing the line-breaking decision. Used by
// the error-preserving formatter to emit unparsable ranges verbatim
// (spec.md §4.4, §4.5 "Raw writes").
func (s *Stream) WriteRaw(data []byte) {
	s.flushFragbufVerbatim()
	s.commit(data)
}

func (s *Stream) flushFragbufVerbatim() {
	for _, f := range s.fragbuf {
		s.commit(f.data)
	}
	s.fragbuf = nil
}

// Column reports the current column: bytes committed since the last
// newline on the physical output, plus the bytes of the current
// logical line still buffered as fragments.
func (s *Stream) Column() int {
	col := len(s.pending)
	for _, f := range s.fragbuf {
		col += len(f.data)
	}
	return col
}

// Close flushes any buffered line and, if the last line is not
// newline-terminated, terminates it (spec.md §4.5 "Finalization").
// Blank lines already written at the end of the output are kept.
func (s *Stream) Close() error {
	s.flushLine()
	if len(s.pending) > 0 {
		s.commit([]byte("\n"))
	}
	return s.err
}

// flushLine resolves the buffered fragments of one logical line into
// one or more physical lines, per the algorithm of spec.md §4.5.
func (s *Stream) flushLine() {
	if len(s.fragbuf) == 0 {
		return
	}
	if !s.linebreaks {
		s.flushFragbufVerbatim()
		return
	}

	frags := s.fragbuf
	s.fragbuf = nil

	// Step 1: translate NO_LB_BEFORE on a fragment into NO_LB_AFTER on
	// the previous non-whitespace fragment (reverse-scan reformulation).
	forcedNoLBAfter := make([]bool, len(frags))
	prevNonWS := -1
	for i, f := range frags {
		if f.isWhitespace() {
			continue
		}
		if f.hints.has(NoLBBefore) && prevNonWS >= 0 {
			forcedNoLBAfter[prevNonWS] = true
		}
		prevNonWS = i
	}

	// Step 2: line_items = count of non-whitespace fragments.
	lineItems := 0
	for _, f := range frags {
		if !f.isWhitespace() {
			lineItems++
		}
	}

	// The "column already exceeds MAX_LINE_LEN" test for advisory
	// breaks uses the full, unwrapped length of the logical line, not
	// the column as-written-so-far (mirrors the original stream's
	// self._col, which accumulates across the whole buffered line
	// before any break is inserted).
	fullLen := 0
	for _, f := range frags {
		fullLen += len(f.data)
	}

	colFlushed := s.Column()
	var tbd []fragment
	tbdLen := 0
	usingBreakHints := false

	flushTBD := func() {
		for _, t := range tbd {
			s.commit(t.data)
			colFlushed += len(t.data)
		}
		tbd = nil
		tbdLen = 0
	}

	writeLineBreak := func() {
		s.commit([]byte("\n"))
		if s.tabIndent > 0 {
			s.commit(bytes.Repeat([]byte{'\t'}, s.tabIndent))
		}
		s.commit(bytes.Repeat([]byte{' '}, SpaceIndent))
		colFlushed = s.tabIndent*TabSize + SpaceIndent

		for len(tbd) > 0 && tbd[0].isWhitespace() {
			if !tbd[0].hints.has(ZeroWidth) {
				tbdLen -= len(tbd[0].data)
			}
			tbd = tbd[1:]
		}
	}

	for i, f := range frags {
		tbd = append(tbd, f)
		if !f.hints.has(ZeroWidth) {
			tbdLen += len(f.data)
		}

		if f.isWhitespace() {
			continue
		}

		noLBAfter := f.hints.has(NoLBAfter) || forcedNoLBAfter[i]

		switch {
		case f.hints.has(GoodAfterLB) && fullLen > MaxLineLen:
			writeLineBreak()
			usingBreakHints = true

		case noLBAfter:
			// no break

		case !usingBreakHints &&
			colFlushed+tbdLen > MaxLineLen &&
			(tbdLen >= MinLineExcess || colFlushed > MaxLineLen+MinLineExcess) &&
			lineItems >= MinLineItems &&
			s.tabIndent*TabSize+tbdLen < MaxLineLen:
			writeLineBreak()
		}

		flushTBD()
	}

	flushTBD()
}

// commit appends data to the pending physical-line buffer and flushes
// every complete (newline-terminated) line it contains to the sink,
// right-trimming trailing space/tab bytes before the newline
// (spec.md §4.5 "Trailing-whitespace stripping").
func (s *Stream) commit(data []byte) {
	s.pending = append(s.pending, data...)

	for {
		idx := bytes.IndexByte(s.pending, '\n')
		if idx < 0 {
			break
		}
		line := bytes.TrimRight(s.pending[:idx], " \t")
		s.lastLineBlank = len(line) == 0
		s.write(line)
		s.write([]byte("\n"))
		s.pending = s.pending[idx+1:]
	}
}

func (s *Stream) write(data []byte) {
	if s.err != nil || len(data) == 0 {
		return
	}
	if _, err := s.sink.Write(data); err != nil {
		if s.toStdout && isBrokenPipe(err) {
			redirectStdoutToDevNull()
			exitProcess(1)
			return
		}
		s.err = err
	}
}
