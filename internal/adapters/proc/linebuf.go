package proc

import "strings"

// lineSplitter turns raw data chunks into complete lines. A line split
// across two chunks is reassembled before being emitted and is never
// emitted twice; the carriage return preceding a newline is stripped.
// It also accumulates the full text of the stream.
type lineSplitter struct {
	emit    func(line string)
	partial strings.Builder
	full    strings.Builder
}

func newLineSplitter(emit func(line string)) *lineSplitter {
	return &lineSplitter{emit: emit}
}

// Feed consumes one raw chunk. Every complete line it closes is emitted;
// the trailing fragment is retained until the next chunk or Flush.
func (s *lineSplitter) Feed(chunk []byte) {
	s.full.Write(chunk)

	rest := string(chunk)
	for {
		i := strings.IndexByte(rest, '\n')
		if i < 0 {
			s.partial.WriteString(rest)
			return
		}
		line := s.partial.String() + rest[:i]
		s.partial.Reset()
		s.emit(strings.TrimSuffix(line, "\r"))
		rest = rest[i+1:]
	}
}

// Flush emits any non-empty trailing fragment. Called once, on stream end.
func (s *lineSplitter) Flush() {
	if s.partial.Len() == 0 {
		return
	}
	line := s.partial.String()
	s.partial.Reset()
	s.emit(line)
}

// Text returns everything fed so far, verbatim.
func (s *lineSplitter) Text() string {
	return s.full.String()
}
