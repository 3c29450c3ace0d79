package ingestors

import (
	"bufio"
	"bytes"
	"errors"
	"io"
)

// lineReader splits a log stream into lines of at most maxBytes. A longer line is drained up
// to its terminator and reported as oversized so the lines after it are still read.
type lineReader struct {
	r        *bufio.Reader
	maxBytes int
	buf      []byte
}

func newLineReader(r io.Reader, maxBytes int) *lineReader {
	return &lineReader{
		r:        bufio.NewReaderSize(r, min(readBufferSize, maxBytes)),
		maxBytes: maxBytes,
	}
}

// next returns the next line without its line ending. The content of an oversized line is
// dropped. io.EOF is returned once the stream holds no further line.
func (l *lineReader) next() (line string, oversized bool, err error) {
	l.buf = l.buf[:0]
	for {
		fragment, err := l.r.ReadSlice('\n')
		if !oversized {
			l.buf = append(l.buf, fragment...)
			if len(trimLineEnding(l.buf)) > l.maxBytes {
				oversized = true
				l.buf = l.buf[:0]
			}
		}

		switch {
		case err == nil:
			return l.line(oversized), oversized, nil
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case errors.Is(err, io.EOF):
			if len(l.buf) == 0 && !oversized {
				return "", false, io.EOF
			}
			return l.line(oversized), oversized, nil
		default:
			return "", false, err
		}
	}
}

func (l *lineReader) line(oversized bool) string {
	if oversized {
		return ""
	}
	return string(trimLineEnding(l.buf))
}

func trimLineEnding(b []byte) []byte {
	b = bytes.TrimSuffix(b, []byte{'\n'})
	return bytes.TrimSuffix(b, []byte{'\r'})
}
