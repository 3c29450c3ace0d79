package ingestors

import (
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type readLine struct {
	line      string
	oversized bool
}

func readAll(t *testing.T, l *lineReader) []readLine {
	t.Helper()
	var lines []readLine
	for {
		line, oversized, err := l.next()
		if err == io.EOF {
			return lines
		}
		require.NoError(t, err)
		lines = append(lines, readLine{line: line, oversized: oversized})
	}
}

func TestLineReader_Next(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected []readLine
	}{
		{
			name:     "empty stream",
			input:    "",
			expected: nil,
		},
		{
			name:  "line endings and empty lines",
			input: "abc\nxyz\r\n\nlast",
			expected: []readLine{
				{line: "abc"}, {line: "xyz"}, {line: ""}, {line: "last"},
			},
		},
		{
			name:  "limit excludes the line ending",
			input: "12345678\r\n123456789\n",
			expected: []readLine{
				{line: "12345678"}, {oversized: true},
			},
		},
		{
			name:  "oversized line longer than the read buffer",
			input: strings.Repeat("0123456789", 10) + "\nok\n",
			expected: []readLine{
				{oversized: true}, {line: "ok"},
			},
		},
		{
			name:  "oversized last line",
			input: "ok\n" + strings.Repeat("x", 40),
			expected: []readLine{
				{line: "ok"}, {oversized: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			lines := readAll(t, newLineReader(strings.NewReader(tt.input), 8))
			assert.Equal(t, tt.expected, lines)
		})
	}
}

func TestLineReader_ReadError(t *testing.T) {
	t.Parallel()

	l := newLineReader(io.MultiReader(strings.NewReader("a\n"), iotest.ErrReader(assert.AnError)), 8)

	line, oversized, err := l.next()
	require.NoError(t, err)
	assert.Equal(t, "a", line)
	assert.False(t, oversized)

	_, _, err = l.next()
	assert.ErrorIs(t, err, assert.AnError)
}
