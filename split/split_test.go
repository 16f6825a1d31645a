package split

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample(s string) io.Reader {
	return strings.NewReader(s)
}

func TestLabelSet(t *testing.T) {
	s := NewLabelSet("a", "b", "c")

	assert.True(t, s.Contains("a"))
	assert.False(t, s.Contains("d"))
	assert.True(t, s.ContainsAll([]string{"c", "a"}))
	assert.True(t, s.ContainsAll(nil))
	assert.False(t, s.ContainsAll([]string{"a", "d"}))

	assert.True(t, s.Equal(NewLabelSet("c", "b", "a")))
	assert.False(t, s.Equal(NewLabelSet("a", "b")))
	assert.False(t, s.Equal(NewLabelSet("a", "b", "d")))

	assert.Equal(t, []string{"a", "b", "c"}, s.Labels())

	s.Add("d")
	assert.True(t, s.Contains("d"))
}

func TestRead(t *testing.T) {
	t.Run("single character labels", func(t *testing.T) {
		r := NewReader(sample("b/acde\n"))
		rec, err := r.Read()
		require.NoError(t, err)
		assert.Equal(t, []string{"b"}, rec.SideA)
		assert.Equal(t, []string{"a", "c", "d", "e"}, rec.SideB)

		_, err = r.Read()
		assert.Equal(t, io.EOF, err)
	})

	t.Run("comma separated labels", func(t *testing.T) {
		rec, err := NewReader(sample("human/chimp,gorilla")).Read()
		require.NoError(t, err)
		assert.Equal(t, []string{"human"}, rec.SideA)
		assert.Equal(t, []string{"chimp", "gorilla"}, rec.SideB)
	})

	t.Run("blank lines and comments are skipped", func(t *testing.T) {
		r := NewReader(sample("# a comment\n\n  \nab/cd\n"))
		rec, err := r.Read()
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, rec.SideA)
		assert.Equal(t, []string{"c", "d"}, rec.SideB)
	})

	t.Run("missing trailing newline", func(t *testing.T) {
		rec, err := NewReader(sample("a/b")).Read()
		require.NoError(t, err)
		assert.Equal(t, []string{"a"}, rec.SideA)
		assert.Equal(t, []string{"b"}, rec.SideB)
	})
}

func TestReadMalformed(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		reason string
	}{
		{"no delimiter", "abcd\n", "missing the '/' side delimiter"},
		{"empty side A", "/abc\n", "a side is empty"},
		{"empty side B", "abc/\n", "a side is empty"},
		{"empty label", "a,,b/c\n", "a label is empty"},
		{"repeated within a side", "a,a/b\n", "appears more than once"},
		{"sides not disjoint", "ab/bc\n", "appears more than once"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewReader(sample(tt.input)).Read()
			require.Error(t, err)

			var merr *MalformedSplitError
			require.ErrorAs(t, err, &merr)
			assert.Equal(t, 1, merr.Line)
			assert.Contains(t, merr.Reason, tt.reason)
		})
	}
}

func TestReadAll(t *testing.T) {
	t.Run("consistent universe", func(t *testing.T) {
		records, err := NewReader(sample("b/acde\nba/cde\nbace/d\nbacd/e\n")).
			ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 4)
		for _, rec := range records {
			assert.True(t, rec.Universe().
				Equal(NewLabelSet("a", "b", "c", "d", "e")))
		}
	})

	t.Run("universe mismatch", func(t *testing.T) {
		_, err := NewReader(sample("a/bc\nb/ax\n")).ReadAll()
		require.Error(t, err)

		var uerr *UniverseMismatchError
		require.ErrorAs(t, err, &uerr)
		assert.Equal(t, 2, uerr.Line)
		assert.Equal(t, 1, uerr.FirstLine)
		assert.Equal(t, []string{"c"}, uerr.Missing)
		assert.Equal(t, []string{"x"}, uerr.Extra)
	})

	t.Run("parse errors carry line numbers", func(t *testing.T) {
		_, err := NewReader(sample("a/bc\n\nbc\n")).ReadAll()
		require.Error(t, err)

		var merr *MalformedSplitError
		require.ErrorAs(t, err, &merr)
		assert.Equal(t, 3, merr.Line)
	})
}

func TestRecordString(t *testing.T) {
	rec := Record{SideA: []string{"b"}, SideB: []string{"a", "c"}}
	assert.Equal(t, "b/a,c", rec.String())

	parsed, err := NewReader(sample(rec.String())).Read()
	require.NoError(t, err)
	assert.Equal(t, rec, parsed)
}
