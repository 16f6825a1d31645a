package split

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// A Record is one raw bipartition: two disjoint, non-empty groups of leaf
// labels, jointly covering the leaf universe.
type Record struct {
	SideA []string
	SideB []string
}

// Universe returns the union of both sides of the record.
func (r Record) Universe() LabelSet {
	u := NewLabelSet(r.SideA...)
	for _, label := range r.SideB {
		u.Add(label)
	}
	return u
}

// String returns the record in its textual form, with comma separated sides.
func (r Record) String() string {
	return strings.Join(r.SideA, ",") + "/" + strings.Join(r.SideB, ",")
}

// A MalformedSplitError describes a record that could not be parsed into
// two non-empty disjoint label groups.
type MalformedSplitError struct {
	Line   int
	Record string
	Reason string
}

func (e *MalformedSplitError) Error() string {
	return fmt.Sprintf("Error on line %d: malformed split '%s': %s.",
		e.Line, e.Record, e.Reason)
}

// A UniverseMismatchError describes a record whose leaf universe differs
// from the universe established by the first record of the input.
type UniverseMismatchError struct {
	Line      int
	FirstLine int
	Missing   []string
	Extra     []string
}

func (e *UniverseMismatchError) Error() string {
	return fmt.Sprintf("Error on line %d: split's leaf universe differs "+
		"from the universe on line %d (missing: %s; extra: %s).",
		e.Line, e.FirstLine,
		strings.Join(e.Missing, ","), strings.Join(e.Extra, ","))
}

// A Reader reads bipartition records from textual input, one per line.
type Reader struct {
	buf  *bufio.Reader
	line int
}

// NewReader returns a reader ready for reading records from `r`.
func NewReader(r io.Reader) *Reader {
	return &Reader{
		buf:  bufio.NewReader(r),
		line: 0,
	}
}

// Read returns the next record in the input. If the end of the input is
// reached, a zero Record is returned with `io.EOF` as the error.
func (r *Reader) Read() (Record, error) {
	rec, _, err := r.read()
	return rec, err
}

// ReadAll returns all records in the input. The first error that occurs is
// returned with no records. The error is never `io.EOF`.
//
// In addition to the per-record checks done by Read, ReadAll verifies that
// every record describes the same leaf universe as the first record, and
// fails with a `*UniverseMismatchError` otherwise.
func (r *Reader) ReadAll() ([]Record, error) {
	var records []Record
	var universe LabelSet
	firstLine := 0
	for {
		rec, line, err := r.read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		if universe == nil {
			universe, firstLine = rec.Universe(), line
		} else if u := rec.Universe(); !u.Equal(universe) {
			return nil, &UniverseMismatchError{
				Line:      line,
				FirstLine: firstLine,
				Missing:   diff(universe, u),
				Extra:     diff(u, universe),
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

func (r *Reader) read() (Record, int, error) {
	for {
		line, err := r.buf.ReadString('\n')
		if len(line) == 0 && err != nil {
			if err == io.EOF {
				return Record{}, 0, io.EOF
			}
			return Record{}, 0, err
		}
		r.line++

		raw := strings.TrimSpace(line)
		if len(raw) == 0 || strings.HasPrefix(raw, "#") {
			continue
		}
		rec, perr := r.parse(raw)
		if perr != nil {
			return Record{}, 0, perr
		}
		return rec, r.line, nil
	}
}

func (r *Reader) parse(raw string) (Record, error) {
	malformed := func(reason string) error {
		return &MalformedSplitError{Line: r.line, Record: raw, Reason: reason}
	}

	i := strings.IndexByte(raw, '/')
	if i < 0 {
		return Record{}, malformed("missing the '/' side delimiter")
	}
	rawA, rawB := raw[:i], raw[i+1:]
	if len(rawA) == 0 || len(rawB) == 0 {
		return Record{}, malformed("a side is empty")
	}

	rec := Record{SideA: labels(rawA), SideB: labels(rawB)}
	seen := make(LabelSet, len(rec.SideA)+len(rec.SideB))
	for _, label := range append(append([]string{}, rec.SideA...), rec.SideB...) {
		if len(label) == 0 {
			return Record{}, malformed("a label is empty")
		}
		if seen.Contains(label) {
			return Record{}, malformed(
				fmt.Sprintf("the label '%s' appears more than once", label))
		}
		seen.Add(label)
	}
	return rec, nil
}

// labels splits one side of a record into leaf labels: a comma separated
// list if the side contains a comma, otherwise one label per character.
func labels(side string) []string {
	if strings.ContainsRune(side, ',') {
		return strings.Split(side, ",")
	}
	ls := make([]string, 0, len(side))
	for _, c := range side {
		ls = append(ls, string(c))
	}
	return ls
}

// diff returns the labels of `a` that are not in `b`, sorted.
func diff(a, b LabelSet) []string {
	d := make(LabelSet)
	for label := range a {
		if !b.Contains(label) {
			d.Add(label)
		}
	}
	return d.Labels()
}
