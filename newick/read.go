package newick

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Runes that may not appear in an unquoted label.
const banned = " ()[]':;,"

// Reader corresponds to the state necessary to read trees from Newick
// formatted input.
type Reader struct {
	buf  *bufio.Reader
	line int
}

// NewReader returns a reader ready for reading trees from `r`.
func NewReader(r io.Reader) *Reader {
	return &Reader{
		buf:  bufio.NewReader(r),
		line: 1,
	}
}

// ReadAll returns all of the Newick trees in the source input. The first
// error that occurs is returned with no trees. The error is never `io.EOF`.
func (r *Reader) ReadAll() ([]*Tree, error) {
	trees := make([]*Tree, 0)
	for {
		tree, err := r.ReadTree()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		trees = append(trees, tree)
	}
	return trees, nil
}

// ReadTree reads a single tree from the source input. If the end of the
// input is reached, then a nil `Tree` is returned with `io.EOF` as the error.
func (r *Reader) ReadTree() (*Tree, error) {
	if err := r.skipSpace(); err != nil {
		return nil, err
	}

	tree, err := r.subtree()
	if err != nil {
		return nil, err
	}

	if err := r.skipSpace(); err != nil && err != io.EOF {
		return nil, err
	}
	c, _, err := r.buf.ReadRune()
	if err == io.EOF {
		// A missing terminal at the very end of the input is tolerated.
		return tree, nil
	} else if err != nil {
		return nil, err
	} else if c != ';' {
		return nil, r.errf("Expected a terminal ';' but got '%c' instead.", c)
	}
	return tree, nil
}

// subtree parses one subtree: either a parenthesized descendent list
// followed by an optional label, or a bare label.
func (r *Reader) subtree() (*Tree, error) {
	tree := &Tree{}

	c, err := r.peek()
	if err != nil {
		return nil, r.errf("Unexpected EOF.")
	}
	if c == '(' {
		r.next()
		for {
			if err := r.skipSpace(); err != nil {
				return nil, r.errf("Unexpected EOF.")
			}
			child, err := r.subtree()
			if err != nil {
				return nil, err
			}
			tree.Children = append(tree.Children, child)

			if err := r.skipSpace(); err != nil {
				return nil, r.errf("Unexpected EOF.")
			}
			c, _, err := r.buf.ReadRune()
			if err != nil {
				return nil, r.errf("Unexpected EOF.")
			}
			if c == ',' {
				continue
			} else if c == ')' {
				break
			}
			return nil, r.errf("Expected ',' or ')' in a descendent list "+
				"but got '%c' instead.", c)
		}
		if err := r.skipSpace(); err != nil && err != io.EOF {
			return nil, err
		}
	}
	return tree, r.labelLength(tree)
}

// labelLength parses the optional label and the optional ':'-prefixed
// branch length following a subtree.
func (r *Reader) labelLength(tree *Tree) error {
	tree.Label = r.name()

	c, err := r.peek()
	if err != nil || c != ':' {
		return nil
	}
	r.next()

	num := new(bytes.Buffer)
	for {
		c, err := r.peek()
		if err != nil || strings.ContainsRune(banned, c) || unicode.IsSpace(c) {
			break
		}
		num.WriteRune(c)
		r.next()
	}
	length, err := strconv.ParseFloat(num.String(), 64)
	if err != nil {
		return r.errf("Invalid branch length '%s'.", num.String())
	}
	tree.Length = &length
	return nil
}

// name reads an unquoted label, which may be empty.
func (r *Reader) name() string {
	buf := new(bytes.Buffer)
	for {
		c, err := r.peek()
		if err != nil || strings.ContainsRune(banned, c) || unicode.IsSpace(c) {
			break
		}
		buf.WriteRune(c)
		r.next()
	}
	return buf.String()
}

// peek returns but does not consume the next rune in the input.
func (r *Reader) peek() (rune, error) {
	c, _, err := r.buf.ReadRune()
	if err != nil {
		return 0, err
	}
	if uerr := r.buf.UnreadRune(); uerr != nil {
		return 0, uerr
	}
	return c, nil
}

// next consumes the next rune, tracking line numbers.
func (r *Reader) next() {
	c, _, err := r.buf.ReadRune()
	if err == nil && c == '\n' {
		r.line++
	}
}

// skipSpace consumes blanks and new lines up to the next meaningful rune.
func (r *Reader) skipSpace() error {
	for {
		c, err := r.peek()
		if err != nil {
			return err
		}
		if !unicode.IsSpace(c) {
			return nil
		}
		r.next()
	}
}

func (r *Reader) errf(format string, v ...interface{}) error {
	return fmt.Errorf("Error on line %d: %s", r.line, fmt.Sprintf(format, v...))
}
