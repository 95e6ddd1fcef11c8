package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Decoder reads the whitespace-separated grid text format:
//
//	n
//	row_1
//	…
//	row_n
//
// followed by any trailing tokens the caller wants (seed coordinates, colors).
// Rows are single tokens, so they may not contain spaces.
type Decoder struct {
	sc *bufio.Scanner
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	sc.Split(bufio.ScanWords)

	return &Decoder{sc: sc}
}

// Decode reads one grid from r.
func Decode(r io.Reader) (*Grid, error) {
	return NewDecoder(r).Grid()
}

// Grid reads a row count and that many rows, then validates them with New.
func (d *Decoder) Grid() (*Grid, error) {
	tok, err := d.token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRowCount, err)
	}
	n, err := strconv.Atoi(tok)
	if err != nil || n < 0 {
		return nil, fmt.Errorf("%w: got %q", ErrBadRowCount, tok)
	}
	rows := make([]string, 0, n)
	for i := 0; i < n; i++ {
		row, err := d.token()
		if err != nil {
			return nil, fmt.Errorf("%w: read %d of %d rows: %v", ErrShortInput, i, n, err)
		}
		rows = append(rows, row)
	}

	return New(rows)
}

// Int reads the next token as a decimal integer.
func (d *Decoder) Int() (int, error) {
	tok, err := d.token()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrShortInput, err)
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrBadToken, tok)
	}

	return v, nil
}

// Byte reads the next token, which must be exactly one byte long.
func (d *Decoder) Byte() (byte, error) {
	tok, err := d.token()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrShortInput, err)
	}
	if len(tok) != 1 {
		return 0, fmt.Errorf("%w: %q is not a single character", ErrBadToken, tok)
	}

	return tok[0], nil
}

func (d *Decoder) token() (string, error) {
	if d.sc.Scan() {
		return d.sc.Text(), nil
	}
	if err := d.sc.Err(); err != nil {
		return "", err
	}

	return "", io.ErrUnexpectedEOF
}

// Encode writes gr in the same format Decode reads: the row count, then each
// row, every line newline-terminated.
func (gr *Grid) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, gr.Height); err != nil {
		return err
	}
	for _, row := range gr.cells {
		if _, err := bw.Write(row); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}
