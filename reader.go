// Package compio reads whitespace-delimited tokens from an input stream and
// parses them on demand, so contest solutions don't have to re-invent input
// plumbing every time.
package compio

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
)

const READ_BUF_SIZE = 65536

// Reader splits an input stream into whitespace-delimited tokens and parses
// each one as the caller asks for it. It owns its stream exclusively: two
// Readers (or a Reader plus anything else) consuming the same source will
// race for bytes, so make one per stream and share nothing.
type Reader struct {
	src *bufio.Reader
	tok []byte // scratch for the token being scanned, reused across calls
	eof bool   // latched the moment a refill finds no more input
}

// New returns a Reader attached to standard input. No bytes are read until
// the first accessor call.
func New() *Reader {
	return NewReader(os.Stdin)
}

// NewReader returns a Reader that tokenizes r.
func NewReader(r io.Reader) *Reader {
	return &Reader{src: bufio.NewReaderSize(r, READ_BUF_SIZE)}
}

// NewReaderString returns a Reader over a fixed string. Useful in tests
// where there is no stdin to speak of.
func NewReaderString(s string) *Reader {
	return NewReader(strings.NewReader(s))
}

// Whitespace is the common set only: space, tab, newline, carriage return.
func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// readByte pulls one byte from the source. The first time the source runs
// dry it latches the exhausted state; from then on nothing is read again.
func (r *Reader) readByte() (byte, error) {
	if r.eof {
		return 0, ErrEndOfStream
	}
	b, err := r.src.ReadByte()
	if err == io.EOF {
		r.eof = true
		return 0, ErrEndOfStream
	}
	if err != nil {
		return 0, err
	}
	return b, nil
}

// nextNonSpace skips whitespace and returns the first byte after it.
func (r *Reader) nextNonSpace() (byte, error) {
	for {
		b, err := r.readByte()
		if err != nil {
			return 0, err
		}
		if !isSpace(b) {
			return b, nil
		}
	}
}

// nextToken scans the next token into the reader's scratch buffer. The
// returned slice is only valid until the next call. A token cut off by end
// of input still counts; the end-of-stream failure begins at the call after.
func (r *Reader) nextToken() ([]byte, error) {
	first, err := r.nextNonSpace()
	if err != nil {
		return nil, err
	}
	r.tok = append(r.tok[:0], first)
	for {
		b, err := r.readByte()
		if err == ErrEndOfStream {
			break
		}
		if err != nil {
			return nil, err
		}
		if isSpace(b) {
			break
		}
		r.tok = append(r.tok, b)
	}
	return r.tok, nil
}

/*
    /\
   /  \     ___   ___   ___  ___  ___   ___   _ __  ___
  / /\ \   / __| / __| / _ \/ __|/ __| / _ \ | '__|/ __|
 / ____ \ | (__ | (__ |  __/\__ \\__ \| (_) || |   \__ \
/_/    \_\ \___| \___| \___||___/|___/ \___/ |_|   |___/
*/

// NextToken returns the next whitespace-delimited token as a string.
func (r *Reader) NextToken() (string, error) {
	tok, err := r.nextToken()
	if err != nil {
		return "", err
	}
	return string(tok), nil
}

// NextInt parses the next token as an int.
func (r *Reader) NextInt() (int, error) {
	tok, err := r.nextToken()
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(string(tok), 10, strconv.IntSize)
	if err != nil {
		return 0, parseError(tok, "int", err)
	}
	return int(n), nil
}

// NextInt32 parses the next token as an int32.
func (r *Reader) NextInt32() (int32, error) {
	tok, err := r.nextToken()
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(string(tok), 10, 32)
	if err != nil {
		return 0, parseError(tok, "int32", err)
	}
	return int32(n), nil
}

// NextInt64 parses the next token as an int64.
func (r *Reader) NextInt64() (int64, error) {
	tok, err := r.nextToken()
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(string(tok), 10, 64)
	if err != nil {
		return 0, parseError(tok, "int64", err)
	}
	return n, nil
}

// NextUint32 parses the next token as a uint32. A leading sign is rejected.
func (r *Reader) NextUint32() (uint32, error) {
	tok, err := r.nextToken()
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(string(tok), 10, 32)
	if err != nil {
		return 0, parseError(tok, "uint32", err)
	}
	return uint32(n), nil
}

// NextUint64 parses the next token as a uint64. A leading sign is rejected.
func (r *Reader) NextUint64() (uint64, error) {
	tok, err := r.nextToken()
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(string(tok), 10, 64)
	if err != nil {
		return 0, parseError(tok, "uint64", err)
	}
	return n, nil
}

// NextFloat64 parses the next token as a float64. Anything
// strconv.ParseFloat accepts is fine: sign, fraction, exponent.
func (r *Reader) NextFloat64() (float64, error) {
	tok, err := r.nextToken()
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(string(tok), 64)
	if err != nil {
		return 0, parseError(tok, "float64", err)
	}
	return f, nil
}

// NextChar returns the next non-whitespace byte. Unlike the token accessors
// it consumes a single byte, so the rest of the surrounding token stays
// readable.
func (r *Reader) NextChar() (byte, error) {
	return r.nextNonSpace()
}

// NextPair reads two consecutive int32 tokens.
func (r *Reader) NextPair() (int32, int32, error) {
	first, err := r.NextInt32()
	if err != nil {
		return 0, 0, err
	}
	second, err := r.NextInt32()
	if err != nil {
		return 0, 0, err
	}
	return first, second, nil
}
