package terminal

import "io"

const readBufferSize = 64

// Reader reads key events from a raw terminal byte stream
type Reader struct {
	r       io.Reader
	buf     []byte
	pending []KeyEvent
}

// NewReader creates a key reader over r (normally os.Stdin in raw mode)
func NewReader(r io.Reader) *Reader {
	return &Reader{
		r:   r,
		buf: make([]byte, readBufferSize),
	}
}

// ReadKey blocks until the next key event is available.
// A read that yields no decodable key returns the zero KeyEvent and a nil
// error; callers are expected to ignore it and read again.
func (r *Reader) ReadKey() (KeyEvent, error) {
	if len(r.pending) > 0 {
		ev := r.pending[0]
		r.pending = r.pending[1:]
		return ev, nil
	}

	n, err := r.r.Read(r.buf)
	if n == 0 {
		return KeyEvent{}, err
	}

	events := Decode(r.buf[:n])
	if len(events) == 0 {
		return KeyEvent{}, nil
	}
	r.pending = append(r.pending[:0], events[1:]...)
	return events[0], nil
}
