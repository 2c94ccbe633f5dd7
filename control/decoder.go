package control

import (
	"bytes"
	"errors"
	"io"
	"math"
	"math/big"

	"github.com/calebcase/oops"
)

// Decoder reads control blocks.
type Decoder interface {
	Seek() (err error)
	Next() (ok bool)
	Err() (err error)

	Type() Type
	Consumed() uint64

	Size() (_ uint64, err error)
	Data() (data []byte, err error)
}

type decoder struct {
	r io.Reader
	s io.Seeker

	consumed uint64

	value    [1]byte
	t        Type
	finished bool

	size uint64
	data []byte

	err error
}

// NewDecoder returns a decoder reading from r. If r is also an io.Seeker
// unread data is skipped by seeking.
func NewDecoder(r io.Reader) Decoder {
	d := &decoder{
		r: r,
	}

	d.s, _ = r.(io.Seeker)

	return d
}

// seek moves the input stream's current position using an io.Seeker if
// available otherwise it falls back to a discarding copy.
func (d *decoder) seek(size uint64) (err error) {
	if d.s != nil {
		_, err := d.s.Seek(int64(size), io.SeekCurrent)
		if err != nil {
			return Error.Wrap(err)
		}

		d.consumed += size

		return nil
	}

	n, err := io.CopyN(io.Discard, d.r, int64(size))
	if err != nil {
		return Error.Wrap(err)
	}

	d.consumed += uint64(n)

	return nil
}

// read fills b from the input and counts it as consumed.
func (d *decoder) read(b []byte) (err error) {
	_, err = io.ReadFull(d.r, b)
	if err != nil {
		return Error.Wrap(err)
	}

	d.consumed += uint64(len(b))

	return nil
}

// Seek moves the reading position to the end of the current field.
func (d *decoder) Seek() (err error) {
	defer func() {
		if err != nil {
			d.err = err
		}
	}()

	if d.consumed == 0 || d.finished {
		return nil
	}

	switch d.t {
	case Unknown, Data, Null:
		// No additional bytes need to be read.
	case DataSize, DataSizeSize:
		size, err := d.Size()
		if err != nil {
			return err
		}

		err = d.seek(size)
		if err != nil {
			return err
		}
	case Data1, Data2:
		// Small enough to just read directly.
		_, err := d.Data()
		if err != nil {
			return err
		}
	default:
		return Error.New("unknown field %s: %08b", d.t, d.value[0])
	}

	d.finished = true

	return nil
}

// Next advances to the next block. It returns false at the end of the input
// or on error; check Err to tell them apart.
func (d *decoder) Next() (ok bool) {
	if d.err != nil {
		return false
	}

	// Ensure current field was fully read before moving on...
	if !d.finished {
		d.err = d.Seek()
		if d.err != nil {
			return false
		}
	}

	// Reset state for next field.
	d.value[0] = 0
	d.t = Unknown

	d.size = 0
	d.data = nil
	d.finished = false

	// Read the field control block.
	_, d.err = io.ReadFull(d.r, d.value[:])
	if d.err != nil {
		if errors.Is(d.err, io.EOF) {
			d.err = nil
			return false
		}

		d.err = Error.Wrap(d.err)

		return false
	}

	d.consumed += 1

	t, ok := Types.Match(d.value[0])
	if !ok {
		d.err = Error.New("unexpected byte: %0b", d.value[0])

		return false
	}

	switch t {
	case Data, Null:
		d.finished = true
	}

	d.t = t

	return true
}

func (d *decoder) Err() error {
	return d.err
}

func (d *decoder) Type() Type {
	return d.t
}

func (d *decoder) Consumed() uint64 {
	return d.consumed
}

// Size returns the number of data bytes in the current field. If the field
// does not contain data it returns 0 and ErrInvalidOperation.
func (d *decoder) Size() (_ uint64, err error) {
	defer func() {
		if err != nil {
			d.size = 0
			d.err = err
		}
	}()

	if d.size != 0 {
		return d.size, nil
	}

	switch d.t {
	case Data:
		d.size = 1
	case DataSize:
		d.size = uint64(d.value[0]&d.t.Mask) + 1
	case Data1:
		d.size = 2
	case Data2:
		d.size = 3
	case DataSizeSize:
		sizeSize := uint64(d.value[0]&d.t.Mask) + 1

		sizeBytes := make([]byte, sizeSize)
		err = d.read(sizeBytes)
		if err != nil {
			return 0, err
		}

		size := new(big.Int).SetBytes(sizeBytes)
		size.Add(size, big.NewInt(1))
		if !size.IsUint64() {
			return 0, Error.New("unimplemented: size >= 2^64")
		}

		d.size = size.Uint64()
	default:
		return 0, oops.Trace(ErrInvalidOperation)
	}

	return d.size, nil
}

// Data reads data bits and bytes from the field. If the field does not contain
// data it returns nil and ErrInvalidOperation.
func (d *decoder) Data() (data []byte, err error) {
	defer func() {
		if err != nil {
			d.data = nil
			d.err = err
		}
	}()

	switch d.t {
	case Data, DataSize, Data1, Data2, DataSizeSize:
	default:
		return nil, oops.Trace(ErrInvalidOperation)
	}

	if d.data != nil {
		return d.data, nil
	}

	_, err = d.Size()
	if err != nil {
		return nil, err
	}

	switch d.t {
	case Data:
		d.data = []byte{d.value[0] & d.t.Mask}
	case DataSize, DataSizeSize:
		if d.size > math.MaxInt64 {
			return nil, Error.New("unimplemented: size > 2^63")
		}

		// The size is untrusted input; grow with the data actually read.
		buf := &bytes.Buffer{}

		n, err := io.CopyN(buf, d.r, int64(d.size))
		d.consumed += uint64(n)
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}

			return nil, Error.Wrap(err)
		}

		d.data = buf.Bytes()
	case Data1, Data2:
		data = make([]byte, d.size)
		data[0] = d.value[0] & d.t.Mask

		err = d.read(data[1:])
		if err != nil {
			return nil, err
		}

		d.data = data
	}

	d.finished = true

	return d.data, nil
}
