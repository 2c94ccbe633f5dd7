package exact

import (
	"bytes"
	"errors"
	"io"

	"github.com/calebcase/exact/control"
	"github.com/calebcase/exact/integer"
)

// A value is written as two integer blocks: the numerator (signed) followed
// by the denominator (unsigned).
var (
	numSchema = integer.Schema{Signed: true}
	denSchema = integer.Schema{}
)

// Encoder writes values to an output stream.
type Encoder struct {
	num *integer.Encoder
	den *integer.Encoder
}

// NewEncoder returns an encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	ce := control.NewEncoder(w)

	return &Encoder{
		num: integer.NewEncoder(numSchema, ce),
		den: integer.NewEncoder(denSchema, ce),
	}
}

// Encode writes v.
func (e *Encoder) Encode(v Value) (err error) {
	defer Error.WrapP(&err)

	err = e.num.Encode(integer.FromBig(v.n()))
	if err != nil {
		return err
	}

	return e.den.Encode(integer.FromBig(v.d()))
}

// Decoder reads values from an input stream.
type Decoder struct {
	cd  control.Decoder
	num *integer.Decoder
	den *integer.Decoder
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	cd := control.NewDecoder(r)

	return &Decoder{
		cd:  cd,
		num: integer.NewDecoder(numSchema, cd),
		den: integer.NewDecoder(denSchema, cd),
	}
}

// Decode reads the next value into v. It returns io.EOF when the input ends
// before a value starts. Any pair read is reduced, so v is always canonical.
func (d *Decoder) Decode(v *Value) (err error) {
	var num, den integer.Block

	start := d.cd.Consumed()

	err = d.num.Decode(&num)
	if errors.Is(err, io.EOF) {
		if d.cd.Consumed() == start {
			return io.EOF
		}

		return Error.Wrap(io.ErrUnexpectedEOF)
	}
	if err != nil {
		return Error.Wrap(err)
	}

	err = d.den.Decode(&den)
	if errors.Is(err, io.EOF) {
		return Error.Wrap(io.ErrUnexpectedEOF)
	}
	if err != nil {
		return Error.Wrap(err)
	}

	*v = reduce(num.Big(), den.Big())

	return nil
}

// Consumed returns the number of bytes read so far.
func (d *Decoder) Consumed() uint64 {
	return d.cd.Consumed()
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (x Value) MarshalBinary() (data []byte, err error) {
	buf := &bytes.Buffer{}

	err = NewEncoder(buf).Encode(x)
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The data must hold
// exactly one value.
func (x *Value) UnmarshalBinary(data []byte) (err error) {
	defer Error.WrapP(&err)

	r := bytes.NewReader(data)
	d := NewDecoder(r)

	var v Value

	err = d.Decode(&v)
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	if err != nil {
		return err
	}

	if d.Consumed() != uint64(len(data)) {
		return Error.New("trailing data: %d bytes", uint64(len(data))-d.Consumed())
	}

	*x = v

	return nil
}
