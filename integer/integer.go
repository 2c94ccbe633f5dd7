// Package integer encodes arbitrary size integers as control blocks.
//
// Signed integers are laid out big-endian with a trailing sign bit (aka
// zigzag): the magnitude is shifted left by one and bit 0 is set for negative
// values. Unsigned integers are laid out big-endian as is.
package integer

import (
	"io"
	"math/big"

	"github.com/calebcase/exact/control"
)

// Block is a signed integer number. A nil Value is the null integer.
type Block struct {
	Value    []byte
	Negative bool
}

// FromBig returns the block holding the value of i.
func FromBig(i *big.Int) *Block {
	data := new(big.Int).Abs(i).Bytes()

	// Note: big.Int encodes zero as an empty byte array, but we
	// desire zero to be an actual zero byte.
	if len(data) == 0 {
		data = []byte{0}
	}

	return &Block{
		Value:    data,
		Negative: i.Sign() < 0,
	}
}

// Big returns the value of the block as a new big.Int. The null integer is
// returned as nil.
func (b Block) Big() *big.Int {
	if b.Value == nil {
		return nil
	}

	i := new(big.Int).SetBytes(b.Value)
	if b.Negative {
		i.Neg(i)
	}

	return i
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (b Block) MarshalBinary() (data []byte, err error) {
	i := new(big.Int).SetBytes(b.Value)

	i.Lsh(i, 1)
	if b.Negative {
		i.SetBit(i, 0, 1)
	}

	data = i.Bytes()

	// Note: big.Int encodes zero as an empty byte array, but we
	// desire zero to be an actual zero byte.
	if len(data) == 0 {
		data = []byte{0}
	}

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *Block) UnmarshalBinary(data []byte) (err error) {
	i := new(big.Int).SetBytes(data)

	b.Negative = i.Bit(0) == 1
	i.Rsh(i, 1)

	data = i.Bytes()

	// Note: big.Int encodes zero as an empty byte array, but we
	// desire zero to be an actual zero byte.
	if len(data) == 0 {
		data = []byte{0}
	}

	b.Value = data

	return nil
}

// Schema for an integer.
type Schema struct {
	// Bits limits the magnitude of the integer. Zero means unbounded.
	Bits uint64

	Signed   bool
	Nullable bool
}

func (s Schema) check(b *Block) (err error) {
	if b.Value == nil {
		if !s.Nullable {
			return Error.New("null integer in non-nullable schema")
		}

		return nil
	}

	i := new(big.Int).SetBytes(b.Value)

	if b.Negative && !s.Signed && i.Sign() != 0 {
		return Error.New("negative integer in unsigned schema")
	}

	if s.Bits != 0 && uint64(i.BitLen()) > s.Bits {
		return Error.New("integer exceeds schema: bits=%d limit=%d", i.BitLen(), s.Bits)
	}

	return nil
}

// Decoder is a decoder.
type Decoder struct {
	schema Schema
	cd     control.Decoder
}

// NewDecoder returns a new decoder.
func NewDecoder(schema Schema, cd control.Decoder) *Decoder {
	return &Decoder{
		schema: schema,
		cd:     cd,
	}
}

// Decode parses a block from the reader. At the end of the input it returns
// an error wrapping io.EOF.
func (d *Decoder) Decode(b *Block) (err error) {
	defer Error.WrapP(&err)

	if !d.cd.Next() {
		if d.cd.Err() != nil {
			return d.cd.Err()
		}

		return io.EOF
	}

	if d.cd.Type() == control.Null {
		b.Value = nil
		b.Negative = false

		return d.schema.check(b)
	}

	data, err := d.cd.Data()
	if err != nil {
		return err
	}

	if d.schema.Signed {
		err = b.UnmarshalBinary(data)
		if err != nil {
			return err
		}
	} else {
		b.Value = data
		b.Negative = false
	}

	return d.schema.check(b)
}

// Encoder is an encoder.
type Encoder struct {
	schema Schema
	ce     control.Encoder
}

// NewEncoder returns a new encoder.
func NewEncoder(schema Schema, ce control.Encoder) *Encoder {
	return &Encoder{
		schema: schema,
		ce:     ce,
	}
}

// Encode write a block to the writer.
func (e *Encoder) Encode(b *Block) (err error) {
	defer Error.WrapP(&err)

	err = e.schema.check(b)
	if err != nil {
		return err
	}

	if b.Value == nil {
		return e.ce.Null()
	}

	var data []byte

	if e.schema.Signed {
		data, err = b.MarshalBinary()
		if err != nil {
			return err
		}
	} else {
		data = new(big.Int).SetBytes(b.Value).Bytes()

		// Note: big.Int encodes zero as an empty byte array, but we
		// desire zero to be an actual zero byte.
		if len(data) == 0 {
			data = []byte{0}
		}
	}

	return e.ce.Data(data)
}
