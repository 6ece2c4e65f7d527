// Package codec encodes and decodes message variants into the fixed,
// positional little-endian wire format described by the channel's
// encoder id.
package codec

import (
	"encoding/binary"
	"fmt"
	"math"
)

// EncoderID identifies the wire format this package produces and consumes.
// A decoder with a different id than the encoder that produced a block is
// not required to succeed; transport.Connect refuses peers whose ids
// differ.
const EncoderID uint32 = 41

// maxSeqLen bounds a single decoded sequence length, guarding against a
// corrupt or hostile length prefix requesting an absurd allocation before
// the subsequent bounds check (below) would otherwise catch it.
const maxSeqLen = 1 << 24

type writer struct {
	buf []byte
}

func (w *writer) u8(v uint8) { w.buf = append(w.buf, v) }
func (w *writer) boolean(v bool) {
	if v {
		w.u8(1)
	} else {
		w.u8(0)
	}
}

func (w *writer) u32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

func (w *writer) u64(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

func (w *writer) i32(v int32) { w.u32(uint32(v)) }

func (w *writer) f32(v float32) { w.u32(math.Float32bits(v)) }

func (w *writer) bytes(b []byte) {
	w.u32(uint32(len(b)))
	w.buf = append(w.buf, b...)
}

func (w *writer) str(s string) { w.bytes([]byte(s)) }

func (w *writer) strSlice(ss []string) {
	w.u32(uint32(len(ss)))
	for _, s := range ss {
		w.str(s)
	}
}

func (w *writer) u32Slice(vs []uint32) {
	w.u32(uint32(len(vs)))
	for _, v := range vs {
		w.u32(v)
	}
}

func (w *writer) i32Slice(vs []int32) {
	w.u32(uint32(len(vs)))
	for _, v := range vs {
		w.i32(v)
	}
}

func (w *writer) f32Slice(vs []float32) {
	w.u32(uint32(len(vs)))
	for _, v := range vs {
		w.f32(v)
	}
}

type reader struct {
	buf []byte
	pos int
}

func (r *reader) remaining() int { return len(r.buf) - r.pos }

func (r *reader) need(n int) error {
	if r.remaining() < n {
		return fmt.Errorf("codec: truncated input, need %d bytes, have %d", n, r.remaining())
	}
	return nil
}

func (r *reader) u8() (uint8, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	v := r.buf[r.pos]
	r.pos++
	return v, nil
}

func (r *reader) boolean() (bool, error) {
	v, err := r.u8()
	return v != 0, err
}

func (r *reader) u32() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(r.buf[r.pos:])
	r.pos += 4
	return v, nil
}

func (r *reader) u64() (uint64, error) {
	if err := r.need(8); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint64(r.buf[r.pos:])
	r.pos += 8
	return v, nil
}

func (r *reader) i32() (int32, error) {
	v, err := r.u32()
	return int32(v), err
}

func (r *reader) f32() (float32, error) {
	v, err := r.u32()
	return math.Float32frombits(v), err
}

func (r *reader) bytes() ([]byte, error) {
	n, err := r.u32()
	if err != nil {
		return nil, err
	}
	if n > maxSeqLen {
		return nil, fmt.Errorf("codec: declared length %d exceeds maximum", n)
	}
	if err := r.need(int(n)); err != nil {
		return nil, err
	}
	b := make([]byte, n)
	copy(b, r.buf[r.pos:r.pos+int(n)])
	r.pos += int(n)
	return b, nil
}

func (r *reader) str() (string, error) {
	b, err := r.bytes()
	return string(b), err
}

func (r *reader) strSlice() ([]string, error) {
	n, err := r.u32()
	if err != nil {
		return nil, err
	}
	if n > maxSeqLen {
		return nil, fmt.Errorf("codec: declared sequence length %d exceeds maximum", n)
	}
	out := make([]string, n)
	for i := range out {
		out[i], err = r.str()
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r *reader) u32Slice() ([]uint32, error) {
	n, err := r.u32()
	if err != nil {
		return nil, err
	}
	if n > maxSeqLen || r.remaining() < int(n)*4 {
		return nil, fmt.Errorf("codec: declared sequence length %d exceeds remaining bytes", n)
	}
	out := make([]uint32, n)
	for i := range out {
		out[i], err = r.u32()
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r *reader) i32Slice() ([]int32, error) {
	n, err := r.u32()
	if err != nil {
		return nil, err
	}
	if n > maxSeqLen || r.remaining() < int(n)*4 {
		return nil, fmt.Errorf("codec: declared sequence length %d exceeds remaining bytes", n)
	}
	out := make([]int32, n)
	for i := range out {
		out[i], err = r.i32()
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r *reader) f32Slice() ([]float32, error) {
	n, err := r.u32()
	if err != nil {
		return nil, err
	}
	if n > maxSeqLen || r.remaining() < int(n)*4 {
		return nil, fmt.Errorf("codec: declared sequence length %d exceeds remaining bytes", n)
	}
	out := make([]float32, n)
	for i := range out {
		out[i], err = r.f32()
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
