package world

import (
	"encoding/binary"
	"github.com/klauspost/compress/zstd"
	"io"
)

// encoder writes fixed-size values in little endian. The first error sticks
// and every write after it is skipped.
type encoder struct {
	w   io.Writer
	err error
}

func (e *encoder) write(data any) {
	if e.err != nil {
		return
	}
	e.err = binary.Write(e.w, binary.LittleEndian, data)
}

func (e *encoder) writeString(s string) {
	e.write(int64(len(s)))
	e.write([]byte(s))
}

func writeSlice[T any](e *encoder, s []T) {
	e.write(int64(len(s)))
	e.write(s)
}

// decoder is the reading counterpart of encoder.
type decoder struct {
	r   io.Reader
	err error
}

func (d *decoder) read(data any) {
	if d.err != nil {
		return
	}
	d.err = binary.Read(d.r, binary.LittleEndian, data)
}

func (d *decoder) readString() string {
	b := readSlice[byte](d)
	return string(b)
}

// maxSliceLen guards against allocating absurd amounts of memory for a
// corrupted length prefix.
const maxSliceLen = 1 << 26

func readSlice[T any](d *decoder) []T {
	var n int64
	d.read(&n)
	if d.err != nil {
		return nil
	}
	if n < 0 || n > maxSliceLen {
		d.err = io.ErrUnexpectedEOF
		return nil
	}
	s := make([]T, n)
	d.read(s)
	return s
}

// Zip compresses data with zstd.
func Zip(data []byte) []byte {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		// Only possible with invalid options.
		panic(err)
	}
	defer func() { _ = enc.Close() }()
	return enc.EncodeAll(data, nil)
}

// Unzip reverses Zip.
func Unzip(data []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return dec.DecodeAll(data, nil)
}
