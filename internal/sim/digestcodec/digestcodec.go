package digestcodec

import "encoding/binary"

type Writer interface {
	Write(p []byte) (n int, err error)
}

func WriteU64(w Writer, tmp *[8]byte, v uint64) {
	binary.LittleEndian.PutUint64(tmp[:], v)
	w.Write(tmp[:])
}

func WriteI64(w Writer, tmp *[8]byte, v int64) {
	WriteU64(w, tmp, uint64(v))
}

// WriteBytes emits a length prefix followed by b.
func WriteBytes(w Writer, tmp *[8]byte, b []byte) {
	WriteU64(w, tmp, uint64(len(b)))
	w.Write(b)
}
