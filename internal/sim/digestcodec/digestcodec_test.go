package digestcodec

import (
	"bytes"
	"testing"
)

func TestWriteI64_LittleEndian(t *testing.T) {
	var buf bytes.Buffer
	var tmp [8]byte
	WriteI64(&buf, &tmp, -1)
	WriteU64(&buf, &tmp, 0x0102)
	want := []byte{
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0x02, 0x01, 0, 0, 0, 0, 0, 0,
	}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("got %x want %x", buf.Bytes(), want)
	}
}

func TestWriteBytes_LengthPrefixed(t *testing.T) {
	var a, b bytes.Buffer
	var tmp [8]byte
	WriteBytes(&a, &tmp, []byte("ab"))
	WriteBytes(&a, &tmp, []byte("c"))
	WriteBytes(&b, &tmp, []byte("a"))
	WriteBytes(&b, &tmp, []byte("bc"))
	if bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Fatalf("split points must change the encoding")
	}
	if a.Len() != 8+2+8+1 {
		t.Fatalf("encoded length %d", a.Len())
	}
}
