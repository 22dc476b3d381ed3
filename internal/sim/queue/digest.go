package queue

import (
	"crypto/sha256"
	"encoding/hex"

	"ticksim.ai/internal/sim/digestcodec"
)

// Digest hashes the round counter and every actor's counter and queue in
// index order. Equal digests mean equal simulation state.
func (s *Simulator) Digest() string {
	h := sha256.New()
	var tmp [8]byte

	digestcodec.WriteU64(h, &tmp, s.round)
	digestcodec.WriteU64(h, &tmp, uint64(len(s.actors)))
	for i, a := range s.actors {
		digestcodec.WriteU64(h, &tmp, uint64(a.inspected))
		digestcodec.WriteU64(h, &tmp, uint64(len(s.queues[i])))
		for _, w := range s.queues[i] {
			digestWorry(h, &tmp, w)
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Promoted values never fit an int64, so the tag keeps encodings distinct.
func digestWorry(h digestcodec.Writer, tmp *[8]byte, w Worry) {
	if w.big == nil {
		h.Write([]byte{0})
		digestcodec.WriteI64(h, tmp, w.n)
		return
	}
	h.Write([]byte{1, byte(w.big.Sign() + 1)})
	digestcodec.WriteBytes(h, tmp, w.big.Bytes())
}
