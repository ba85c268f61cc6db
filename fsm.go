package snow1

import "math/bits"

// fsmState is the FSM's two registers plus the precomputed values spec
// section 4.2 requires: next is what r1/r2 will become at the next clock,
// out is the word the FSM currently exposes (to keystream production and,
// during initial mixing, to LFSR feedback).
type fsmState struct {
	r1, r2         uint32
	nextR1, nextR2 uint32
	out            uint32
}

// update recomputes out, nextR1 and nextR2 from the current r1, r2, and
// the LFSR's tap one position ahead of the pointer. It does not mutate
// r1 or r2 themselves — the derive/commit split spec section 4.2 and
// section 4.3 call out as essential, since out must still reflect the
// pre-clock FSM when it's consumed by feedbackClock or Keystream.
func (f *fsmState) update(lfsrTap1 uint32) {
	f.out = (f.r1 + lfsrTap1) ^ f.r2
	tmp := f.out + f.r2
	tmp = bits.RotateLeft32(tmp, 7)
	f.nextR1 = tmp ^ f.r1
	f.nextR2 = sboxCompose(f.r1)
}

// commit advances r1/r2 to the values update last derived.
func (f *fsmState) commit() {
	f.r1 = f.nextR1
	f.r2 = f.nextR2
}
