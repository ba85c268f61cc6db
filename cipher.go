package snow1

// Mode selects the key-loading variant. Per spec section 3 the values
// double as both the mode tag and the initial-mixing clock count, so
// LoadKey's initial loop runs exactly int(mode) times.
type Mode uint32

const (
	// StandardMode ignores IV1/IV2 and runs 64 initial feedback clocks.
	StandardMode Mode = 64
	// IVMode XORs IV1 into LFSR[0] and IV2 into LFSR[3], then runs 32
	// initial feedback clocks.
	IVMode Mode = 32
)

// Cipher is one SNOW 1.0 keystream generator. It owns its LFSR, FSM and
// pointer; nothing about it is shared across instances (Design Notes
// section 9), so independent Ciphers may run on separate goroutines
// without synchronization. A single Cipher's LoadKey/Keystream calls
// must be strictly sequential — there is no internal locking.
type Cipher struct {
	lfsr lfsrState
	fsm  fsmState
}

// NewCipher allocates a Cipher and loads it with key. See LoadKey for the
// parameter contract.
func NewCipher(key []byte, keyBits int, mode Mode, iv2, iv1 uint32) (*Cipher, error) {
	c := new(Cipher)
	if err := c.LoadKey(key, keyBits, mode, iv2, iv1); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadKey expands key into the 16-word LFSR, resets the FSM, and runs the
// initial-mixing loop (spec section 4.4). keyBits must be 128 or 256; key
// must hold at least keyBits/8 bytes, big-endian (key[0] is the MSB of
// LFSR[0]); mode must be StandardMode or IVMode.
//
// All validation happens before any receiver state is touched, so a
// failed call leaves a pre-existing Cipher exactly as it was (spec
// section 7's atomicity requirement) — calling LoadKey again after an
// error, or for the first time, is the only supported recovery.
//
// A successful call fully determines every field from its arguments;
// nothing carries over from a previous load, satisfying the "re-load
// resets" property in spec section 8.
func (c *Cipher) LoadKey(key []byte, keyBits int, mode Mode, iv2, iv1 uint32) error {
	if err := validateKeyBits(keyBits); err != nil {
		return err
	}
	if err := validateMode(mode); err != nil {
		return err
	}
	if err := validateKeyLength(key, keyBits); err != nil {
		return err
	}

	var lfsr lfsrState
	parsed := keyBits / 32
	for i := 0; i < parsed; i++ {
		lfsr.word[i] = beWord(key[4*i : 4*i+4])
	}

	if keyBits == 128 {
		for i := 0; i < 4; i++ {
			lfsr.word[4+i] = ^lfsr.word[i]
			lfsr.word[8+i] = lfsr.word[i]
			lfsr.word[12+i] = ^lfsr.word[i]
		}
	} else {
		for i := 0; i < 8; i++ {
			lfsr.word[8+i] = ^lfsr.word[i]
		}
	}

	if mode == IVMode {
		lfsr.word[0] ^= iv1
		lfsr.word[3] ^= iv2
	}

	lfsr.mirror()
	lfsr.ptr = lfsrLen - 1

	c.lfsr = lfsr
	c.fsm = fsmState{}
	c.updateInternals()

	for i := 0; i < int(mode); i++ {
		c.feedbackClock()
		c.updateInternals()
	}
	return nil
}

func beWord(b []byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

// updateInternals re-primes fsm.out, fsm.nextR1 and fsm.nextR2 from the
// current (pre-clock) LFSR and FSM. It is idempotent given unchanged
// inputs and mutates no LFSR state (spec section 4.3).
func (c *Cipher) updateInternals() {
	c.fsm.update(c.lfsr.at(1))
}

// lfsrStep computes one feedback symbol and clocks the LFSR and FSM.
// withFSM selects feedbackClock's extra FSM-output term.
func (c *Cipher) lfsrStep(withFSM bool) {
	feedback := c.lfsr.at(7) ^ c.lfsr.at(13) ^ c.lfsr.at(16)
	if withFSM {
		feedback ^= c.fsm.out
	}
	feedback = alphaMul(feedback)
	c.lfsr.write(feedback)
	c.lfsr.advance()
	c.fsm.commit()
}

// clock performs a standard LFSR step with no FSM feedback, then commits
// the FSM (spec section 4.3).
func (c *Cipher) clock() {
	c.lfsrStep(false)
}

// feedbackClock is clock, except the FSM's current output is folded into
// the feedback symbol. Used only during initial mixing (spec section
// 4.3/4.4).
func (c *Cipher) feedbackClock() {
	c.lfsrStep(true)
}

// Keystream returns the next 32-bit keystream word and advances the
// cipher by exactly one logical clock (spec section 4.5). It cannot fail.
func (c *Cipher) Keystream() uint32 {
	rk := c.fsm.out ^ c.lfsr.at(16)
	c.clock()
	c.updateInternals()
	return rk
}
