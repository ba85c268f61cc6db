// Package snow1 implements the core of SNOW 1.0, the synchronous stream
// cipher designed by Patrik Ekdahl and Thomas Johansson: a 16-stage LFSR
// over GF(2^32) combined with a two-word nonlinear finite state machine.
//
// This package is the cipher core only. It has no block-mode framing, no
// plaintext-XOR helper, no file I/O or CLI, and no test-vector formatter;
// those are an encryption driver's job, not this package's. A Cipher value
// produces a deterministic stream of uint32 keystream words from a key and
// an optional IV; combining that stream with data is left to the caller.
//
// A *Cipher holds all of its own state (the reference implementation keeps
// the LFSR, pointer and FSM as process-wide globals; this port doesn't).
// Multiple Ciphers may run concurrently on separate goroutines as long as
// each one is only ever touched by one goroutine at a time — same rule as
// crypto/cipher.Stream.
package snow1
