// Package crypto exposes the primitives used by cipherchat.
//
// Contents
//
//   - Overflow-free 64-bit modular exponentiation (ModExp)
//   - 64-bit finite-field Diffie–Hellman over a fixed Group (GenerateKeyPair,
//     ComputeSecret, DefaultP, DefaultG)
//   - The rotating-register XOR stream cipher (Transform)
//   - Short shared-secret fingerprints for out-of-band comparison (Fingerprint)
//
// # Security notes
//
// None of this is strong cryptography. A 64-bit group is within reach of
// discrete-log attacks, the exchange is unauthenticated, and Transform
// restarts its keystream at offset zero on every call, so it behaves as a
// repeating 8-byte key. The behaviour is kept bit-for-bit because peers must
// interoperate with the existing wire format.
package crypto
