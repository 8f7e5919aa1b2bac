// Package domain defines the value types and small contracts shared across
// cipherchat. It holds plain types (keys, roles, session states) and
// interfaces only; behaviour lives in crypto, session and transport.
package domain
