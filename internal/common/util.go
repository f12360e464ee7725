// Package common contains shared constants and helpers used across
// the warnwave client components.
package common

// AuthorizationHeaderName is the HTTP header carrying the bearer token
// on authenticated backend requests.
const AuthorizationHeaderName = "Authorization"

// WipeByteArray overwrites the buffer with zeros. Callers use it to clear
// passphrases from memory as soon as they are no longer needed.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
