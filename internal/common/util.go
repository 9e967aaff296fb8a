package common

// WipeByteArray zeroes a buffer holding sensitive data, such as a password
// read from the terminal. Safe to call with nil.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
