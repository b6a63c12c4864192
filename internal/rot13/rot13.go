// Package rot13 implements the ROT13 substitution cipher over the ASCII
// Latin alphabet. Encoding and decoding are the same operation.
package rot13

var table = func() [128]byte {
	var t [128]byte
	for i := range t {
		t[i] = byte(i)
	}
	for i := byte(0); i < 26; i++ {
		t['a'+i] = 'a' + (i+13)%26
		t['A'+i] = 'A' + (i+13)%26
	}
	return t
}()

// Transform rotates every ASCII letter in s by 13 places within its case.
// All other bytes, including every byte of a multi-byte UTF-8 sequence,
// are copied unchanged, so len(Transform(s)) == len(s).
func Transform(s string) string {
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b < 128 {
			b = table[b]
		}
		out[i] = b
	}
	return string(out)
}
