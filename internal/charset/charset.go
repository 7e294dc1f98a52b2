// Package charset holds the constant character tables shared across voca.
package charset

// Version is the voca release the behaviour of this module tracks.
const Version = "1.11.0"

const (
	ASCIILowercase = "abcdefghijklmnopqrstuvwxyz"
	ASCIIUppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	ASCIILetters   = ASCIILowercase + ASCIIUppercase
	Digits         = "0123456789"
	HexDigits      = "0123456789abcdefABCDEF"
	OctDigits      = "01234567"
	Punctuation    = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
	Whitespace     = " \t\n\r"
	Printable      = Digits + ASCIILetters + Punctuation + Whitespace
)
