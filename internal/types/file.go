package types

// File is a file (column) on the board, A..H.
type File int8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
	FileNone
	FileLength = 8
)

var fileChars = "abcdefgh"

func (f File) IsValid() bool {
	return f >= FileA && f <= FileH
}

func (f File) String() string {
	if !f.IsValid() {
		return "-"
	}
	return string(fileChars[f])
}

// FileFromChar parses a lowercase file letter 'a'..'h'.
func FileFromChar(c byte) File {
	if c < 'a' || c > 'h' {
		return FileNone
	}
	return File(c - 'a')
}
