package suffixidx

import "errors"

var (
	// ErrEmptyText is returned by Build when the text has zero length; a
	// valid text always contains at least the sentinel byte.
	ErrEmptyText = errors.New("suffixidx: text must contain at least the sentinel byte")

	// ErrNoSentinel is returned by Build when the last byte of the text is
	// not strictly smaller than every other byte in the text.
	ErrNoSentinel = errors.New("suffixidx: text must end in a sentinel byte smaller than every other byte")

	// ErrSentinelNotUnique is returned by Build when the text ends in the
	// 0x00 sentinel and that byte also occurs earlier in the text.
	ErrSentinelNotUnique = errors.New("suffixidx: sentinel byte must not occur anywhere else in the text")

	// ErrWidthOverflow is returned when the chosen suffix-index integer
	// width cannot address every position in the text.
	ErrWidthOverflow = errors.New("suffixidx: index width too small for text length")
)
