package converter

import "errors"

var (
	// ErrNoInput indicates that no input document was supplied.
	ErrNoInput = errors.New("input HTML is absent")
	// ErrNotText indicates that the input is not valid UTF-8 text.
	ErrNotText = errors.New("input is not valid UTF-8 text")
	// ErrSizeLimit indicates that the input exceeds the configured size cap.
	ErrSizeLimit = errors.New("input HTML exceeds size limit")
	// ErrParse indicates that the input could not be parsed, even after
	// falling back to fragment parsing.
	ErrParse = errors.New("input HTML could not be parsed")
)
