package hangman

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

const (
	EncodingUTF8  = "utf-8"
	EncodingCP866 = "cp866"
)

var ErrUnknownInputEncoding = errors.New("unknown input encoding")

// DecodeInput wraps in so that it yields UTF-8. An empty encoding means UTF-8.
// cp866 is the DOS Cyrillic code page some Windows consoles still send.
func DecodeInput(in io.Reader, encoding string) (io.Reader, error) {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "", EncodingUTF8, "utf8":
		return in, nil
	case EncodingCP866, "ibm866":
		return charmap.CodePage866.NewDecoder().Reader(in), nil
	default:
		return nil, errors.Join(ErrUnknownInputEncoding, fmt.Errorf("encoding %q", encoding))
	}
}
