package escpos

import (
	"bytes"
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"loket/internal/config"
)

const (
	esc byte = 0x1B
	gs  byte = 0x1D
)

// Arguments to GS ! (character scale): width/height multipliers packed into
// one byte, high nibble width.
const (
	scaleNormal byte = 0x00
	scaleDouble byte = 0x11
	scaleTriple byte = 0x22
)

const (
	alignLeft   byte = 0
	alignCenter byte = 1
)

// Layout carries the fixed receipt text around the per-ticket fields.
type Layout struct {
	Header    string
	Subtitle  string
	Footer    []string
	FeedLines int
}

// LayoutFromConfig builds a Layout from the receipt section of the config.
func LayoutFromConfig(cfg *config.Config) Layout {
	return Layout{
		Header:    cfg.Receipt.Header,
		Subtitle:  cfg.Receipt.Subtitle,
		Footer:    append([]string(nil), cfg.Receipt.Footer...),
		FeedLines: cfg.Receipt.FeedLines,
	}
}

// Request holds the per-ticket fields printed on a receipt. CreatedAt is the
// stored timestamp string and is reproduced verbatim.
type Request struct {
	Code      string
	Counter   string
	Category  string
	CreatedAt string
}

type builder struct {
	buf bytes.Buffer
	enc *encoding.Encoder
}

func (b *builder) control(p ...byte) {
	b.buf.Write(p)
}

// text appends s transcoded to code page 437, the character set thermal
// printers default to. Unmappable runes are substituted rather than dropped.
func (b *builder) text(s string) {
	encoded, err := b.enc.Bytes([]byte(s))
	if err != nil {
		b.buf.WriteString(s)
		return
	}
	b.buf.Write(encoded)
}

// Encode renders a complete receipt as one ESC/POS byte stream. The stream
// initializes the printer, prints the banner and ticket fields, feeds, and
// issues a full cut, so a single write is a complete print job.
func Encode(layout Layout, req Request) []byte {
	b := builder{
		enc: encoding.ReplaceUnsupported(charmap.CodePage437.NewEncoder()),
	}

	b.control(esc, '@')

	b.control(esc, 'a', alignCenter)
	b.control(gs, '!', scaleDouble)
	b.text(layout.Header + "\n")
	b.control(gs, '!', scaleNormal)
	b.text(layout.Subtitle + "\n\n")

	b.control(gs, '!', scaleTriple)
	b.text(req.Code + "\n\n")
	b.control(gs, '!', scaleNormal)

	b.control(esc, 'a', alignLeft)
	b.text(fmt.Sprintf("Loket: %s\n", req.Counter))
	b.text(fmt.Sprintf("Jenis: %s\n", req.Category))
	b.text(fmt.Sprintf("Waktu: %s\n\n", req.CreatedAt))

	b.control(esc, 'a', alignCenter)
	for _, line := range layout.Footer {
		b.text(line + "\n")
	}
	b.text("\n\n")

	b.control(esc, 'd', byte(layout.FeedLines))
	b.control(gs, 'V', 0x00)

	return b.buf.Bytes()
}
