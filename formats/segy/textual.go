// SPDX-License-Identifier: EPL-2.0

package segy

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// TextEncoding selects the character set of the textual file header.
type TextEncoding int

const (
	TextEBCDIC TextEncoding = iota
	TextASCII
)

const (
	cardCount = 40
	cardWidth = 80
)

// TextualCards lays out lines as 40 card images of 80 columns prefixed with
// "C 1 " .. "C40 ". Missing lines are blank and long lines are cut. Characters
// outside printable ASCII are replaced by '?'.
func TextualCards(lines []string) []byte {
	out := make([]byte, 0, TextualHeaderSize)

	for i := range cardCount {
		var text string
		if i < len(lines) {
			text = sanitize(lines[i])
		}

		card := fmt.Sprintf("C%2d %s", i+1, text)
		if len(card) > cardWidth {
			card = card[:cardWidth]
		}
		out = append(out, card...)
		out = append(out, strings.Repeat(" ", cardWidth-len(card))...)
	}

	return out
}

func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r > 0x7E {
			return '?'
		}
		return r
	}, s)
}

func encodeTextual(cards []byte, enc TextEncoding) ([]byte, error) {
	if enc == TextASCII {
		return cards, nil
	}

	b, err := charmap.CodePage037.NewEncoder().Bytes(cards)
	if err != nil {
		return nil, fmt.Errorf("textual header: %w", err)
	}

	return b, nil
}

// isEBCDIC reports whether a textual header looks EBCDIC encoded. Card images
// start with 'C', which is 0xC3 in EBCDIC and 0x43 in ASCII.
func isEBCDIC(raw []byte) bool {
	if len(raw) == 0 {
		return false
	}
	if raw[0] == 0xC3 {
		return true
	}
	if raw[0] == 'C' {
		return false
	}

	high := 0
	for _, c := range raw {
		if c >= 0x80 {
			high++
		}
	}
	return high > len(raw)/2
}

// decodeTextual returns the card images of a textual header with trailing
// blanks removed.
func decodeTextual(raw []byte) ([]string, TextEncoding, error) {
	enc := TextASCII
	if isEBCDIC(raw) {
		enc = TextEBCDIC
	}

	dec := charmap.CodePage037.NewDecoder()
	lines := make([]string, 0, cardCount)

	for i := 0; i+cardWidth <= len(raw); i += cardWidth {
		card := raw[i : i+cardWidth]
		if enc == TextEBCDIC {
			b, err := dec.Bytes(card)
			if err != nil {
				return nil, enc, fmt.Errorf("textual header: %w", err)
			}
			card = b
		}
		lines = append(lines, strings.TrimRight(string(card), " \x00"))
	}

	return lines, enc, nil
}
