package ucd

import (
	"fmt"
	"io"

	"github.com/npillmayer/ucd/internal/ucdparse"
)

// NoBlock is the block name reported for codepoints not covered by any
// block definition. This is a deliberate non-error default, per the
// Blocks.txt file header.
const NoBlock = "No_Block"

// Blocks encapsulates the block definitions of Blocks.txt: an ordered
// sequence of disjoint codepoint ranges, each carrying a block name.
// The store is built once by NewBlocks and immutable afterwards.
type Blocks struct {
	blocks []blockRange
}

// blockRange is one (range, name) interval record, in file order.
type blockRange struct {
	from, to rune
	name     string
}

// NewBlocks builds a block index from Blocks.txt-format input,
// preserving file order.
func NewBlocks(r io.Reader) (*Blocks, error) {
	b := &Blocks{}
	err := ucdparse.Parse(r, func(token *ucdparse.Token) error {
		from, to := token.Range()
		b.blocks = append(b.blocks, blockRange{from: from, to: to, name: token.Field(1)})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load Unicode block info: %w", err)
	}
	CT().Debugf("loaded %d Unicode blocks", len(b.blocks))
	return b, nil
}

// Len returns the number of block definitions loaded.
func (b *Blocks) Len() int {
	return len(b.blocks)
}

// Lookup returns the name of the block containing a Unicode scalar
// value. Ranges are probed in file order and the first containing range
// wins; codepoints outside every block yield NoBlock.
func (b *Blocks) Lookup(r rune) string {
	for _, blk := range b.blocks {
		if r >= blk.from && r <= blk.to {
			return blk.name
		}
	}
	return NoBlock
}

// LookupChar returns the name of the block containing a single
// character, given as a one-codepoint string.
func (b *Blocks) LookupChar(c string) (string, error) {
	r, err := charToRune(c)
	if err != nil {
		return "", err
	}
	return b.Lookup(r), nil
}
