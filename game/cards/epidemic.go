package cards

import (
	"math/rand/v2"
	"slices"

	"github.com/wricardo/mcp-training/pandemic/game/deck"
)

// ChunkSizes splits m cards into n piles whose sizes differ by at most one.
// The first m mod n piles get the extra card.
func ChunkSizes(m, n int) []int {
	if n <= 0 {
		return nil
	}
	sizes := make([]int, n)
	for i := range sizes {
		sizes[i] = m / n
		if i < m%n {
			sizes[i]++
		}
	}
	return sizes
}

// AddEpidemicCards seeds n epidemic cards into d. The pile is cut into n
// chunks from the top down, one epidemic is added to each chunk, every
// chunk is shuffled on its own and the chunks are stacked back in their
// original order, so exactly one epidemic falls in each slice of the game.
func AddEpidemicCards(d *deck.Deck[PlayerCard], n int, r *rand.Rand) {
	if n <= 0 {
		return
	}
	topFirst := d.Cards()
	slices.Reverse(topFirst)

	result := make([]PlayerCard, 0, len(topFirst)+n)
	offset := 0
	for _, size := range ChunkSizes(len(topFirst), n) {
		chunk := deck.New(topFirst[offset : offset+size]...)
		offset += size
		chunk.PushTop(EpidemicCard())
		chunk.Shuffle(r)
		result = append(result, chunk.Cards()...)
	}

	slices.Reverse(result)
	rebuilt := deck.New(result...)
	for !d.Empty() {
		d.DrawTop()
	}
	d.Append(rebuilt)
}
