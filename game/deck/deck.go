// Package deck provides an ordered pile of cards that can be drawn from and
// pushed to at either end.
package deck

import "math/rand/v2"

// Deck is an ordered pile. The last element of cards is the top.
type Deck[T any] struct {
	cards []T
}

// New creates a deck from cards listed bottom first.
func New[T any](cards ...T) *Deck[T] {
	d := &Deck[T]{cards: make([]T, len(cards))}
	copy(d.cards, cards)
	return d
}

// Len returns the number of cards in the pile.
func (d *Deck[T]) Len() int {
	return len(d.cards)
}

// Empty reports whether the pile has no cards.
func (d *Deck[T]) Empty() bool {
	return len(d.cards) == 0
}

func (d *Deck[T]) PushTop(c T) {
	d.cards = append(d.cards, c)
}

func (d *Deck[T]) PushBottom(c T) {
	d.cards = append(d.cards, c)
	copy(d.cards[1:], d.cards[:len(d.cards)-1])
	d.cards[0] = c
}

// DrawTop removes and returns the top card. ok is false on an empty pile.
func (d *Deck[T]) DrawTop() (c T, ok bool) {
	if len(d.cards) == 0 {
		return c, false
	}
	last := len(d.cards) - 1
	c = d.cards[last]
	var zero T
	d.cards[last] = zero
	d.cards = d.cards[:last]
	return c, true
}

// DrawBottom removes and returns the bottom card.
func (d *Deck[T]) DrawBottom() (c T, ok bool) {
	if len(d.cards) == 0 {
		return c, false
	}
	c = d.cards[0]
	d.cards = append(d.cards[:0], d.cards[1:]...)
	return c, true
}

// Shuffle permutes the pile uniformly with a Fisher-Yates pass driven by r.
func (d *Deck[T]) Shuffle(r *rand.Rand) {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Append moves every card of other onto the top of d, keeping other's
// order: other's top card becomes d's top card. other is left empty.
func (d *Deck[T]) Append(other *Deck[T]) {
	if other == nil || other == d {
		return
	}
	d.cards = append(d.cards, other.cards...)
	clear(other.cards)
	other.cards = other.cards[:0]
}

// Cards returns a copy of the pile, bottom first.
func (d *Deck[T]) Cards() []T {
	out := make([]T, len(d.cards))
	copy(out, d.cards)
	return out
}

// Peek returns up to n cards from the top without removing them, top first.
func (d *Deck[T]) Peek(n int) []T {
	if n > len(d.cards) {
		n = len(d.cards)
	}
	if n <= 0 {
		return nil
	}
	out := make([]T, 0, n)
	for i := len(d.cards) - 1; i >= len(d.cards)-n; i-- {
		out = append(out, d.cards[i])
	}
	return out
}

// Take removes and returns the card nearest the top that matches pred.
func (d *Deck[T]) Take(pred func(T) bool) (c T, ok bool) {
	for i := len(d.cards) - 1; i >= 0; i-- {
		if pred(d.cards[i]) {
			c = d.cards[i]
			d.cards = append(d.cards[:i], d.cards[i+1:]...)
			return c, true
		}
	}
	return c, false
}

// Contains reports whether any card matches pred.
func (d *Deck[T]) Contains(pred func(T) bool) bool {
	for _, c := range d.cards {
		if pred(c) {
			return true
		}
	}
	return false
}
