package deck

import (
	"math/rand/v2"
	"slices"
	"testing"
)

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func TestPushTopThenDrawTopIsIdentity(t *testing.T) {
	d := New(1, 2, 3)
	d.PushTop(9)
	got, ok := d.DrawTop()
	if !ok || got != 9 {
		t.Fatalf("DrawTop() = %d, %v; want 9, true", got, ok)
	}
	if !slices.Equal(d.Cards(), []int{1, 2, 3}) {
		t.Errorf("Deck changed: %v", d.Cards())
	}
}

func TestDrawBothEnds(t *testing.T) {
	d := New(1, 2, 3)
	d.PushBottom(0)
	if !slices.Equal(d.Cards(), []int{0, 1, 2, 3}) {
		t.Fatalf("PushBottom: got %v", d.Cards())
	}
	if c, _ := d.DrawBottom(); c != 0 {
		t.Errorf("DrawBottom() = %d, want 0", c)
	}
	if c, _ := d.DrawTop(); c != 3 {
		t.Errorf("DrawTop() = %d, want 3", c)
	}
	if d.Len() != 2 {
		t.Errorf("Len() = %d, want 2", d.Len())
	}
}

func TestDrawEmpty(t *testing.T) {
	d := New[string]()
	if _, ok := d.DrawTop(); ok {
		t.Error("DrawTop on empty deck should fail")
	}
	if _, ok := d.DrawBottom(); ok {
		t.Error("DrawBottom on empty deck should fail")
	}
	if !d.Empty() {
		t.Error("Expected empty deck")
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	cards := make([]int, 53)
	for i := range cards {
		cards[i] = i
	}
	d := New(cards...)
	d.Shuffle(newRand(7))

	got := d.Cards()
	if slices.Equal(got, cards) {
		t.Error("Shuffle left a 53-card deck untouched")
	}
	slices.Sort(got)
	if !slices.Equal(got, cards) {
		t.Errorf("Shuffle changed the multiset: %v", got)
	}
}

func TestShuffleIsDeterministicPerSeed(t *testing.T) {
	a := New(1, 2, 3, 4, 5, 6, 7, 8)
	b := New(1, 2, 3, 4, 5, 6, 7, 8)
	a.Shuffle(newRand(42))
	b.Shuffle(newRand(42))
	if !slices.Equal(a.Cards(), b.Cards()) {
		t.Errorf("Same seed produced %v and %v", a.Cards(), b.Cards())
	}
}

// Every position must be reachable by every card, which the off-by-one
// exclusive-bound variant fails.
func TestShuffleReachesEveryPosition(t *testing.T) {
	r := newRand(1)
	var seen [3][3]bool
	for range 300 {
		d := New(0, 1, 2)
		d.Shuffle(r)
		for pos, c := range d.Cards() {
			seen[c][pos] = true
		}
	}
	for c := range seen {
		for pos := range seen[c] {
			if !seen[c][pos] {
				t.Errorf("Card %d never landed at position %d", c, pos)
			}
		}
	}
}

func TestAppend(t *testing.T) {
	d := New(1, 2)
	other := New(7, 8, 9)
	d.Append(other)

	if !slices.Equal(d.Cards(), []int{1, 2, 7, 8, 9}) {
		t.Errorf("Append: got %v", d.Cards())
	}
	if other.Len() != 0 {
		t.Errorf("Expected other to be drained, has %d cards", other.Len())
	}
	if c, _ := d.DrawTop(); c != 9 {
		t.Errorf("Expected other's top to become the new top, got %d", c)
	}

	d.Append(d)
	if d.Len() != 4 {
		t.Errorf("Appending a deck to itself should be a no-op, len %d", d.Len())
	}
}

func TestPeekAndTake(t *testing.T) {
	d := New(1, 2, 3, 4)
	if got := d.Peek(2); !slices.Equal(got, []int{4, 3}) {
		t.Errorf("Peek(2) = %v, want [4 3]", got)
	}
	if got := d.Peek(10); len(got) != 4 {
		t.Errorf("Peek past the bottom returned %d cards", len(got))
	}
	if d.Peek(0) != nil {
		t.Error("Peek(0) should be nil")
	}

	c, ok := d.Take(func(v int) bool { return v%2 == 0 })
	if !ok || c != 4 {
		t.Errorf("Take(even) = %d, %v; want 4, true", c, ok)
	}
	if !slices.Equal(d.Cards(), []int{1, 2, 3}) {
		t.Errorf("After Take: %v", d.Cards())
	}
	if _, ok := d.Take(func(v int) bool { return v > 10 }); ok {
		t.Error("Take should fail without a match")
	}
	if !d.Contains(func(v int) bool { return v == 2 }) {
		t.Error("Contains(2) should be true")
	}
}

func TestNewCopiesInput(t *testing.T) {
	src := []int{1, 2, 3}
	d := New(src...)
	src[0] = 99
	if d.Cards()[0] != 1 {
		t.Error("New must not alias its input")
	}
}
