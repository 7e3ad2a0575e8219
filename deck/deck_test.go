package deck

import (
	"testing"

	utils "github.com/fablegame/fable/internal"
)

func TestDeckNew(t *testing.T) {
	t.Run("contains the requested number of unique cards", func(t *testing.T) {
		d := New(84)

		utils.AssertEqual(t, d.Remaining(), 84)

		seen := map[Card]struct{}{}
		for _, c := range d {
			if _, ok := seen[c]; ok {
				t.Fatalf("duplicate card token %s", c)
			}
			seen[c] = struct{}{}
		}
	})
}

func TestDeckDeal(t *testing.T) {
	t.Run("deals n unique cards and removes them from the pool", func(t *testing.T) {
		d := New(10)

		dealt, err := d.Deal(6)
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, len(dealt), 6)
		utils.AssertEqual(t, d.Remaining(), 4)

		seen := map[Card]struct{}{}
		for _, c := range dealt {
			seen[c] = struct{}{}
		}
		utils.AssertEqual(t, len(seen), 6)

		// dealt cards never reappear
		rest, err := d.Deal(4)
		utils.AssertNoError(t, err)
		for _, c := range rest {
			if _, ok := seen[c]; ok {
				t.Fatalf("card %s was dealt twice", c)
			}
		}
	})

	t.Run("fails with ErrDeckExhausted and leaves the pool unchanged", func(t *testing.T) {
		d := New(3)
		before := make(Deck, len(d))
		copy(before, d)

		dealt, err := d.Deal(4)
		utils.AssertEqual(t, err, ErrDeckExhausted)

		if dealt != nil {
			t.Errorf("expected no cards, got %v", dealt)
		}
		utils.AssertDeepEqual(t, d, before)
	})

	t.Run("can deal the whole deck exactly", func(t *testing.T) {
		d := New(5)

		dealt, err := d.Deal(5)
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, len(dealt), 5)
		utils.AssertEqual(t, d.Remaining(), 0)

		_, err = d.Deal(1)
		utils.AssertEqual(t, err, ErrDeckExhausted)
	})

	t.Run("dealing zero cards is a no-op", func(t *testing.T) {
		d := New(2)
		dealt, err := d.Deal(0)
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, len(dealt), 0)
		utils.AssertEqual(t, d.Remaining(), 2)
	})
}
