package printer

import (
	"strconv"
	"testing"

	"github.com/arthur-debert/dzgen/pkg/dstring"
	"github.com/stretchr/testify/assert"
)

// out applies p once under the default state and returns only the rendered
// fragment, prefix stripped by using Eval instead of Render.
func out[A any](t *testing.T, p Printer[A], in A) string {
	t.Helper()
	d, _ := p.Print(dstring.DefaultState(), in)
	return d.Eval(dstring.DefaultState())
}

func TestConstIsStateless(t *testing.T) {
	p := Const(func(n int) dstring.DString {
		return dstring.FromText(strconv.Itoa(n))
	})

	line, next := Apply(p, 7)
	assert.Equal(t, "^ib(1)7", line)

	// The successor behaves identically: no memory evolves.
	line, _ = Apply(next, 9)
	assert.Equal(t, "^ib(1)9", line)
	line, _ = Apply(p, 9)
	assert.Equal(t, "^ib(1)9", line)
}

func TestStatefulThreadsMemory(t *testing.T) {
	// Running total of the inputs seen so far.
	p := Stateful(func(sum, in int) (dstring.DString, int) {
		sum += in
		return dstring.FromText(strconv.Itoa(sum)), sum
	}, 0)

	outs, _ := ApplyMany(p, []int{1, 2, 3})
	assert.Equal(t, []string{"^ib(1)1", "^ib(1)3", "^ib(1)6"}, outs)
}

func TestStaleReuseYieldsStaleOutput(t *testing.T) {
	p := Stateful(func(n, _ int) (dstring.DString, int) {
		n++
		return dstring.FromText(strconv.Itoa(n)), n
	}, 0)

	first, next := Apply(p, 0)
	assert.Equal(t, "^ib(1)1", first)

	// Reapplying the consumed value is legal; it just replays step one.
	again, _ := Apply(p, 0)
	assert.Equal(t, "^ib(1)1", again)

	second, _ := Apply(next, 0)
	assert.Equal(t, "^ib(1)2", second)
}

func TestZeroValuePrintsNothing(t *testing.T) {
	var p Printer[int]
	line, _ := Apply(p, 42)
	assert.Equal(t, "^ib(1)", line)
}

func TestTextAndShowing(t *testing.T) {
	assert.Equal(t, "a^^b", out(t, Text(), "a^b"))
	assert.Equal(t, "42", out(t, Showing[int](), 42))
}

func TestContramap(t *testing.T) {
	type sample struct{ load float64 }
	p := Contramap(func(s sample) string {
		return strconv.FormatFloat(s.load, 'f', 2, 64)
	}, Text())
	assert.Equal(t, "0.50", out(t, p, sample{load: 0.5}))
}

func TestJoinPreservesOrder(t *testing.T) {
	px := Lift[int](dstring.FromText("X"))
	py := Lift[string](dstring.FromText("Y"))

	p := Join(px, py)
	assert.Equal(t, "XY", out(t, p, MkPair(1, "ignored")))
	assert.Equal(t, "XY", out(t, p, MkPair(0, "")))
}

func TestJoinFeedsEachSide(t *testing.T) {
	p := Join(Showing[int](), Text())
	assert.Equal(t, "3up", out(t, p, MkPair(3, "up")))
}

func TestShareFeedsBoth(t *testing.T) {
	double := Const(func(n int) dstring.DString {
		return dstring.FromText(strconv.Itoa(2 * n))
	})
	p := Share(Showing[int](), double)
	assert.Equal(t, "510", out(t, p, 5))
}

func TestBeforeAndAfter(t *testing.T) {
	sep := dstring.FromText(" | ")
	p := After(Before(sep, Showing[int]()), sep)
	assert.Equal(t, " | 8 | ", out(t, p, 8))
}

func TestSwapped(t *testing.T) {
	p := Swapped(Text(), Showing[int]())
	// Input is (int, string); the string side prints first.
	assert.Equal(t, "up1", out(t, p, MkPair(1, "up")))
}

func TestWithFirst(t *testing.T) {
	whole := Const(func(in Pair[string, int]) dstring.DString {
		return dstring.FromText(in.Fst + strconv.Itoa(in.Snd))
	})
	p := WithFirst(Text(), whole)
	assert.Equal(t, "aa1", out(t, p, MkPair("a", 1)))
}

func TestPromote(t *testing.T) {
	rest := Const(func(in Pair[string, string]) dstring.DString {
		return dstring.FromText(in.Fst + in.Snd)
	})
	p := Promote(Showing[int](), rest)
	// Input (b, (a, c)): a prints first, then (b, c).
	assert.Equal(t, "7bc", out(t, p, MkPair("b", MkPair(7, "c"))))
}

func TestCombineStateAdvancesOnBothSides(t *testing.T) {
	count := func() Printer[int] {
		return Stateful(func(n, _ int) (dstring.DString, int) {
			n++
			return dstring.FromText(strconv.Itoa(n)), n
		}, 0)
	}
	p := Share(count(), count())

	outs, _ := ApplyMany(p, []int{0, 0, 0})
	assert.Equal(t, []string{"^ib(1)11", "^ib(1)22", "^ib(1)33"}, outs)
}

func TestApplyManyOrderAndFinalPrinter(t *testing.T) {
	p := Stateful(func(n, in int) (dstring.DString, int) {
		n++
		return dstring.FromText(strconv.Itoa(n) + ":" + strconv.Itoa(in)), n
	}, 0)

	inputs := []int{10, 20, 30}
	outs, final := ApplyMany(p, inputs)

	assert.Equal(t, []string{"^ib(1)1:10", "^ib(1)2:20", "^ib(1)3:30"}, outs)
	assert.Equal(t, []int{10, 20, 30}, inputs, "inputs must not be consumed")

	more, _ := Apply(final, 40)
	assert.Equal(t, "^ib(1)4:40", more)
}

func TestApplyAll(t *testing.T) {
	outs := ApplyAll(Showing[int](), []int{1, 2})
	assert.Equal(t, []string{"^ib(1)1", "^ib(1)2"}, outs)
}

func TestApplyForever(t *testing.T) {
	p := Stateful(func(n, _ int) (dstring.DString, int) {
		n++
		return dstring.FromText(strconv.Itoa(n)), n
	}, 0)

	var got []string
	done := make(chan struct{})
	pull := func() int { return 0 }
	push := func(line string) {
		got = append(got, line)
		if len(got) == 3 {
			close(done)
			panic("stop") // the loop has no exit of its own
		}
	}

	go func() {
		defer func() { _ = recover() }()
		ApplyForever(p, pull, push)
	}()
	<-done

	assert.Equal(t, []string{"^ib(1)1", "^ib(1)2", "^ib(1)3"}, got)
}
