package pad

import (
	"testing"

	"github.com/arthur-debert/dzgen/pkg/dstring"
	"github.com/stretchr/testify/assert"
)

func TestCenter(t *testing.T) {
	foo := dstring.FromText("foo")

	tests := []struct {
		width int
		want  string
	}{
		{5, "^ib(1) foo "},
		{6, "^ib(1)  foo "}, // odd padding: extra space on the left
		{7, "^ib(1)  foo  "},
		{3, "^ib(1)foo"},
		{2, "^ib(1)foo"}, // never truncates
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Center(tt.width, foo).Render(), "width %d", tt.width)
	}
}

func TestLeftAndRight(t *testing.T) {
	foo := dstring.FromText("foo")

	assert.Equal(t, "^ib(1)  foo", Left(5, foo).Render())
	assert.Equal(t, "^ib(1)foo  ", Right(5, foo).Render())
	assert.Equal(t, "^ib(1)foo", Left(3, foo).Render())
}

func TestUnknownWidthPassesThrough(t *testing.T) {
	icon := dstring.Command(true, "i", "cpu.xbm")

	assert.Equal(t, icon.Render(), Center(10, icon).Render())
	assert.Equal(t, icon.Render(), Left(10, icon).Render())
	assert.Equal(t, icon.Render(), Right(10, icon).Render())
}

func TestPaddingCountsEscapedWidth(t *testing.T) {
	// "^" escapes to "^^", width 2.
	caret := dstring.FromText("^")
	assert.Equal(t, "^ib(1)  ^^", Left(4, caret).Render())
}
