package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMenuPath(t *testing.T) {
	p := ParseMenuPath(" Plugins >Scripts > > Blur ")
	assert.Equal(t, []string{"Plugins", "Scripts", "Blur"}, p.Names())
	assert.Equal(t, "Plugins > Scripts > Blur", p.String())
	assert.Nil(t, ParseMenuPath(""))
	assert.Nil(t, MenuPath(nil).Leaf())
}

func TestAppendCopies(t *testing.T) {
	base := ParseMenuPath("A > B")

	x := base.Append("X")
	y := base.Append("Y")
	x.Leaf().IconPath = "/x.png"

	assert.Equal(t, "A > B > X", x.String())
	assert.Equal(t, "A > B > Y", y.String())
	assert.Len(t, base, 2)
	assert.Empty(t, y.Leaf().IconPath)
	assert.True(t, x[:2].Equal(base))
	assert.False(t, x.Equal(y))
}
