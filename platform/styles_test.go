package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var slots = []string{"scrollView", "container", "content", "flatList", "safeArea"}

func TestStylesCoverAllSlots(t *testing.T) {
	for _, p := range []Platform{Web, Native} {
		sheet := Styles(p)
		for _, slot := range slots {
			require.Contains(t, sheet, slot, "platform %s missing slot %s", p, slot)
			assert.NotEmpty(t, sheet[slot])
		}
	}
}

func TestWebStylesUseViewportScrolling(t *testing.T) {
	sheet := Styles(Web)
	assert.Equal(t, "100vh", sheet["scrollView"]["height"])
	assert.Equal(t, "auto", sheet["scrollView"]["overflowY"])
	assert.Equal(t, "100vh", sheet["flatList"]["height"])
}

func TestNativeStylesFlexOnly(t *testing.T) {
	sheet := Styles(Native)
	assert.Equal(t, 1, sheet["scrollView"]["flex"])
	assert.NotContains(t, sheet["scrollView"], "height")
	assert.NotContains(t, sheet["flatList"], "overflowY")
}

func TestCurrentDefaultsToNative(t *testing.T) {
	t.Setenv("OMEX_PLATFORM", "")
	assert.Equal(t, Native, Current())

	t.Setenv("OMEX_PLATFORM", "web")
	assert.Equal(t, Web, Current())
}
