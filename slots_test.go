package slotweaver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Classify(t *testing.T) {
	t.Run("should route tagged children to their slot and the rest to Rest", func(t *testing.T) {
		header := NewFill("header")
		footer := NewFill("footer")

		slots := Classify([]Unit{
			header(Text("H")),
			Text("plain-text"),
			footer(Text("F")),
		})

		body, ok := slots.Get("header")
		require.True(t, ok)
		assert.Equal(t, "H", Render(body...))

		body, ok = slots.Get("footer")
		require.True(t, ok)
		assert.Equal(t, "F", Render(body...))

		require.Len(t, slots.Rest, 1)
		assert.Equal(t, "plain-text", slots.Rest[0].Render())
	})

	t.Run("should return only an empty Rest for empty input", func(t *testing.T) {
		slots := Classify([]Unit{})
		assert.Empty(t, slots.Slots)
		require.NotNil(t, slots.Rest)
		assert.Empty(t, slots.Rest)
	})

	t.Run("should treat nil input like empty input", func(t *testing.T) {
		slots := Classify(nil)
		assert.Empty(t, slots.Slots)
		require.NotNil(t, slots.Rest)
		assert.Empty(t, slots.Rest)
	})

	t.Run("should keep the first fill when the same slot occurs twice", func(t *testing.T) {
		section := NewFill("section")

		slots := Classify([]Unit{
			section(Text("A")),
			section(Text("B")),
		})

		body, ok := slots.Get("section")
		require.True(t, ok)
		assert.Equal(t, "A", Render(body...))
	})

	t.Run("should preserve the relative order of untagged children", func(t *testing.T) {
		section := NewFill("section")

		slots := Classify([]Unit{
			Text("x"),
			section(Text("y")),
			Text("z"),
		})

		require.Len(t, slots.Rest, 2)
		assert.Equal(t, "x", slots.Rest[0].Render())
		assert.Equal(t, "z", slots.Rest[1].Render())
	})

	t.Run("should not recurse into fill bodies", func(t *testing.T) {
		outer := NewFill("outer")
		inner := NewFill("inner")

		slots := Classify([]Unit{
			outer(inner(Text("deep"))),
		})

		assert.True(t, slots.Has("outer"))
		assert.False(t, slots.Has("inner"), "nested fills are content, not top-level tags")
	})

	t.Run("should record a slot whose fill carries no body", func(t *testing.T) {
		spacer := NewFill("spacer")

		slots := Classify([]Unit{spacer()})

		body, ok := slots.Get("spacer")
		require.True(t, ok)
		assert.Empty(t, body)
		assert.Equal(t, "", Render(body...))
	})

	t.Run("should omit entries for slots that never occurred", func(t *testing.T) {
		slots := Classify([]Unit{Text("only plain")})
		_, ok := slots.Get("header")
		assert.False(t, ok)
		assert.False(t, slots.Has("header"))
	})
}

func Test_Classifier_Cache(t *testing.T) {
	t.Run("should reuse the last result for the identical input slice", func(t *testing.T) {
		c := &Classifier{}
		children := []Unit{Text("a")}

		first := c.Classify(children)
		require.Equal(t, "a", first.Rest[0].Render())

		// Same backing array: the cached result comes back even though the
		// element changed underneath it. Identity, not content, is the key.
		children[0] = Text("b")
		second := c.Classify(children)
		assert.Equal(t, "a", second.Rest[0].Render())
	})

	t.Run("should reclassify when the input reference changes", func(t *testing.T) {
		c := &Classifier{}
		_ = c.Classify([]Unit{Text("a")})

		fresh := c.Classify([]Unit{Text("b")})
		require.Len(t, fresh.Rest, 1)
		assert.Equal(t, "b", fresh.Rest[0].Render())
	})

	t.Run("should handle an empty slice without priming problems", func(t *testing.T) {
		c := &Classifier{}
		first := c.Classify(nil)
		second := c.Classify([]Unit{})
		assert.Empty(t, first.Rest)
		assert.Empty(t, second.Rest)
	})

	t.Run("should agree with the package-level Classify", func(t *testing.T) {
		header := NewFill("header")
		children := []Unit{header(Text("H")), Text("p")}

		c := &Classifier{}
		assert.Equal(t, Classify(children), c.Classify(children))
	})
}
