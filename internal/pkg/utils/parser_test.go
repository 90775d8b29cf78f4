package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSlotList(t *testing.T) {
	t.Run("Simple List", func(t *testing.T) {
		slots := ParseSlotList("9am,10am,2pm")

		assert.Equal(t, []string{"9am", "10am", "2pm"}, slots)
	})

	t.Run("Whitespace Trimmed Per Segment", func(t *testing.T) {
		slots := ParseSlotList(" 9am , 10am ,  2pm")

		assert.Equal(t, []string{"9am", "10am", "2pm"}, slots)
	})

	t.Run("Empty Segments Dropped", func(t *testing.T) {
		slots := ParseSlotList("9am, , 10am,,")

		assert.Equal(t, []string{"9am", "10am"}, slots)
	})

	t.Run("Duplicates Preserved", func(t *testing.T) {
		slots := ParseSlotList("9am,10am,10am")

		assert.Equal(t, []string{"9am", "10am", "10am"}, slots)
	})

	t.Run("Order Preserved", func(t *testing.T) {
		slots := ParseSlotList("2pm,9am,10am")

		assert.Equal(t, []string{"2pm", "9am", "10am"}, slots)
	})

	t.Run("Empty Input", func(t *testing.T) {
		slots := ParseSlotList("")

		assert.Empty(t, slots)
	})

	t.Run("Only Commas And Spaces", func(t *testing.T) {
		slots := ParseSlotList(" , ,, ")

		assert.Empty(t, slots)
	})
}
