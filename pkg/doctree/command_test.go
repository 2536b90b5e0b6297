package doctree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddClassCommandIsDeferred(t *testing.T) {
	div := NewElement("div", Paired)
	cmd := AddClassCommand(div, "active")

	assert.Empty(t, div.Classes(), "building the command must not mutate the target")

	cmd.Execute()
	assert.Equal(t, []string{"active"}, div.Classes())
	assert.Equal(t, `<div class="active"></div>`, div.OuterMarkup())
}

func TestAddClassCommandExecutedTwiceAppendsTwice(t *testing.T) {
	div := NewElement("div", Paired)
	cmd := AddClassCommand(div, "x")

	cmd.Execute()
	cmd.Execute()

	assert.Equal(t, []string{"x", "x"}, div.Classes())
	assert.Contains(t, div.OuterMarkup(), `class="x x"`)
}

func TestCommandsCanBeQueued(t *testing.T) {
	div := NewElement("div", Paired)

	queue := []Command{
		AddClassCommand(div, "a"),
		AddClassCommand(div, "b"),
	}
	for _, cmd := range queue {
		cmd.Execute()
	}

	assert.Equal(t, []string{"a", "b"}, div.Classes())
}
