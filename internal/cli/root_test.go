package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmdRunsDemo(t *testing.T) {
	var b strings.Builder
	cmd := NewRootCmd()
	cmd.SetOut(&b)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, b.String(), `<ul class="shopping-list">`)
}

func TestRootCmdRejectsPositionalArgs(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetOut(&strings.Builder{})
	cmd.SetArgs([]string{"bogus"})

	assert.Error(t, cmd.Execute())
}
