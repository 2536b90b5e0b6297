package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunDemo(t *testing.T) {
	var b strings.Builder
	require.NoError(t, runDemo(&b, ""))
	out := b.String()

	assert.Contains(t, out, `<ul class="shopping-list"><li>Apples</li><li>Milk</li><li>Bread</li></ul>`)
	assert.Contains(t, out, "<li>Apples</li><li>Milk</li><li>Bread</li>\n")
	assert.Contains(t, out, "<br />")
	assert.Contains(t, out, "block:      <div><li>Apples</li>")
	assert.Contains(t, out, "inline:     <span><li>Apples</li>")
	assert.Contains(t, out, "elements:   4")
	assert.Contains(t, out, `after cmd:  <ul class="shopping-list done">`)
}

func TestRunDemoWritesMarkupFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "out.html")

	var b strings.Builder
	require.NoError(t, runDemo(&b, outPath))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, `<ul class="shopping-list done"><li>Apples</li><li>Milk</li><li>Bread</li></ul>`+"\n", string(data))
}
