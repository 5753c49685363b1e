package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "░░░░░░░░░░   0%", ProgressBar(0, 0, 10))
	assert.Equal(t, "█████░░░░░  50%", ProgressBar(1, 2, 10))
	assert.Equal(t, "██████████ 100%", ProgressBar(3, 3, 10))
	assert.Equal(t, "█░░░░  25%", ProgressBar(1, 4, 1), "width is clamped to 5")
}

func TestThemeFor_FallsBackToClassic(t *testing.T) {
	assert.Equal(t, "classic", ThemeFor("solarized", nil).Name)
	assert.Equal(t, "neon", ThemeFor("NEON", nil).Name)
}

func TestThemeBox(t *testing.T) {
	th := ThemeFor("mono", nil)
	assert.Equal(t, "[x]", th.Box(true))
	assert.Equal(t, "[ ]", th.Box(false))
}

func TestPrinter_PlainWhenNotATerminal(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, "classic")

	p.OK("added")
	p.Fail("boom")
	p.Println("raw")

	assert.Equal(t, "✔ added\n✖ boom\nraw\n", buf.String())
}

func TestPrinter_MonoSymbols(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, "mono")

	p.OK("added")
	p.Fail("boom")

	assert.Equal(t, "ok: added\nerror: boom\n", buf.String())
}

func TestPanel_FramesEveryLine(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, "mono")

	p.Panel([]string{"one", "three"})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, []string{
		"+-------+",
		"| one   |",
		"| three |",
		"+-------+",
	}, lines)
}
