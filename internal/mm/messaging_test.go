//    MovieSummaryAnalyzer
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package mm

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietmaker(lvl int) (*MessageMaker, *bytes.Buffer) {
	var b bytes.Buffer
	m := NewMessageMaker("Tester", "T", "0.0.1", lvl)
	m.BW = true
	m.Out = &b
	return m, &b
}

func TestEmitRespectsLevel(t *testing.T) {
	m, b := quietmaker(MSGNOTE)
	m.NOTE("shown")
	m.FYI("hidden")
	m.MAND("always")
	out := b.String()
	assert.Contains(t, out, "[T] shown")
	assert.Contains(t, out, "[T] always")
	assert.NotContains(t, out, "hidden")
}

func TestColorInBlackAndWhite(t *testing.T) {
	m, _ := quietmaker(MSGNOTE)
	assert.Equal(t, "plain", m.Color("C4plainC0"))
	assert.Equal(t, "bold", m.Styled("S1boldS0"))
	assert.Equal(t, "both", m.ColStyle("S1C2bothC0S0"))
}

func TestColorInColor(t *testing.T) {
	m, _ := quietmaker(MSGNOTE)
	m.BW = false
	m.Win = false
	got := m.Color("C4x")
	assert.True(t, strings.HasPrefix(got, GREEN))
}

func TestFileSink(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "log.json")
	l, err := NewFileSink(fn, "abc")
	require.NoError(t, err)

	m, _ := quietmaker(MSGCRIT)
	m.Sink = l
	m.TMI("deep detail")
	m.WARN("careful")
	m.Sync()

	data, err := os.ReadFile(fn)
	require.NoError(t, err)
	s := string(data)
	assert.Contains(t, s, "deep detail")
	assert.Contains(t, s, "careful")
	assert.Contains(t, s, `"run":"abc"`)
}
