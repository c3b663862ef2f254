package output_test

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/ulink/internal/ui/output"
)

func TestColorProfile_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, output.ColorProfile())
}

func TestNew_NoColorWritesPlainText(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	out := output.New(buf)

	styled := out.String("plain").Foreground(out.Color("#FF0000"))
	_, err := out.WriteString(styled.String())

	assert.NoError(t, err)
	assert.Equal(t, "plain", buf.String())
}

func TestNew_NilWriter(t *testing.T) {
	assert.NotPanics(t, func() {
		_ = output.New(nil)
	})
}
