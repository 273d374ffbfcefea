package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFaqListCmd(t *testing.T) {
	wireTestServices(t, &stubAnswerer{})

	out, err := runCommand(t, "", "faq", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "Accommodation included?")
	assert.Contains(t, out, "ja: 宿泊は含まれますか？")
	assert.Contains(t, out, "en: Is housing included?")
}

func TestFaqMatchCmd(t *testing.T) {
	svc := wireTestServices(t, &stubAnswerer{})

	out, err := runCommand(t, "", "faq", "match", "Is housing included?")

	require.NoError(t, err)
	assert.Contains(t, out, "FAQ:        Accommodation included?")
	assert.Contains(t, out, "Similarity: 1.000")
	assert.Contains(t, out, "[JA]")
	assert.Contains(t, out, "[EN]")
	assert.Zero(t, svc.answerer.Calls())
}

func TestFaqTemplatesCmd(t *testing.T) {
	wireTestServices(t, &stubAnswerer{})

	_, err := runCommand(t, "", "faq", "templates")
	assert.NoError(t, err)
}

func TestFaqCmd_NotConfigured(t *testing.T) {
	SetServices(Services{})

	for _, sub := range []string{"list", "templates"} {
		_, err := runCommand(t, "", "faq", sub)
		assert.Error(t, err, sub)
	}
}
