package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleGroup() FaqGroup {
	return FaqGroup{
		Title: "Wi-Fi / SIM",
		Questions: FaqPhrasings{
			JA: []string{"寮にWi-Fiはありますか？"},
			EN: []string{"Is Wi-Fi available in the dorm?", "Do I need a SIM card?"},
		},
		Answers: FaqAnswers{JA: "施設により異なります。", EN: "It depends on the facility."},
	}
}

func TestLanguage_IsValid(t *testing.T) {
	assert.True(t, LanguageJA.IsValid())
	assert.True(t, LanguageEN.IsValid())
	assert.False(t, Language("zh").IsValid())
}

func TestFaqGroup_Answer(t *testing.T) {
	g := sampleGroup()

	assert.Equal(t, "施設により異なります。", g.Answer(LanguageJA))
	assert.Equal(t, "It depends on the facility.", g.Answer(LanguageEN))
	assert.Equal(t, g.Answers.JA, g.Answer(Language("ko")))
}

func TestFaqGroup_PhrasingCount(t *testing.T) {
	assert.Equal(t, 3, sampleGroup().PhrasingCount())
}

func TestFaqGroup_Validate(t *testing.T) {
	t.Run("valid group", func(t *testing.T) {
		assert.NoError(t, sampleGroup().Validate())
	})

	t.Run("one language populated is enough", func(t *testing.T) {
		g := sampleGroup()
		g.Questions.JA = nil
		assert.NoError(t, g.Validate())
	})

	t.Run("no phrasings", func(t *testing.T) {
		g := sampleGroup()
		g.Questions = FaqPhrasings{}
		err := g.Validate()
		assert.True(t, errors.Is(err, ErrInvalidCorpus))
		assert.Contains(t, err.Error(), "Wi-Fi / SIM")
	})

	t.Run("missing english answer", func(t *testing.T) {
		g := sampleGroup()
		g.Answers.EN = ""
		assert.True(t, errors.Is(g.Validate(), ErrInvalidCorpus))
	})
}
