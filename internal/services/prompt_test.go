package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildOptimizePrompt(t *testing.T) {
	pb := NewPromptBuilder()

	tests := []struct {
		name  string
		style string
	}{
		{name: "canonical style", style: "modern"},
		{name: "another canonical style", style: "classic"},
		{name: "unknown style passes through verbatim", style: "brutalist"},
		{name: "empty style still renders", style: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompt := pb.BuildOptimizePrompt(tt.style)

			assert.NotEmpty(t, prompt)
			assert.Contains(t, prompt, "STYLE: "+tt.style)
			assert.Contains(t, prompt, "Return ONLY the optimized CV content")
			// The pipeline appends the source text right after this lead-in.
			assert.True(t, strings.HasSuffix(prompt, "Original CV content to optimize:\n\n"))
		})
	}
}

func TestBuildOptimizePromptIsDeterministic(t *testing.T) {
	pb := NewPromptBuilder()

	assert.Equal(t, pb.BuildOptimizePrompt("modern"), pb.BuildOptimizePrompt("modern"))
}

func TestBuildOptimizePromptListsCanonicalStyleGuidance(t *testing.T) {
	prompt := NewPromptBuilder().BuildOptimizePrompt("modern")

	for _, guidance := range []string{"Modern:", "Professional:", "Creative:", "Classic:"} {
		assert.Contains(t, prompt, guidance)
	}
}

func TestBuildTranslatePrompt(t *testing.T) {
	pb := NewPromptBuilder()

	tests := []struct {
		name     string
		code     string
		language string
	}{
		{name: "german", code: "de", language: "German"},
		{name: "japanese", code: "ja", language: "Japanese"},
		{name: "portuguese", code: "pt", language: "Portuguese"},
		{name: "unknown code used as language name", code: "xx", language: "xx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompt := pb.BuildTranslatePrompt(tt.code)

			assert.NotEmpty(t, prompt)
			assert.Contains(t, prompt, "TARGET LANGUAGE: "+tt.language)
			assert.Contains(t, prompt, "Return ONLY the translated CV content in "+tt.language)
			assert.True(t, strings.HasSuffix(prompt, "CV content to translate:\n\n"))
		})
	}
}

func TestLanguageNameCoversSupportedCodes(t *testing.T) {
	expected := map[string]string{
		"ar": "Arabic", "de": "German", "en": "English", "es": "Spanish",
		"fr": "French", "it": "Italian", "ja": "Japanese", "pl": "Polish",
		"pt": "Portuguese", "ru": "Russian", "zh": "Chinese",
	}

	for code, name := range expected {
		assert.Equal(t, name, LanguageName(code))
	}

	assert.Equal(t, "sw", LanguageName("sw"))
}
