package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	prompt, err := Render(VariantEnhancedFinal, "TRANSCRIPT BODY", "What is the scope?")
	require.NoError(t, err)

	assert.Contains(t, prompt, "TRANSCRIPT BODY")
	assert.Contains(t, prompt, "Question: What is the scope?")
	assert.NotContains(t, prompt, "{transcript}")
	assert.NotContains(t, prompt, "{question}")
}

func TestRenderDeterministic(t *testing.T) {
	for _, variant := range VariantNames() {
		a, err := Render(variant, "same transcript", "same question")
		require.NoError(t, err)
		b, err := Render(variant, "same transcript", "same question")
		require.NoError(t, err)
		assert.Equal(t, a, b, "variant %s", variant)
	}
}

func TestRenderUnknownVariant(t *testing.T) {
	_, err := Render("nonexistent", "t", "q")
	assert.Error(t, err)
}

func TestVariantNames(t *testing.T) {
	names := VariantNames()
	assert.Len(t, names, len(variants))
	assert.Equal(t, VariantProfessionalSynthesis, names[0])

	// Returned slice is a copy; mutating it must not affect the registry
	names[0] = "mutated"
	assert.Equal(t, VariantProfessionalSynthesis, VariantNames()[0])
}

func TestDefaultVariantRegistered(t *testing.T) {
	_, err := Render(DefaultVariant, "t", "q")
	assert.NoError(t, err)
}
