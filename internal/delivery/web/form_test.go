package web

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/wordbook/internal/domain/entities"
)

func TestBindAddWord_Valid(t *testing.T) {
	binder, err := newFormBinder()
	require.NoError(t, err)

	form, fieldErrs, err := binder.bindAddWord(helloForm())
	require.NoError(t, err)
	assert.Empty(t, fieldErrs)

	assert.Equal(t, entities.WordEntry{
		Language:    entities.LanguageCantonese,
		WordEnglish: "hello",
		WordAlt:     "nei5 hou2",
		Definition:  "a greeting",
		AudioURI:    "https://example.com/a.mp3",
	}, form.Entry())
}

func TestBindAddWord_FieldErrors(t *testing.T) {
	binder, err := newFormBinder()
	require.NoError(t, err)

	fieldErrs := func(values url.Values) FieldErrors {
		_, errs, err := binder.bindAddWord(values)
		require.NoError(t, err)
		return errs
	}

	assert.Equal(t, FieldErrors{
		"language":     msgRequired,
		"word_english": msgRequired,
		"word_alt":     msgRequired,
		"definition":   msgRequired,
		"audio_uri":    msgRequired,
	}, fieldErrs(url.Values{}))

	values := helloForm()
	values.Set("language", "Esperanto")
	values.Set("audio_uri", "example.com/a.mp3")
	assert.Equal(t, FieldErrors{
		"language":  msgInvalidChoice,
		"audio_uri": msgInvalidURL,
	}, fieldErrs(values))
}

func TestBindAddWord_AudioURIMustBeWebURL(t *testing.T) {
	binder, err := newFormBinder()
	require.NoError(t, err)

	for _, raw := range []string{
		"foo:bar",
		"javascript:alert(1)",
		"mailto:a@b.com",
		"http://localhost",
		"http://localhost:8080/a.mp3",
		"https://example./a.mp3",
		"//example.com/a.mp3",
		"example.com/a.mp3",
	} {
		values := helloForm()
		values.Set("audio_uri", raw)

		_, errs, err := binder.bindAddWord(values)
		require.NoError(t, err, raw)
		assert.Equal(t, FieldErrors{"audio_uri": msgInvalidURL}, errs, raw)
	}
}

func TestIsWebURL_Accepts(t *testing.T) {
	for _, raw := range []string{
		"https://example.com/a.mp3",
		"http://audio.example.co.uk:8080/words/hello.ogg?v=2",
		"ftp://files.example.org/a.mp3",
	} {
		assert.True(t, isWebURL(raw), raw)
	}
}
