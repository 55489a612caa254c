package rendering

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer(DefaultStyle(), t.TempDir(), 5*time.Second, nil)
	require.NoError(t, err)
	return r
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"text", "html", "pdf"} {
		format, err := ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, Format(name), format)
	}
}

func TestParseFormat_Unknown(t *testing.T) {
	_, err := ParseFormat("docx")
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "format", verr.Field)
}

func TestFormat_Extension(t *testing.T) {
	assert.Equal(t, "txt", FormatText.Extension())
	assert.Equal(t, "html", FormatHTML.Extension())
	assert.Equal(t, "pdf", FormatPDF.Extension())
}

func TestNewRenderer_RejectsInvalidStyle(t *testing.T) {
	style := DefaultStyle()
	style.PageSize = "Postcard"

	_, err := NewRenderer(style, "", 0, nil)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestRenderer_TextFormat(t *testing.T) {
	r := newTestRenderer(t)

	out, err := r.Render(context.Background(), sampleModel(), FormatText)
	require.NoError(t, err)
	assert.Contains(t, string(out), "Jane Doe")
	assert.NotContains(t, string(out), "**")
}

func TestRenderer_HTMLFormat(t *testing.T) {
	r := newTestRenderer(t)

	out, err := r.Render(context.Background(), sampleModel(), FormatHTML)
	require.NoError(t, err)
	assert.Contains(t, string(out), "<h1")
}

func TestRenderer_UnknownFormat(t *testing.T) {
	r := newTestRenderer(t)

	_, err := r.Render(context.Background(), sampleModel(), Format("markdown"))
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestRenderer_TextIdempotent(t *testing.T) {
	r := newTestRenderer(t)

	first, err := r.Render(context.Background(), sampleModel(), FormatText)
	require.NoError(t, err)
	second, err := r.Render(context.Background(), sampleModel(), FormatText)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRenderError_MessageStaysGeneric(t *testing.T) {
	err := &RenderError{Message: "conversion failed", Cause: assert.AnError}
	assert.Equal(t, "document generation failed: conversion failed", err.Error())
	assert.NotContains(t, err.Error(), assert.AnError.Error())
	assert.ErrorIs(t, err, assert.AnError)
}
