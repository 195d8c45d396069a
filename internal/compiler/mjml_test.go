package compiler

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validMarkup = `<mjml><mj-body><mj-section><mj-column><mj-text>Hello, email!</mj-text></mj-column></mj-section></mj-body></mjml>`

func TestMJMLEngine_Compile(t *testing.T) {
	engine := NewMJMLEngine()
	ctx := context.Background()

	html, err := engine.Compile(ctx, validMarkup)
	require.NoError(t, err)

	wantContains := []string{
		"<!doctype html>",
		"<html",
		"Hello, email!",
	}
	for _, want := range wantContains {
		assert.Contains(t, strings.ToLower(html), strings.ToLower(want))
	}
}

func TestMJMLEngine_Compile_UnknownElement(t *testing.T) {
	engine := NewMJMLEngine()
	ctx := context.Background()

	markup := `<mjml><mj-body><mj-unknown>oops</mj-unknown></mj-body></mjml>`
	html, err := engine.Compile(ctx, markup)
	require.Error(t, err)
	assert.Empty(t, html)

	var compileErr *CompileError
	require.True(t, errors.As(err, &compileErr))
	assert.NotEmpty(t, compileErr.Message)
	require.NotEmpty(t, compileErr.Diagnostics)

	// Каждая запись диагностики структурирована: строка, сообщение, тег
	var mentions bool
	for _, d := range compileErr.Diagnostics {
		assert.GreaterOrEqual(t, d.Line, 1)
		assert.NotEmpty(t, d.Message)
		if strings.Contains(d.Message, "mj-unknown") || d.Tag == "mj-unknown" {
			mentions = true
		}
	}
	assert.True(t, mentions, "diagnostics should mention the unknown element")
}

func TestMJMLEngine_Compile_Deterministic(t *testing.T) {
	engine := NewMJMLEngine()
	ctx := context.Background()

	first, err := engine.Compile(ctx, validMarkup)
	require.NoError(t, err)

	second, err := engine.Compile(ctx, validMarkup)
	require.NoError(t, err)

	// Компиляция - чистая функция от разметки
	assert.Equal(t, first, second)
}

func TestMJMLEngine_Compile_MalformedMarkup(t *testing.T) {
	engine := NewMJMLEngine()
	ctx := context.Background()

	html, err := engine.Compile(ctx, "definitely not mjml")
	assert.Error(t, err)
	assert.Empty(t, html)
}

func TestMJMLEngine_Version(t *testing.T) {
	engine := NewMJMLEngine()

	assert.NotEmpty(t, engine.Version())
}
