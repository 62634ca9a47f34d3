package view_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/namebook/internal/domain"
	"github.com/pkordes/namebook/internal/view"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, c.Render(context.Background(), &b))
	return b.String()
}

func TestHome_Empty(t *testing.T) {
	html := render(t, view.Home(nil))

	assert.True(t, strings.HasPrefix(strings.ToLower(html), "<!doctype html>"))
	assert.Contains(t, html, `<ul id="records"></ul>`)
	assert.Contains(t, html, `<form method="post" action="/">`)
	assert.Contains(t, html, `name="name"`)
	assert.Contains(t, html, `maxlength="80"`)
	assert.NotContains(t, html, "<li")
}

func TestHome_ListsRecordsInOrder(t *testing.T) {
	html := render(t, view.Home([]domain.Record{
		{ID: 1, Name: "Alice"},
		{ID: 2, Name: "Bob"},
	}))

	alice := strings.Index(html, `<li data-id="1">Alice</li>`)
	bob := strings.Index(html, `<li data-id="2">Bob</li>`)
	require.NotEqual(t, -1, alice)
	require.NotEqual(t, -1, bob)
	assert.Less(t, alice, bob)
}

func TestRecordList_EscapesNames(t *testing.T) {
	html := render(t, view.RecordList([]domain.Record{{ID: 1, Name: `<script>alert("x")</script>`}}))

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestPage_PropagatesBodyError(t *testing.T) {
	boom := errors.New("boom")
	body := templ.ComponentFunc(func(context.Context, io.Writer) error { return boom })

	err := view.Page("t", body).Render(context.Background(), io.Discard)

	assert.ErrorIs(t, err, boom)
}
