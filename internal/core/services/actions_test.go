package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/faqdesk/internal/core/domain"
)

var testTime = time.Date(2025, 7, 4, 9, 5, 0, 0, time.UTC)

type recordingClipboard struct {
	text string
	err  error
}

func (c *recordingClipboard) WriteAll(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

type recordingOpener struct {
	urls []string
	err  error
}

func (o *recordingOpener) Open(url string) error {
	o.urls = append(o.urls, url)
	return o.err
}

func TestAnswerActionService_CopyToClipboard(t *testing.T) {
	clip := &recordingClipboard{}
	svc := NewAnswerActionService(clip, nil)

	require.NoError(t, svc.CopyToClipboard(context.Background(), "answer text"))
	assert.Equal(t, "answer text", clip.text)
}

func TestAnswerActionService_CopyToClipboard_Failure(t *testing.T) {
	svc := NewAnswerActionService(&recordingClipboard{err: errors.New("no display")}, nil)

	err := svc.CopyToClipboard(context.Background(), "x")

	assert.ErrorIs(t, err, domain.ErrClipboardUnavailable)
	assert.Contains(t, err.Error(), "no display")
}

func TestAnswerActionService_CopyToClipboard_NoClipboard(t *testing.T) {
	svc := NewAnswerActionService(nil, nil)

	assert.ErrorIs(t, svc.CopyToClipboard(context.Background(), "x"), domain.ErrClipboardUnavailable)
}

func TestAnswerActionService_OpenMail(t *testing.T) {
	opener := &recordingOpener{}
	svc := NewAnswerActionService(nil, opener)
	mail := NewMailService().Compose("q", "a", testTime)

	require.NoError(t, svc.OpenMail(context.Background(), mail))
	require.Len(t, opener.urls, 1)
	assert.True(t, strings.HasPrefix(opener.urls[0], "mailto:rsjprwjp%40st.ritsumei.ac.jp?subject="))
}

func TestAnswerActionService_OpenMail_Errors(t *testing.T) {
	mail := NewMailService().Compose("q", "a", testTime)

	err := NewAnswerActionService(nil, nil).OpenMail(context.Background(), mail)
	assert.Error(t, err)

	err = NewAnswerActionService(nil, &recordingOpener{err: errors.New("xdg-open missing")}).
		OpenMail(context.Background(), mail)
	assert.ErrorContains(t, err, "xdg-open missing")
}
