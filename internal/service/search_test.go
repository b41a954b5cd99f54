package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lookate/backend/internal/ai"
	"github.com/lookate/backend/internal/models"
)

type mockCompleter struct {
	ChatCompletionFunc   func(ctx context.Context, model string, messages []ai.Message, maxTokens int, temperature float64) (string, error)
	VisionCompletionFunc func(ctx context.Context, model, prompt, imageB64 string) (string, error)
	TranscribeFunc       func(ctx context.Context, audio io.Reader, filename string) (string, error)
}

func (m *mockCompleter) ChatCompletion(ctx context.Context, model string, messages []ai.Message, maxTokens int, temperature float64) (string, error) {
	return m.ChatCompletionFunc(ctx, model, messages, maxTokens, temperature)
}
func (m *mockCompleter) VisionCompletion(ctx context.Context, model, prompt, imageB64 string) (string, error) {
	return m.VisionCompletionFunc(ctx, model, prompt, imageB64)
}
func (m *mockCompleter) Transcribe(ctx context.Context, audio io.Reader, filename string) (string, error) {
	return m.TranscribeFunc(ctx, audio, filename)
}

func recordingSearchRepo(recorded *models.Search) *mockSearchRepo {
	return &mockSearchRepo{
		CreateSearchFunc: func(ctx context.Context, search models.Search) error {
			*recorded = search
			return nil
		},
	}
}

func TestTextSearch(t *testing.T) {
	var recorded models.Search
	completer := &mockCompleter{
		ChatCompletionFunc: func(ctx context.Context, model string, messages []ai.Message, maxTokens int, temperature float64) (string, error) {
			require.Len(t, messages, 2)
			require.Equal(t, "system", messages[0].Role)
			require.Equal(t, "ramen", messages[1].Content)
			return "Try these ramen spots.", nil
		},
	}
	s := NewSearchService(recordingSearchRepo(&recorded), completer)

	res, err := s.Text(context.Background(), 7, "ramen")
	require.NoError(t, err)
	require.Equal(t, "Try these ramen spots.", res.Result)
	require.Len(t, res.Suggestions, 3)
	require.Equal(t, res.SearchID, recorded.ID)
	require.Equal(t, models.SearchText, recorded.SearchType)
	require.Equal(t, int64(7), recorded.UserID)
}

func TestTextSearch_EmptyQuery(t *testing.T) {
	s := NewSearchService(&mockSearchRepo{}, &mockCompleter{})
	_, err := s.Text(context.Background(), 7, "")
	require.ErrorIs(t, err, models.ErrValidation)
}

func TestTextSearch_UpstreamFailure(t *testing.T) {
	completer := &mockCompleter{
		ChatCompletionFunc: func(ctx context.Context, model string, messages []ai.Message, maxTokens int, temperature float64) (string, error) {
			return "", errors.New("completion status 503: " + models.ErrUpstream.Error())
		},
	}
	s := NewSearchService(&mockSearchRepo{}, completer)

	// AI failure fails the whole call; nothing must be recorded.
	_, err := s.Text(context.Background(), 7, "ramen")
	require.Error(t, err)
}

func TestImageSearch(t *testing.T) {
	var recorded models.Search
	completer := &mockCompleter{
		VisionCompletionFunc: func(ctx context.Context, model, prompt, imageB64 string) (string, error) {
			require.Contains(t, prompt, "landmark?")
			require.Equal(t, "aGVsbG8=", imageB64)
			return "That is the Eiffel Tower.", nil
		},
	}
	s := NewSearchService(recordingSearchRepo(&recorded), completer)

	res, err := s.Image(context.Background(), 7, "aGVsbG8=", "landmark?")
	require.NoError(t, err)
	require.Equal(t, "That is the Eiffel Tower.", res.Result)
	require.Equal(t, "Image search: landmark?", recorded.Query)
	require.Equal(t, models.SearchImage, recorded.SearchType)
}

func TestImageSearch_MissingImage(t *testing.T) {
	s := NewSearchService(&mockSearchRepo{}, &mockCompleter{})
	_, err := s.Image(context.Background(), 7, "", "landmark?")
	require.ErrorIs(t, err, models.ErrValidation)
}

func TestVoiceSearch(t *testing.T) {
	var recorded models.Search
	completer := &mockCompleter{
		TranscribeFunc: func(ctx context.Context, audio io.Reader, filename string) (string, error) {
			return "where can I park", nil
		},
		ChatCompletionFunc: func(ctx context.Context, model string, messages []ai.Message, maxTokens int, temperature float64) (string, error) {
			require.Equal(t, "where can I park", messages[1].Content)
			return "There is a garage on 5th.", nil
		},
	}
	s := NewSearchService(recordingSearchRepo(&recorded), completer)

	res, err := s.Voice(context.Background(), 7, strings.NewReader("audio bytes"), "query.wav")
	require.NoError(t, err)
	require.Equal(t, "where can I park", res.Query)
	require.Equal(t, "There is a garage on 5th.", res.Result)
	require.Equal(t, models.SearchVoice, recorded.SearchType)
	require.Equal(t, "where can I park", recorded.Query)
}
