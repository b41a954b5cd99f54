package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/lookate/backend/internal/ai"
	"github.com/lookate/backend/internal/models"
)

// Completer defines the AI-service operations consumed by the search and
// chat services.
type Completer interface {
	// ChatCompletion returns the model's reply to the conversation.
	ChatCompletion(ctx context.Context, model string, messages []ai.Message, maxTokens int, temperature float64) (string, error)
	// VisionCompletion returns the model's reply to a prompt plus image.
	VisionCompletion(ctx context.Context, model, prompt, imageB64 string) (string, error)
	// Transcribe converts an uploaded audio file to text.
	Transcribe(ctx context.Context, audio io.Reader, filename string) (string, error)
}

const searchSystemPrompt = "You are a helpful AI assistant for Lookate, an AI-powered discovery app. " +
	"Provide accurate, helpful responses about the user's query."

const voiceSystemPrompt = "You are a helpful AI assistant for voice queries. Provide concise, accurate responses."

// SearchResult is the outcome of one search passthrough call.
type SearchResult struct {
	// SearchID identifies the stored record.
	SearchID string
	// Query is the effective query text (the transcript, for voice).
	Query string
	// Result is the completion text.
	Result string
	// Suggestions are follow-up query hints (text search only).
	Suggestions []string
}

// SearchService forwards text, image and voice searches to the AI service
// and records each one. An AI failure fails the whole call; the response is
// nothing without it.
type SearchService struct {
	repo SearchRepository
	ai   Completer
}

// NewSearchService constructs a SearchService with the provided repository
// and completion client.
func NewSearchService(repo SearchRepository, completer Completer) *SearchService {
	return &SearchService{repo: repo, ai: completer}
}

// Text runs a plain text search and stores the record.
func (s *SearchService) Text(ctx context.Context, userID int64, query string) (SearchResult, error) {
	if query == "" {
		return SearchResult{}, fmt.Errorf("query is required: %w", models.ErrValidation)
	}

	result, err := s.ai.ChatCompletion(ctx, "gpt-3.5-turbo", []ai.Message{
		{Role: "system", Content: searchSystemPrompt},
		{Role: "user", Content: query},
	}, 500, 0.7)
	if err != nil {
		return SearchResult{}, err
	}

	id, err := s.record(ctx, userID, query, models.SearchText, result)
	if err != nil {
		return SearchResult{}, err
	}

	return SearchResult{
		SearchID:    id,
		Query:       query,
		Result:      result,
		Suggestions: suggestions(query),
	}, nil
}

// Image runs an image search on a base64-encoded image with an optional
// accompanying query and stores the record.
func (s *SearchService) Image(ctx context.Context, userID int64, imageB64, query string) (SearchResult, error) {
	if imageB64 == "" {
		return SearchResult{}, fmt.Errorf("image data is required: %w", models.ErrValidation)
	}

	prompt := "Analyze this image and provide detailed information. User query: " + query
	result, err := s.ai.VisionCompletion(ctx, "gpt-4-vision-preview", prompt, imageB64)
	if err != nil {
		return SearchResult{}, err
	}

	recorded := "Image identification"
	if query != "" {
		recorded = "Image search: " + query
	}
	id, err := s.record(ctx, userID, recorded, models.SearchImage, result)
	if err != nil {
		return SearchResult{}, err
	}

	return SearchResult{SearchID: id, Query: recorded, Result: result}, nil
}

// Voice transcribes the uploaded audio, answers the transcribed query and
// stores the record. The returned Query field carries the transcript.
func (s *SearchService) Voice(ctx context.Context, userID int64, audio io.Reader, filename string) (SearchResult, error) {
	if audio == nil {
		return SearchResult{}, fmt.Errorf("audio file is required: %w", models.ErrValidation)
	}

	transcript, err := s.ai.Transcribe(ctx, audio, filename)
	if err != nil {
		return SearchResult{}, err
	}

	result, err := s.ai.ChatCompletion(ctx, "gpt-3.5-turbo", []ai.Message{
		{Role: "system", Content: voiceSystemPrompt},
		{Role: "user", Content: transcript},
	}, 300, 0.7)
	if err != nil {
		return SearchResult{}, err
	}

	id, err := s.record(ctx, userID, transcript, models.SearchVoice, result)
	if err != nil {
		return SearchResult{}, err
	}

	return SearchResult{SearchID: id, Query: transcript, Result: result}, nil
}

func (s *SearchService) record(ctx context.Context, userID int64, query, searchType, result string) (string, error) {
	search := models.Search{
		ID:         uuid.New().String(),
		UserID:     userID,
		Query:      query,
		SearchType: searchType,
		Result:     result,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.repo.CreateSearch(ctx, search); err != nil {
		return "", err
	}
	return search.ID, nil
}

// suggestions builds follow-up query hints from the original query.
func suggestions(query string) []string {
	return []string{
		"Find " + query + " nearby",
		"Best " + query + " in the area",
		"Reviews for " + query,
	}
}
