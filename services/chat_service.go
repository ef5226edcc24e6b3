package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"doc-lab/analysis"
	"doc-lab/domain"
	doclaberrors "doc-lab/errors"
	"doc-lab/extraction"
	"doc-lab/intent"
	"doc-lab/repositories"
	"doc-lab/responder"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	pipelineApology = "I encountered an error while processing your request. " +
		"Let me try a different approach."
	extractionApology = "I'm sorry, I couldn't extract readable text from this file. " +
		"I can work with text documents, PDFs with text content, and other readable file formats."
)

type IChatService interface {
	Respond(ctx context.Context, req ChatRequest) (string, error)
}

type ChatRequest struct {
	Message string `validate:"required"`
	Payload *domain.Payload
	History []domain.Turn
}

type ChatService struct {
	extractor  *extraction.Extractor
	analyzer   *analysis.Analyzer
	responder  *responder.Responder
	repository repositories.IAnalysisRepository
	validate   *validator.Validate
	log        *slog.Logger
	maxContent int
}

// NewChatService wires the full pipeline. repository may be nil, in which
// case every payload is analyzed from scratch.
func NewChatService(
	extractor *extraction.Extractor,
	analyzer *analysis.Analyzer,
	resp *responder.Responder,
	repository repositories.IAnalysisRepository,
	log *slog.Logger,
	maxContent int,
) *ChatService {
	return &ChatService{
		extractor:  extractor,
		analyzer:   analyzer,
		responder:  resp,
		repository: repository,
		validate:   validator.New(),
		log:        log,
		maxContent: maxContent,
	}
}

// Respond is the single entry point. Any panic escaping the pipeline is
// contained here and converted into the fixed apology so the caller always
// receives a string.
func (s *ChatService) Respond(ctx context.Context, req ChatRequest) (reply string, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("pipeline failure", "panic", r)
			reply, err = pipelineApology, nil
		}
	}()

	if err := s.validate.Struct(req); err != nil {
		return "", fmt.Errorf("invalid request: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if req.Payload == nil {
		it := intent.DetectConversation(req.Message)
		s.log.Debug("no payload", "intent", it)
		return responder.Conversation(it), nil
	}

	if s.maxContent > 0 && len(req.Payload.Data) > s.maxContent {
		return "", fmt.Errorf("payload of %d bytes: %w",
			len(req.Payload.Data), doclaberrors.ErrContentTooLarge)
	}

	text, ok := s.extractor.Extract(*req.Payload)
	if !ok {
		s.log.Info("document turn aborted",
			"mime_type", req.Payload.MimeType,
			"error", doclaberrors.ErrNoReadableText)
		return extractionApology, nil
	}

	// conversation context is built for every turn; a future multi-turn
	// synthesis can consume it, today it is a debug diagnostic only
	s.log.Debug("conversation context", "context", domain.BuildContext(req.History))

	record := s.analyzeWithCache(text, req.Payload.MimeType)
	it := intent.Detect(req.Message)
	s.log.Debug("document turn", "intent", it, "words", record.WordCount)

	return s.responder.Respond(it, req.Message, text, record), nil
}

// analyzeWithCache returns the cached record for identical extracted text,
// if a repository is wired; the analysis battery is deterministic so a hit
// is byte-equivalent to recomputation.
func (s *ChatService) analyzeWithCache(text, mimeType string) domain.Analysis {
	if s.repository == nil {
		return s.analyzer.Analyze(text, mimeType)
	}

	sum := sha256.Sum256([]byte(text))
	checksum := hex.EncodeToString(sum[:])

	if doc, found, err := s.repository.Fetch(checksum); err != nil {
		s.log.Warn("analysis cache fetch failed", "error", err)
	} else if found {
		return doc.Record
	}

	record := s.analyzer.Analyze(text, mimeType)
	if err := s.repository.Store(repositories.Document{
		ID:       uuid.New(),
		Checksum: checksum,
		At:       time.Now().UTC(),
		Record:   record,
	}); err != nil {
		s.log.Warn("analysis cache store failed", "error", err)
	}
	return record
}
