package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/palabras/backend/internal/domain/card"
	"github.com/palabras/backend/internal/domain/session"
)

// appDocument is the single JSON blob the file backend keeps on disk,
// holding all three collections together.
type appDocument struct {
	Flashcards       []cardRecord            `json:"flashcards"`
	LearningSessions []learningSessionRecord `json:"learning_sessions"`
	QuizSessions     []quizSessionRecord     `json:"quiz_sessions"`
}

// FileStore persists everything in one JSON document. Every write
// rewrites the document through a temp-file rename, so a crash mid-save
// leaves the previous version intact. A mutex serializes read-modify-write
// cycles across the three collections.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFile(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &FileStore{path: path}, nil
}

func (s *FileStore) Close() error {
	return nil
}

func (s *FileStore) LoadCards(ctx context.Context) ([]card.Flashcard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, err
	}

	cards := make([]card.Flashcard, len(doc.Flashcards))
	for i, rec := range doc.Flashcards {
		cards[i] = decodeCard(rec)
	}
	return cards, nil
}

func (s *FileStore) SaveCards(ctx context.Context, cards []card.Flashcard) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}

	doc.Flashcards = make([]cardRecord, len(cards))
	for i, c := range cards {
		doc.Flashcards[i] = encodeCard(c)
	}
	return s.write(doc)
}

func (s *FileStore) LoadLearningSessions(ctx context.Context) ([]session.LearningSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, err
	}

	sessions := make([]session.LearningSession, len(doc.LearningSessions))
	for i, rec := range doc.LearningSessions {
		sessions[i] = decodeLearningSession(rec)
	}
	return sessions, nil
}

func (s *FileStore) AppendLearningSession(ctx context.Context, ls session.LearningSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}

	doc.LearningSessions = append(doc.LearningSessions, encodeLearningSession(ls))
	return s.write(doc)
}

func (s *FileStore) LoadQuizSessions(ctx context.Context) ([]session.QuizSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, err
	}

	sessions := make([]session.QuizSession, len(doc.QuizSessions))
	for i, rec := range doc.QuizSessions {
		sessions[i] = decodeQuizSession(rec)
	}
	return sessions, nil
}

func (s *FileStore) AppendQuizSession(ctx context.Context, qs session.QuizSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}

	doc.QuizSessions = append(doc.QuizSessions, encodeQuizSession(qs))
	return s.write(doc)
}

// read loads the document, treating a missing file as an empty dataset.
func (s *FileStore) read() (appDocument, error) {
	var doc appDocument

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return doc, nil
	}
	if err != nil {
		return doc, err
	}

	if err := json.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return doc, nil
}

// write replaces the document atomically via temp file and rename.
func (s *FileStore) write(doc appDocument) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
