package api_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palabras/backend/internal/api"
	"github.com/palabras/backend/internal/service"
	"github.com/palabras/backend/internal/store"
)

// newServer wires the full handler stack over a file store in a temp
// directory.
func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	s, err := store.NewFile(filepath.Join(t.TempDir(), "app.json"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	logger := slog.New(slog.DiscardHandler)
	handler := api.NewHandler(
		service.NewCardService(s, logger),
		service.NewSessionService(s, logger),
		logger,
	)

	mux := http.NewServeMux()
	api.RegisterRoutes(mux, handler)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url string, body any, out any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func createCard(t *testing.T, baseURL, spanish, english string) api.CardResponse {
	t.Helper()
	var created api.CardResponse
	resp := doJSON(t, http.MethodPost, baseURL+"/cards", api.CreateCardRequest{
		Spanish: spanish,
		English: english,
	}, &created)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return created
}

func TestCardLifecycle(t *testing.T) {
	srv := newServer(t)

	created := createCard(t, srv.URL, "hola", "hello")
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "new", created.Statistics.Status)

	// duplicate term is rejected
	resp := doJSON(t, http.MethodPost, srv.URL+"/cards", api.CreateCardRequest{
		Spanish: "HOLA", English: "hi",
	}, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// update
	var updated api.CardResponse
	resp = doJSON(t, http.MethodPut, srv.URL+"/cards/"+created.ID, api.UpdateCardRequest{
		Spanish: "hola", English: "hello there", Notes: "greeting",
	}, &updated)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "hello there", updated.English)

	// get
	var fetched api.CardResponse
	resp = doJSON(t, http.MethodGet, srv.URL+"/cards/"+created.ID, nil, &fetched)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "greeting", fetched.Notes)

	// delete
	resp = doJSON(t, http.MethodDelete, srv.URL+"/cards/"+created.ID, nil, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, srv.URL+"/cards/"+created.ID, nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateCard_Validation(t *testing.T) {
	srv := newServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/cards", api.CreateCardRequest{English: "hello"}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestListCards_Search(t *testing.T) {
	srv := newServer(t)
	createCard(t, srv.URL, "hola", "hello")
	createCard(t, srv.URL, "agua", "water")

	var all []api.CardResponse
	resp := doJSON(t, http.MethodGet, srv.URL+"/cards", nil, &all)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, all, 2)

	var filtered []api.CardResponse
	resp = doJSON(t, http.MethodGet, srv.URL+"/cards?q=wat", nil, &filtered)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, filtered, 1)
	assert.Equal(t, "agua", filtered[0].Spanish)
}

func TestRecordAnswer_UpdatesStatistics(t *testing.T) {
	srv := newServer(t)
	created := createCard(t, srv.URL, "hola", "hello")

	var updated api.CardResponse
	resp := doJSON(t, http.MethodPost, srv.URL+"/cards/"+created.ID+"/answer",
		api.RecordAnswerRequest{WasCorrect: true}, &updated)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, updated.Statistics.TimesShown)
	assert.Equal(t, 100, updated.Statistics.SuccessRate)
	assert.Equal(t, "learning", updated.Statistics.Status)
	require.NotNil(t, updated.Statistics.LastReviewed)
}

func TestRecordAnswers_Batch(t *testing.T) {
	srv := newServer(t)
	first := createCard(t, srv.URL, "hola", "hello")
	second := createCard(t, srv.URL, "agua", "water")

	var result api.RecordAnswersResponse
	resp := doJSON(t, http.MethodPost, srv.URL+"/cards/answers", api.RecordAnswersRequest{
		Answers: []api.BatchAnswer{
			{CardID: first.ID, WasCorrect: true},
			{CardID: second.ID, WasCorrect: false},
			{CardID: "ghost", WasCorrect: true},
		},
	}, &result)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, result.Applied)
}

func TestDueCards(t *testing.T) {
	srv := newServer(t)
	weak := createCard(t, srv.URL, "hola", "hello")
	strong := createCard(t, srv.URL, "agua", "water")

	doJSON(t, http.MethodPost, srv.URL+"/cards/"+weak.ID+"/answer", api.RecordAnswerRequest{WasCorrect: false}, nil)
	for range 3 {
		doJSON(t, http.MethodPost, srv.URL+"/cards/"+strong.ID+"/answer", api.RecordAnswerRequest{WasCorrect: true}, nil)
	}

	var due []api.CardResponse
	resp := doJSON(t, http.MethodGet, srv.URL+"/cards/due", nil, &due)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, due, 1)
	assert.Equal(t, weak.ID, due[0].ID)
}

func TestQuizFlow(t *testing.T) {
	srv := newServer(t)
	for _, pair := range [][2]string{
		{"hola", "hello"}, {"agua", "water"}, {"comida", "food"},
		{"perro", "dog"}, {"gato", "cat"},
	} {
		createCard(t, srv.URL, pair[0], pair[1])
	}

	var quiz api.GenerateQuizResponse
	resp := doJSON(t, http.MethodPost, srv.URL+"/quizzes", api.GenerateQuizRequest{
		Type: "multiple-choice", Count: 3,
	}, &quiz)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, quiz.Questions, 3)
	for _, q := range quiz.Questions {
		assert.Len(t, q.Options, 4)
		assert.Equal(t, q.CorrectAnswer, q.Options[q.CorrectIndex])
	}

	// answer the first correctly, the rest wrong
	answered := make([]api.AnsweredQuestion, len(quiz.Questions))
	for i, q := range quiz.Questions {
		answered[i] = api.AnsweredQuestion{
			ID:            q.ID,
			CardID:        q.CardID,
			Prompt:        q.Prompt,
			Options:       q.Options,
			CorrectIndex:  q.CorrectIndex,
			CorrectAnswer: q.CorrectAnswer,
			UserAnswer:    q.CorrectAnswer,
			WasCorrect:    i == 0,
		}
	}

	var completed api.QuizSessionResponse
	resp = doJSON(t, http.MethodPost, srv.URL+"/quizzes/complete", api.CompleteQuizRequest{
		Type: "multiple-choice", Questions: answered,
	}, &completed)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, 33, completed.ScorePercent)
	assert.True(t, completed.Completed)

	var history []api.QuizSessionResponse
	resp = doJSON(t, http.MethodGet, srv.URL+"/quizzes?type=multiple-choice", nil, &history)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, history, 1)

	var avg api.AverageQuizScoreResponse
	resp = doJSON(t, http.MethodGet, srv.URL+"/quizzes/average", nil, &avg)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 33, avg.AverageScore)
	assert.Equal(t, 1, avg.Sessions)
}

func TestGenerateQuiz_InvalidType(t *testing.T) {
	srv := newServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/quizzes", api.GenerateQuizRequest{
		Type: "matching", Count: 3,
	}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLearningSessionAndStats(t *testing.T) {
	srv := newServer(t)
	first := createCard(t, srv.URL, "hola", "hello")
	second := createCard(t, srv.URL, "agua", "water")

	var recorded api.LearningSessionResponse
	resp := doJSON(t, http.MethodPost, srv.URL+"/learning-sessions", api.RecordLearningSessionRequest{
		CardsReviewed:   []string{first.ID, second.ID},
		CorrectCards:    []string{first.ID},
		IncorrectCards:  []string{second.ID},
		DurationSeconds: 120,
	}, &recorded)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.NotEmpty(t, recorded.ID)

	var sessions []api.LearningSessionResponse
	resp = doJSON(t, http.MethodGet, srv.URL+"/learning-sessions", nil, &sessions)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, sessions, 1)

	var streaks api.StreaksResponse
	resp = doJSON(t, http.MethodGet, srv.URL+"/stats/streaks", nil, &streaks)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, streaks.CurrentStreak)
	assert.Equal(t, 1, streaks.LongestStreak)

	var daily []api.DailyActivityResponse
	resp = doJSON(t, http.MethodGet, srv.URL+"/stats/daily?days=3", nil, &daily)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, daily, 3)
	today := daily[len(daily)-1]
	assert.Equal(t, 2, today.CardsReviewed)
	assert.Equal(t, 50, today.SuccessRate)

	var overall api.OverallStatsResponse
	resp = doJSON(t, http.MethodGet, srv.URL+"/stats/overall", nil, &overall)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, overall.TotalSessions)
	assert.Equal(t, 2, overall.TotalCardsReviewed)
	assert.Equal(t, 120, overall.AverageSessionDurationSeconds)
}

func TestDailyActivity_RejectsBadWindow(t *testing.T) {
	srv := newServer(t)

	resp := doJSON(t, http.MethodGet, srv.URL+"/stats/daily?days=zero", nil, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestExport(t *testing.T) {
	srv := newServer(t)
	created := createCard(t, srv.URL, "hola", "hello")
	doJSON(t, http.MethodPost, srv.URL+"/learning-sessions", api.RecordLearningSessionRequest{
		CardsReviewed: []string{created.ID},
		CorrectCards:  []string{created.ID},
	}, nil)

	var export api.ExportData
	resp := doJSON(t, http.MethodGet, srv.URL+"/export", nil, &export)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "1.0", export.Version)
	assert.NotEmpty(t, export.ExportedAt)
	require.Len(t, export.Flashcards, 1)
	require.Len(t, export.LearningSessions, 1)
	assert.Empty(t, export.QuizSessions)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "palabras-export.json")
}
