package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/palabras/backend/internal/domain/card"
)

// ── Request / Response types ────────────────────────────────────────────────

type CreateCardRequest struct {
	Spanish string `json:"spanish" example:"la biblioteca"`
	English string `json:"english" example:"the library"`
	Notes   string `json:"notes,omitempty" example:"feminine noun"`
}

func (r *CreateCardRequest) Validate() error {
	if r.Spanish == "" {
		return errors.New("spanish is required")
	}
	if r.English == "" {
		return errors.New("english is required")
	}
	return nil
}

type UpdateCardRequest struct {
	Spanish string `json:"spanish" example:"la biblioteca"`
	English string `json:"english" example:"the library"`
	Notes   string `json:"notes,omitempty" example:"feminine noun"`
}

func (r *UpdateCardRequest) Validate() error {
	if r.Spanish == "" {
		return errors.New("spanish is required")
	}
	if r.English == "" {
		return errors.New("english is required")
	}
	return nil
}

type CardStatisticsResponse struct {
	TimesShown         int        `json:"times_shown" example:"5"`
	TimesCorrect       int        `json:"times_correct" example:"4"`
	TimesIncorrect     int        `json:"times_incorrect" example:"1"`
	LastReviewed       *time.Time `json:"last_reviewed,omitempty"`
	SuccessRate        int        `json:"success_rate" example:"80"`
	Status             string     `json:"status" example:"learned"`
	ConsecutiveCorrect int        `json:"consecutive_correct" example:"2"`
}

type CardResponse struct {
	ID         string                 `json:"id" example:"a1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d"`
	Spanish    string                 `json:"spanish" example:"la biblioteca"`
	English    string                 `json:"english" example:"the library"`
	Notes      string                 `json:"notes,omitempty" example:"feminine noun"`
	CreatedAt  time.Time              `json:"created_at"`
	UpdatedAt  time.Time              `json:"updated_at"`
	Statistics CardStatisticsResponse `json:"statistics"`
}

type RecordAnswerRequest struct {
	WasCorrect bool `json:"was_correct" example:"true"`
}

type BatchAnswer struct {
	CardID     string `json:"card_id" example:"a1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d"`
	WasCorrect bool   `json:"was_correct" example:"true"`
}

type RecordAnswersRequest struct {
	Answers []BatchAnswer `json:"answers"`
}

func (r *RecordAnswersRequest) Validate() error {
	for _, a := range r.Answers {
		if a.CardID == "" {
			return errors.New("every answer needs a card_id")
		}
	}
	return nil
}

type RecordAnswersResponse struct {
	Applied int `json:"applied" example:"3"`
}

func cardResponse(c card.Flashcard) CardResponse {
	return CardResponse{
		ID:        c.ID,
		Spanish:   c.Spanish,
		English:   c.English,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		Statistics: CardStatisticsResponse{
			TimesShown:         c.Statistics.TimesShown,
			TimesCorrect:       c.Statistics.TimesCorrect,
			TimesIncorrect:     c.Statistics.TimesIncorrect,
			LastReviewed:       c.Statistics.LastReviewed,
			SuccessRate:        c.Statistics.SuccessRate,
			Status:             string(c.Statistics.Status),
			ConsecutiveCorrect: c.Statistics.ConsecutiveCorrect,
		},
	}
}

func cardResponses(cards []card.Flashcard) []CardResponse {
	out := make([]CardResponse, len(cards))
	for i, c := range cards {
		out[i] = cardResponse(c)
	}
	return out
}

// ── Handlers ────────────────────────────────────────────────────────────────

// createCard adds a flashcard to the collection.
// @Summary      Create a flashcard
// @Description  Create a new flashcard. The spanish term must be unique within the collection.
// @Tags         Cards
// @Accept       json
// @Produce      json
// @Param        body  body      CreateCardRequest  true  "Card to create"
// @Success      201   {object}  CardResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse  "duplicate spanish term"
// @Router       /cards [post]
func (h *Handler) createCard(w http.ResponseWriter, r *http.Request) {
	var req CreateCardRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.cards.Create(r.Context(), req.Spanish, req.English, req.Notes)
	if h.handleServiceError(w, err, "card") {
		return
	}

	respondJSON(w, http.StatusCreated, cardResponse(created))
}

// listCards lists the collection, optionally filtered by a search query.
// @Summary      List flashcards
// @Description  List all flashcards in collection order. Pass ?q= to filter by spanish or english term.
// @Tags         Cards
// @Produce      json
// @Param        q   query     string  false  "search query"
// @Success      200  {array}  CardResponse
// @Router       /cards [get]
func (h *Handler) listCards(w http.ResponseWriter, r *http.Request) {
	var (
		cards []card.Flashcard
		err   error
	)
	if query := r.URL.Query().Get("q"); query != "" {
		cards, err = h.cards.Search(r.Context(), query)
	} else {
		cards, err = h.cards.List(r.Context())
	}
	if h.handleServiceError(w, err, "cards") {
		return
	}

	respondJSON(w, http.StatusOK, cardResponses(cards))
}

// dueCards lists cards that need re-study, weakest first.
// @Summary      List cards due for review
// @Description  Cards with a success rate below 70% and fewer than two consecutive correct answers, weakest first.
// @Tags         Cards
// @Produce      json
// @Success      200  {array}  CardResponse
// @Router       /cards/due [get]
func (h *Handler) dueCards(w http.ResponseWriter, r *http.Request) {
	cards, err := h.cards.DueForReview(r.Context())
	if h.handleServiceError(w, err, "cards") {
		return
	}

	respondJSON(w, http.StatusOK, cardResponses(cards))
}

// getCard returns a single flashcard.
// @Summary      Get a flashcard
// @Tags         Cards
// @Produce      json
// @Param        cardID  path      string  true  "card id"
// @Success      200     {object}  CardResponse
// @Failure      404     {object}  errorResponse
// @Router       /cards/{cardID} [get]
func (h *Handler) getCard(w http.ResponseWriter, r *http.Request) {
	c, err := h.cards.Get(r.Context(), r.PathValue("cardID"))
	if h.handleServiceError(w, err, "card") {
		return
	}

	respondJSON(w, http.StatusOK, cardResponse(c))
}

// updateCard rewrites the text fields of a flashcard.
// @Summary      Update a flashcard
// @Description  Update the spanish term, english term and notes. Statistics are untouched.
// @Tags         Cards
// @Accept       json
// @Produce      json
// @Param        cardID  path      string             true  "card id"
// @Param        body    body      UpdateCardRequest  true  "new card text"
// @Success      200     {object}  CardResponse
// @Failure      400     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Failure      409     {object}  errorResponse  "duplicate spanish term"
// @Router       /cards/{cardID} [put]
func (h *Handler) updateCard(w http.ResponseWriter, r *http.Request) {
	var req UpdateCardRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.cards.Update(r.Context(), r.PathValue("cardID"), req.Spanish, req.English, req.Notes)
	if h.handleServiceError(w, err, "card") {
		return
	}

	respondJSON(w, http.StatusOK, cardResponse(updated))
}

// deleteCard removes a flashcard from the collection.
// @Summary      Delete a flashcard
// @Tags         Cards
// @Param        cardID  path  string  true  "card id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /cards/{cardID} [delete]
func (h *Handler) deleteCard(w http.ResponseWriter, r *http.Request) {
	if h.handleServiceError(w, h.cards.Delete(r.Context(), r.PathValue("cardID")), "card") {
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// recordAnswer applies one review verdict to a flashcard.
// @Summary      Record a review answer
// @Description  Update the card's statistics with a single correct/incorrect verdict.
// @Tags         Cards
// @Accept       json
// @Produce      json
// @Param        cardID  path      string               true  "card id"
// @Param        body    body      RecordAnswerRequest  true  "review verdict"
// @Success      200     {object}  CardResponse
// @Failure      404     {object}  errorResponse
// @Router       /cards/{cardID}/answer [post]
func (h *Handler) recordAnswer(w http.ResponseWriter, r *http.Request) {
	var req RecordAnswerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	updated, err := h.cards.RecordAnswer(r.Context(), r.PathValue("cardID"), req.WasCorrect)
	if h.handleServiceError(w, err, "card") {
		return
	}

	respondJSON(w, http.StatusOK, cardResponse(updated))
}

// recordAnswers applies a batch of review verdicts in one write.
// @Summary      Record review answers in batch
// @Description  Apply many verdicts with a single storage write. Unknown card ids are skipped.
// @Tags         Cards
// @Accept       json
// @Produce      json
// @Param        body  body      RecordAnswersRequest  true  "review verdicts"
// @Success      200   {object}  RecordAnswersResponse
// @Failure      400   {object}  errorResponse
// @Router       /cards/answers [post]
func (h *Handler) recordAnswers(w http.ResponseWriter, r *http.Request) {
	var req RecordAnswersRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updates := make([]card.AnswerUpdate, len(req.Answers))
	for i, a := range req.Answers {
		updates[i] = card.AnswerUpdate{CardID: a.CardID, WasCorrect: a.WasCorrect}
	}

	applied, err := h.cards.RecordAnswers(r.Context(), updates)
	if h.handleServiceError(w, err, "cards") {
		return
	}

	respondJSON(w, http.StatusOK, RecordAnswersResponse{Applied: applied})
}
