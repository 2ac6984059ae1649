package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/Kevindmm/secret-santa-organizer/internal/application/game"
	domerrors "github.com/Kevindmm/secret-santa-organizer/internal/domain/errors"
	"github.com/Kevindmm/secret-santa-organizer/internal/infrastructure/http/middleware"
)

// GamesHandler serves the /api/games surface.
type GamesHandler struct {
	create      *game.CreateGame
	add         *game.AddParticipant
	run         *game.RunAssignment
	list        *game.ListParticipants
	joinBaseURL string
	validate    *validator.Validate
	log         zerolog.Logger
}

// NewGamesHandler builds the handler. joinBaseURL prefixes the shareable
// join link returned on game creation.
func NewGamesHandler(create *game.CreateGame, add *game.AddParticipant, run *game.RunAssignment, list *game.ListParticipants, joinBaseURL string, log zerolog.Logger) *GamesHandler {
	return &GamesHandler{
		create:      create,
		add:         add,
		run:         run,
		list:        list,
		joinBaseURL: joinBaseURL,
		validate:    validator.New(),
		log:         log,
	}
}

// Create handles POST /api/games.
func (h *GamesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name         string          `json:"name" validate:"required,max=100"`
		MaxPrice     decimal.Decimal `json:"maxPrice" validate:"required"`
		ExchangeDate string          `json:"exchangeDate" validate:"omitempty,datetime=2006-01-02"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())
		return
	}
	name := SanitizeName(body.Name)
	if name == "" {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "name must not be blank")
		return
	}
	if body.MaxPrice.Sign() <= 0 {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "maxPrice must be positive")
		return
	}
	var exchangeDate *time.Time
	if body.ExchangeDate != "" {
		d, err := time.Parse("2006-01-02", body.ExchangeDate)
		if err != nil {
			writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "exchangeDate must be YYYY-MM-DD")
			return
		}
		exchangeDate = &d
	}

	result, err := h.create.Execute(r.Context(), game.CreateGameInput{
		Name:         name,
		MaxPrice:     body.MaxPrice,
		ExchangeDate: exchangeDate,
	})
	if err != nil {
		h.writeDomainErr(w, r, "game.create", "", err)
		return
	}
	gameID := result.Game.ID.String()
	h.log.Info().Str("game_id", gameID).Str("name", name).Msg("game created")
	middleware.RecordGameCreated()
	writeJSON(w, http.StatusCreated, map[string]string{
		"gameId":  gameID,
		"joinUrl": h.joinBaseURL + "/join/" + gameID,
	})
}

// AddParticipant handles POST /api/games/{gameID}/participants.
func (h *GamesHandler) AddParticipant(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameID")
	var body struct {
		Name     string `json:"name" validate:"required,max=100"`
		Email    string `json:"email" validate:"required,email,max=254"`
		WishList string `json:"wishList" validate:"omitempty,max=2000"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())
		return
	}
	name := SanitizeName(body.Name)
	email := SanitizeEmail(body.Email)
	if name == "" || email == "" {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid name or email")
		return
	}

	result, err := h.add.Execute(r.Context(), game.AddParticipantInput{
		GameID:   gameID,
		Name:     name,
		Email:    email,
		WishList: TruncateWishList(body.WishList),
	})
	if err != nil {
		h.writeDomainErr(w, r, "participant.add", gameID, err)
		return
	}
	h.log.Info().Str("game_id", gameID).Str("email", email).Msg("participant added")
	middleware.RecordParticipantJoined()
	writeJSON(w, http.StatusCreated, map[string]string{
		"participantId": result.Participant.ID.String(),
	})
}

// Assign handles POST /api/games/{gameID}/assign.
func (h *GamesHandler) Assign(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameID")
	result, err := h.run.Execute(r.Context(), game.RunAssignmentInput{GameID: gameID})
	if err != nil {
		middleware.RecordAssignment(false)
		h.writeDomainErr(w, r, "game.assign", gameID, err)
		return
	}
	h.log.Info().Str("game_id", gameID).Int("participants", result.Participants).Msg("assignments done")
	middleware.RecordAssignment(true)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"participants": result.Participants,
	})
}

// ListParticipants handles GET /api/games/{gameID}/participants. The
// receiver identity is never exposed here; only the assigned flag is.
func (h *GamesHandler) ListParticipants(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameID")
	result, err := h.list.Execute(r.Context(), game.ListParticipantsInput{GameID: gameID})
	if err != nil {
		h.writeDomainErr(w, r, "participant.list", gameID, err)
		return
	}
	out := make([]map[string]interface{}, 0, len(result.Participants))
	for _, p := range result.Participants {
		out = append(out, map[string]interface{}{
			"id":       p.ID.String(),
			"name":     p.Name,
			"email":    p.Email,
			"assigned": p.Assigned(),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// writeDomainErr maps the error taxonomy to HTTP statuses and codes.
func (h *GamesHandler) writeDomainErr(w http.ResponseWriter, r *http.Request, event, gameID string, err error) {
	switch {
	case errors.Is(err, domerrors.ErrGameNotFound):
		writeErr(w, http.StatusNotFound, ErrCodeGameNotFound, err.Error())
	case errors.Is(err, domerrors.ErrDuplicateEmail):
		writeErr(w, http.StatusConflict, ErrCodeDuplicateEmail, err.Error())
	case errors.Is(err, domerrors.ErrAlreadyAssigned):
		writeErr(w, http.StatusConflict, ErrCodeAlreadyAssigned, err.Error())
	case errors.Is(err, domerrors.ErrInsufficientParticipants):
		writeErr(w, http.StatusConflict, ErrCodeInsufficientParticipants, err.Error())
	case errors.Is(err, domerrors.ErrValidation):
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())
	default:
		h.log.Error().Err(err).Str("event", event).Str("game_id", gameID).Msg("request failed")
		writeErr(w, http.StatusInternalServerError, ErrCodeInternal, "internal error")
	}
}
