package handlers

import (
	"net/http"

	"github.com/Dosada05/handball-club-system/services"
)

type GameEventHandler struct {
	gameEventService services.GameEventService
}

func NewGameEventHandler(gameEventService services.GameEventService) *GameEventHandler {
	return &GameEventHandler{gameEventService: gameEventService}
}

func (h *GameEventHandler) CreateGameEventHandler(w http.ResponseWriter, r *http.Request) {
	var input services.CreateGameEventInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	event, err := h.gameEventService.Create(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, event, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *GameEventHandler) UpdateGameEventHandler(w http.ResponseWriter, r *http.Request) {
	eventID, err := getIDFromURL(r, "eventID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.UpdateGameEventInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	event, err := h.gameEventService.Update(r.Context(), eventID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, event, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *GameEventHandler) DeleteGameEventHandler(w http.ResponseWriter, r *http.Request) {
	eventID, err := getIDFromURL(r, "eventID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.gameEventService.Delete(r.Context(), eventID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *GameEventHandler) ListMatchGameEventsHandler(w http.ResponseWriter, r *http.Request) {
	matchID, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	events, err := h.gameEventService.ListByMatch(r.Context(), matchID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"game_events": events}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
