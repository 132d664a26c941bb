package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"postit-board/middleware"
	"postit-board/store"

	"github.com/go-chi/chi/v5"
)

type NoteHandler struct {
	notes *store.NoteStore
}

func NewNoteHandler(notes *store.NoteStore) *NoteHandler {
	return &NoteHandler{notes: notes}
}

func (h *NoteHandler) GetNotes(w http.ResponseWriter, r *http.Request) {
	adminID := middleware.AdminID(r)

	notes, err := h.notes.List(adminID)
	if err != nil {
		log.Printf("GetNotes - %v", err)
		http.Error(w, "Server error", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(notes)
}

func (h *NoteHandler) CreateNote(w http.ResponseWriter, r *http.Request) {
	adminID := middleware.AdminID(r)

	// an empty body means "all defaults"
	var fields store.NoteFields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	note, err := h.notes.Create(adminID, fields)
	if err != nil {
		log.Printf("CreateNote - %v", err)
		http.Error(w, "Server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(note)
}

func (h *NoteHandler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	adminID := middleware.AdminID(r)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid note id", http.StatusBadRequest)
		return
	}

	var patch store.NotePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	err = h.notes.Update(adminID, id, patch)
	var verr *store.ValidationError
	switch {
	case errors.As(err, &verr):
		http.Error(w, verr.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, store.ErrNotFound):
		http.Error(w, "Note not found", http.StatusNotFound)
		return
	case err != nil:
		log.Printf("UpdateNote - %v", err)
		http.Error(w, "Server error", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]string{"message": "Note updated"})
}

func (h *NoteHandler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	adminID := middleware.AdminID(r)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid note id", http.StatusBadRequest)
		return
	}

	err = h.notes.Delete(adminID, id)
	switch {
	case errors.Is(err, store.ErrNotFound):
		http.Error(w, "Note not found", http.StatusNotFound)
		return
	case err != nil:
		log.Printf("DeleteNote - %v", err)
		http.Error(w, "Server error", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]string{"message": "Note deleted"})
}
