package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/chris-regnier/moodctl/internal/journal"
	"github.com/chris-regnier/moodctl/internal/mood"
	"github.com/chris-regnier/moodctl/internal/storage"
)

type submitRequest struct {
	Date         string `json:"date"`
	Mood         string `json:"mood"`
	StressLevel  int    `json:"stress_level"`
	JournalEntry string `json:"journal_entry"`
	Contact      string `json:"contact"`
}

type submitResponse struct {
	Result string `json:"result"`
	Date   string `json:"date,omitempty"`
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	sub := journal.Submission{
		Mood:        req.Mood,
		StressLevel: req.StressLevel,
		Journal:     req.JournalEntry,
		Contact:     req.Contact,
	}
	if req.Date != "" {
		d, err := mood.ParseDate(req.Date)
		if err != nil {
			writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		sub.Date = d
	}

	res, err := s.svc.SubmitEntry(sub)
	switch {
	case errors.Is(err, storage.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		s.logger.Error("submit failed", "error", err)
		writeError(w, http.StatusInternalServerError, "storage error")
		return
	case res == journal.SubmitMissingMood:
		writeJSON(w, http.StatusUnprocessableEntity, submitResponse{Result: string(res)})
		return
	}

	date := sub.Date
	if date.IsZero() {
		date = s.svc.Today()
	}
	writeJSON(w, http.StatusCreated, submitResponse{Result: string(res), Date: date.Format(mood.DateLayout)})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		limit = n
	}

	h, err := s.svc.LoadHistory(limit)
	if err != nil {
		s.logger.Error("history failed", "error", err)
		writeError(w, http.StatusInternalServerError, "storage error")
		return
	}
	writeJSON(w, http.StatusOK, h)
}

func (s *Server) handleDeleteAll(w http.ResponseWriter, r *http.Request) {
	if confirm, _ := strconv.ParseBool(r.URL.Query().Get("confirm")); !confirm {
		n, err := s.svc.Count()
		if err != nil {
			writeError(w, http.StatusInternalServerError, "storage error")
			return
		}
		writeJSON(w, http.StatusConflict, map[string]any{
			"error":   "confirmation required: repeat with ?confirm=true",
			"entries": n,
		})
		return
	}

	if err := s.svc.DeleteAllEntries(); err != nil {
		s.logger.Error("delete all failed", "error", err)
		writeError(w, http.StatusInternalServerError, "storage error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"quote": s.svc.PickMotivationalQuote()})
}
