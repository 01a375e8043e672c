package api

import (
	"errors"
	"net/http"

	"github.com/gowthamsai117/financial-app/internal/models"
	"github.com/gowthamsai117/financial-app/internal/transactions"
	"github.com/gowthamsai117/financial-app/internal/utils"
)

func (s *Server) listTransactions(w http.ResponseWriter, r *http.Request) {
	list, err := s.service.List(r.Context())
	if err != nil {
		s.internalError(w, r, "error listing transactions", err)
		return
	}

	s.writeJSON(w, http.StatusOK, list)
}

func (s *Server) createTransaction(w http.ResponseWriter, r *http.Request) {
	var req models.TransactionCreate
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if err := s.validateStruct(req); err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	tx, err := s.service.Create(r.Context(), req)
	if err != nil {
		if errors.Is(err, transactions.ErrInvalid) {
			s.writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		s.internalError(w, r, "error creating transaction", err)
		return
	}

	s.writeJSON(w, http.StatusCreated, tx)
}

func (s *Server) getTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := utils.GetIDFromPath(r)
	if err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, msgInvalidID)
		return
	}

	tx, err := s.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, transactions.ErrNotFound) {
			s.writeError(w, http.StatusNotFound, msgNotFound)
			return
		}
		s.internalError(w, r, "error fetching transaction", err)
		return
	}

	s.writeJSON(w, http.StatusOK, tx)
}

func (s *Server) updateTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := utils.GetIDFromPath(r)
	if err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, msgInvalidID)
		return
	}

	var patch models.TransactionUpdate
	if err := decodeJSON(r, &patch); err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err := patch.Validate(); err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	tx, err := s.service.Update(r.Context(), id, patch)
	if err != nil {
		switch {
		case errors.Is(err, transactions.ErrNotFound):
			s.writeError(w, http.StatusNotFound, msgNotFound)
		case errors.Is(err, transactions.ErrInvalid):
			s.writeError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			s.internalError(w, r, "error updating transaction", err)
		}
		return
	}

	s.writeJSON(w, http.StatusOK, tx)
}

func (s *Server) deleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := utils.GetIDFromPath(r)
	if err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, msgInvalidID)
		return
	}

	deleted, err := s.service.Delete(r.Context(), id)
	if err != nil {
		s.internalError(w, r, "error deleting transaction", err)
		return
	}
	if !deleted {
		s.writeError(w, http.StatusNotFound, msgNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
