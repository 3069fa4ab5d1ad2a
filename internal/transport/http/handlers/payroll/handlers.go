package payrollhandler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"payrolldesk/internal/domain/payroll"
	"payrolldesk/internal/transport/http/api"
)

type Handler struct {
	Store payroll.RecordStore
}

func NewHandler(store payroll.RecordStore) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payroll", func(r chi.Router) {
		r.Get("/all", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/{recordID}", h.handleGet)
		r.Put("/{recordID}", h.handleUpdate)
		r.Delete("/{recordID}", h.handleDelete)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	filter, err := payroll.ParseFilter(r.URL.Query())
	if err != nil {
		api.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	records, err := h.Store.List(r.Context(), filter)
	if err != nil {
		log.Printf("payroll list failed: %v", err)
		api.Fail(w, http.StatusInternalServerError, "failed to list payroll records")
		return
	}
	api.WriteJSON(w, http.StatusOK, records)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	rec, err := h.Store.Get(r.Context(), chi.URLParam(r, "recordID"))
	if errors.Is(err, payroll.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "payroll record not found")
		return
	}
	if err != nil {
		log.Printf("payroll get failed: %v", err)
		api.Fail(w, http.StatusInternalServerError, "failed to fetch payroll record")
		return
	}
	api.WriteJSON(w, http.StatusOK, rec)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	rec, ok := decodeRecord(w, r)
	if !ok {
		return
	}

	created, err := h.Store.Create(r.Context(), rec)
	if err != nil {
		log.Printf("payroll create failed: %v", err)
		api.Fail(w, http.StatusInternalServerError, "failed to create payroll record")
		return
	}
	api.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	rec, ok := decodeRecord(w, r)
	if !ok {
		return
	}

	updated, err := h.Store.Update(r.Context(), chi.URLParam(r, "recordID"), rec)
	if errors.Is(err, payroll.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "payroll record not found")
		return
	}
	if err != nil {
		log.Printf("payroll update failed: %v", err)
		api.Fail(w, http.StatusInternalServerError, "failed to update payroll record")
		return
	}
	api.WriteJSON(w, http.StatusOK, updated)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	err := h.Store.Delete(r.Context(), chi.URLParam(r, "recordID"))
	if errors.Is(err, payroll.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "payroll record not found")
		return
	}
	if err != nil {
		log.Printf("payroll delete failed: %v", err)
		api.Fail(w, http.StatusInternalServerError, "failed to delete payroll record")
		return
	}
	api.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// decodeRecord parses the body and enforces the only store-side rule: the
// identification fields must be present. Everything else is stored as
// submitted, total_salary included.
func decodeRecord(w http.ResponseWriter, r *http.Request) (payroll.Record, bool) {
	var rec payroll.Record
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid JSON body")
		return payroll.Record{}, false
	}
	if strings.TrimSpace(rec.EmpCode) == "" || strings.TrimSpace(rec.EmpName) == "" {
		api.Fail(w, http.StatusBadRequest, "emp_code and emp_name are required")
		return payroll.Record{}, false
	}
	rec.ID = ""
	return payroll.Normalize(&rec), true
}
