package handler

import (
	"net/http"

	"github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/domain"
	"github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/timecard"
)

func (h *Handler) GetAllEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.Entries()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取所有记录成功", entries)
}

func (h *Handler) SaveEntry(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Date         string              `json:"date" validate:"required"`
		Location     string              `json:"location"`
		TimeIn       string              `json:"timeIn" validate:"required"`
		TimeOut      string              `json:"timeOut" validate:"required"`
		BreakMinutes int                 `json:"breakMinutes" validate:"gte=0"`
		Settings     *domain.PaySettings `json:"settings"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	entry, err := h.service.SaveEntry(timecard.EntryInput{
		Date:         req.Date,
		Location:     req.Location,
		TimeIn:       req.TimeIn,
		TimeOut:      req.TimeOut,
		BreakMinutes: req.BreakMinutes,
		Settings:     req.Settings,
	})
	if err != nil {
		h.serviceError(w, r, err)
		return
	}

	h.successResponse(w, r, "保存记录成功", entry)
}

func (h *Handler) GetEntry(w http.ResponseWriter, r *http.Request) {
	date := r.Context().Value(EntryDateCtx).(string)

	detail, err := h.service.Entry(date)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取记录成功", detail)
}

func (h *Handler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	date := r.Context().Value(EntryDateCtx).(string)

	if err := h.service.DeleteEntry(date); err != nil {
		h.serviceError(w, r, err)
		return
	}

	h.successResponse(w, r, "删除记录成功", nil)
}

func (h *Handler) BulkDeleteEntries(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Mode   string `json:"mode" validate:"required,oneof=period before"`
		Period string `json:"period" validate:"required_if=Mode period"`
		Cutoff string `json:"cutoff" validate:"required_if=Mode before"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	var (
		deleted int
		err     error
	)
	switch req.Mode {
	case "period":
		deleted, err = h.service.DeleteByPeriod(req.Period)
	case "before":
		deleted, err = h.service.DeleteBefore(req.Cutoff)
	}
	if err != nil {
		h.serviceError(w, r, err)
		return
	}

	h.successResponse(w, r, "批量删除成功", map[string]int{"deleted": deleted})
}
