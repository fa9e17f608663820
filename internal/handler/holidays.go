package handler

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/domain"
	"github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/holiday"
	"github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/timecard"
)

const maxICSBodySize = 5 * 1024 * 1024

func (h *Handler) GetAllHolidays(w http.ResponseWriter, r *http.Request) {
	holidays, err := h.service.Holidays()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取节假日成功", holidays)
}

func (h *Handler) SaveHoliday(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Date      string `json:"date" validate:"required"`
		Name      string `json:"name" validate:"required"`
		Kind      string `json:"kind" validate:"required,oneof=REGULAR SPECIAL"`
		Statutory bool   `json:"statutory"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	saved, err := h.service.SaveHoliday(timecard.HolidayInput{
		Date:      req.Date,
		Name:      req.Name,
		Kind:      domain.HolidayKind(req.Kind),
		Statutory: req.Statutory,
	})
	if err != nil {
		h.serviceError(w, r, err)
		return
	}

	h.successResponse(w, r, "保存节假日成功", saved)
}

func (h *Handler) DeleteCustomHoliday(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")

	if err := h.service.DeleteCustomHoliday(date); err != nil {
		h.serviceError(w, r, err)
		return
	}

	h.successResponse(w, r, "删除节假日成功", nil)
}

// ImportHolidays 请求体为 ICS 内容，或者通过 url 参数指定日历订阅地址
func (h *Handler) ImportHolidays(w http.ResponseWriter, r *http.Request) {
	kind := domain.HolidaySpecial
	if k := r.URL.Query().Get("kind"); k != "" {
		parsed, err := domain.ParseHolidayKind(k)
		if err != nil {
			h.badRequest(w, r, err)
			return
		}
		kind = parsed
	}

	var body io.Reader = http.MaxBytesReader(w, r.Body, maxICSBodySize)
	if u := r.URL.Query().Get("url"); u != "" {
		ctx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.Holiday.ICSFetchTimeout)*time.Second)
		defer cancel()

		rc, err := holiday.FetchICS(ctx, u)
		if err != nil {
			h.errorResponse(w, r, err.Error())
			return
		}
		defer rc.Close()
		body = rc
	}

	n, err := h.service.ImportHolidays(body, kind)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}

	h.successResponse(w, r, "导入节假日成功", map[string]int{"imported": n})
}
