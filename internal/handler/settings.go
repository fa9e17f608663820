package handler

import (
	"net/http"

	"github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/domain"
)

func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.service.Settings()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取薪资设置成功", settings)
}

func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req domain.PaySettings

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.service.ChangeSettings(req); err != nil {
		h.serviceError(w, r, err)
		return
	}

	h.successResponse(w, r, "更新薪资设置成功", req)
}

func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Confirm bool `json:"confirm" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.errorResponse(w, r, "请确认清空所有数据")
		return
	}

	if err := h.service.Reset(); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "已清空所有数据", nil)
}
