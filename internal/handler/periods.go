package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/export"
)

func (h *Handler) GetPeriods(w http.ResponseWriter, r *http.Request) {
	periods, err := h.service.Periods()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取计薪周期成功", periods)
}

func (h *Handler) GetPeriodSummary(w http.ResponseWriter, r *http.Request) {
	period := r.Context().Value(PayPeriodCtx).(*payPeriodData)

	h.successResponse(w, r, "获取周期汇总成功", period.Summary)
}

func (h *Handler) ExportPeriodCSV(w http.ResponseWriter, r *http.Request) {
	period := r.Context().Value(PayPeriodCtx).(*payPeriodData)

	// 先写到缓冲区，出错时还能返回 JSON
	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, period.Entries, period.Summary); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeFile(w, "text/csv; charset=utf-8", export.FileName(period.Summary.Period, "csv"), buf.Bytes())
}

func (h *Handler) ExportPeriodXLSX(w http.ResponseWriter, r *http.Request) {
	period := r.Context().Value(PayPeriodCtx).(*payPeriodData)

	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, period.Entries, period.Summary); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeFile(w, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", export.FileName(period.Summary.Period, "xlsx"), buf.Bytes())
}

func (h *Handler) writeFile(w http.ResponseWriter, contentType, filename string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
