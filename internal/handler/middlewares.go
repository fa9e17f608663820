package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/domain"
	"github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/payroll"
	"go.uber.org/zap"
)

type ResponseWriter struct {
	http.ResponseWriter
	StatusCode int
}

func (rw *ResponseWriter) WriteHeader(statusCode int) {
	rw.StatusCode = statusCode
	rw.ResponseWriter.WriteHeader(statusCode)
}

func (h *Handler) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)

		ctx := context.WithValue(r.Context(), RequestIDCtx, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &ResponseWriter{ResponseWriter: w, StatusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		fields := []zap.Field{
			zap.Int("status", rw.StatusCode),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("ip", r.RemoteAddr),
			zap.Any("requestID", r.Context().Value(RequestIDCtx)),
			zap.Duration("duration", time.Since(start)),
		}

		if rw.StatusCode >= 500 {
			h.log.Error("请求处理失败", fields...)
		} else {
			h.log.Info("已处理请求", fields...)
		}
	})
}

func (h *Handler) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				h.internalServerError(w, r, fmt.Errorf("panic: %v", err))
				h.log.Error("panic 堆栈", zap.ByteString("stack", debug.Stack()))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) entryDate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		date, err := payroll.ParseDate(chi.URLParam(r, "date"))
		if err != nil {
			h.errorResponse(w, r, "日期无效")
			return
		}

		ctx := context.WithValue(r.Context(), EntryDateCtx, date.Format(domain.DateLayout))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// payPeriodData 是某个计薪周期内的记录及其汇总
type payPeriodData struct {
	Entries []domain.DtrEntry
	Summary domain.Summary
}

func (h *Handler) payPeriod(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// key 可以是周期首日、all 或 latest
		key := chi.URLParam(r, "key")

		entries, summary, err := h.service.PeriodEntries(key)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrInvalidSelection):
				h.errorResponse(w, r, "计薪周期不存在")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		ctx := context.WithValue(r.Context(), PayPeriodCtx, &payPeriodData{Entries: entries, Summary: summary})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
