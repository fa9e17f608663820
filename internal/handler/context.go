package handler

type ContextKey string

var (
	RequestIDCtx ContextKey = "requestID"
	EntryDateCtx ContextKey = "entryDate"
	PayPeriodCtx ContextKey = "payPeriod"
)
