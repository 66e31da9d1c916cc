package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"remitsvc/internal/service"
)

// QuoteRequest represents the request body for composing a quote.
type QuoteRequest struct {
	Amount decimal.Decimal `json:"amount" example:"100.50"`
	From   string          `json:"from" example:"USD"`
	To     string          `json:"to" example:"EUR"`
}

// QuoteResponse represents a composed quote.
type QuoteResponse struct {
	Amount           decimal.Decimal `json:"amount" example:"100.50"`
	From             string          `json:"from" example:"USD"`
	To               string          `json:"to" example:"EUR"`
	Rate             decimal.Decimal `json:"rate" example:"0.92"`
	ConvertedAmount  decimal.Decimal `json:"converted_amount" example:"92.46"`
	Fee              decimal.Decimal `json:"fee" example:"2"`
	TotalAmount      decimal.Decimal `json:"total_amount" example:"102.50"`
	DeliveryEstimate string          `json:"delivery_estimate" example:"1-2 hours"`
	Source           string          `json:"source" example:"live"`
	QuotedAt         string          `json:"quoted_at" example:"2025-12-01T10:15:30Z"`
}

// TransferRequest represents the request body for submitting a transfer.
type TransferRequest struct {
	Amount         decimal.Decimal `json:"amount" example:"100.50"`
	From           string          `json:"from" example:"USD"`
	To             string          `json:"to" example:"EUR"`
	SenderRef      string          `json:"sender_ref" example:"user-42"`
	RecipientName  string          `json:"recipient_name" example:"Jane Doe"`
	RecipientEmail string          `json:"recipient_email" example:"jane@example.com"`
	Purpose        string          `json:"purpose" example:"gift"`
}

// TransferResponse represents a finalized transfer record.
type TransferResponse struct {
	ID             string        `json:"id" example:"123e4567-e89b-12d3-a456-426614174000"`
	TrackingNumber string        `json:"tracking_number" example:"RM1A2B3C4D"`
	SenderRef      string        `json:"sender_ref" example:"user-42"`
	RecipientName  string        `json:"recipient_name" example:"Jane Doe"`
	RecipientEmail string        `json:"recipient_email" example:"jane@example.com"`
	Purpose        string        `json:"purpose" example:"gift"`
	Status         string        `json:"status" example:"completed"`
	CreatedAt      string        `json:"created_at" example:"2025-12-01T10:15:30Z"`
	Quote          QuoteResponse `json:"quote"`
}

// TransferListResponse represents the transfer history response.
type TransferListResponse struct {
	Transfers []TransferResponse `json:"transfers"`
	Count     int                `json:"count" example:"2"`
}

func quoteResponse(q *service.Quote) QuoteResponse {
	return QuoteResponse{
		Amount:           q.Amount,
		From:             q.FromCurrency,
		To:               q.ToCurrency,
		Rate:             q.Rate,
		ConvertedAmount:  q.ConvertedAmount,
		Fee:              q.Fee,
		TotalAmount:      q.TotalAmount,
		DeliveryEstimate: q.DeliveryEstimate,
		Source:           string(q.Source),
		QuotedAt:         q.QuotedAt.Format(time.RFC3339),
	}
}

func transferResponse(t *service.TransferRecord) TransferResponse {
	return TransferResponse{
		ID:             t.ID,
		TrackingNumber: t.TrackingNumber,
		SenderRef:      t.SenderRef,
		RecipientName:  t.RecipientName,
		RecipientEmail: t.RecipientEmail,
		Purpose:        t.Purpose,
		Status:         string(t.Status),
		CreatedAt:      t.CreatedAt.Format(time.RFC3339),
		Quote:          quoteResponse(&t.Quote),
	}
}

// writeServiceError maps service errors onto HTTP status codes.
func writeServiceError(w http.ResponseWriter, err error) {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: vErr.Error(), Field: vErr.Field})
	case errors.Is(err, service.ErrInvalidCurrencyCode),
		errors.Is(err, service.ErrUnsupportedCurrency),
		errors.Is(err, service.ErrNegativeAmount),
		errors.Is(err, service.ErrInvalidTransferID):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "not found"})
	default:
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal error"})
	}
}

// HandleCreateQuote godoc
// @Summary Compose a quote for a currency pair and amount
// @Description Resolves a rate (live source with static fallback), computes the fee, delivery estimate, converted amount, and total cost. The source field reports rate confidence: live or fallback.
// @Tags quotes
// @Accept json
// @Produce json
// @Param request body QuoteRequest true "Amount and currency pair"
// @Success 200 {object} QuoteResponse "Composed quote"
// @Failure 400 {object} ErrorResponse "Invalid amount or currency code"
// @Failure 500 {object} ErrorResponse "Internal error"
// @Router /quotes [post]
func HandleCreateQuote(svc service.QuoteServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req QuoteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid JSON"})
			return
		}
		if req.From == "" || req.To == "" {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "from and to are required"})
			return
		}

		q, err := svc.Quote(r.Context(), req.Amount, req.From, req.To)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, quoteResponse(q))
	}
}

// HandleCreateTransfer godoc
// @Summary Submit a transfer
// @Description Recomputes the quote server-side, validates recipient details, and records an immutable completed transfer. No real money moves.
// @Tags transfers
// @Accept json
// @Produce json
// @Param request body TransferRequest true "Transfer details"
// @Success 201 {object} TransferResponse "Transfer recorded"
// @Failure 400 {object} ErrorResponse "Validation failure, names the first offending field"
// @Failure 500 {object} ErrorResponse "Internal error"
// @Router /transfers [post]
func HandleCreateTransfer(quoteSvc service.QuoteServiceInterface, transferSvc service.TransferServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TransferRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid JSON"})
			return
		}
		if req.From == "" || req.To == "" {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "from and to are required"})
			return
		}

		q, err := quoteSvc.Quote(r.Context(), req.Amount, req.From, req.To)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		rec, err := transferSvc.Record(r.Context(), q, req.SenderRef, req.RecipientName, req.RecipientEmail, req.Purpose)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, transferResponse(rec))
	}
}

// HandleGetTransfer godoc
// @Summary Get a transfer record by ID
// @Tags transfers
// @Produce json
// @Param transfer_id path string true "Transfer ID (UUID)" format(uuid)
// @Success 200 {object} TransferResponse "Transfer found"
// @Failure 400 {object} ErrorResponse "Invalid transfer_id format"
// @Failure 404 {object} ErrorResponse "Unknown transfer_id"
// @Failure 500 {object} ErrorResponse "Internal error"
// @Router /transfers/{transfer_id} [get]
func HandleGetTransfer(svc service.TransferServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		transferID := chi.URLParam(r, "transfer_id")
		if transferID == "" {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "transfer_id is required"})
			return
		}

		rec, err := svc.GetTransfer(r.Context(), transferID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, transferResponse(rec))
	}
}

// HandleListTransfers godoc
// @Summary List recent transfers
// @Description Returns the transfer history, newest first. The limit query parameter is clamped to 100 with a default of 50.
// @Tags transfers
// @Produce json
// @Param limit query int false "Maximum number of records" default(50)
// @Success 200 {object} TransferListResponse "Transfer history"
// @Failure 500 {object} ErrorResponse "Internal error"
// @Router /transfers [get]
func HandleListTransfers(svc service.TransferServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if v := r.URL.Query().Get("limit"); v != "" {
			limit, _ = strconv.Atoi(v)
		}

		records, err := svc.ListTransfers(r.Context(), limit)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		out := make([]TransferResponse, 0, len(records))
		for i := range records {
			out = append(out, transferResponse(&records[i]))
		}
		writeJSON(w, http.StatusOK, TransferListResponse{Transfers: out, Count: len(out)})
	}
}

// HandleListCurrencies godoc
// @Summary List supported currencies
// @Tags rates
// @Produce json
// @Success 200 {array} rates.Currency "Supported currencies"
// @Router /currencies [get]
func HandleListCurrencies(svc service.QuoteServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.Currencies())
	}
}

// HandleReferenceRates godoc
// @Summary List static reference rates
// @Description Returns the hand-authored reference rate table used when the live source is unavailable.
// @Tags rates
// @Produce json
// @Success 200 {array} rates.PairRate "Reference rates"
// @Router /rates/reference [get]
func HandleReferenceRates(svc service.QuoteServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.ReferenceRates())
	}
}
