package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"rental/internal/dataset"
	"rental/internal/domain"
	"rental/internal/service"
)

// SettlementHandler handles HTTP requests for pricing and settlement
// computations. Every endpoint is stateless: the request body carries
// the full dataset and the response carries the computed record.
type SettlementHandler struct {
	settlementService *service.SettlementService
}

// NewSettlementHandler creates a new SettlementHandler.
func NewSettlementHandler(settlementService *service.SettlementService) *SettlementHandler {
	return &SettlementHandler{settlementService: settlementService}
}

// ActionInfo is one settlement action in a response.
type ActionInfo struct {
	Who    string `json:"who"`
	Type   string `json:"type"`
	Amount int    `json:"amount"`
}

// CommissionInfo is the fee split in a quote response.
type CommissionInfo struct {
	InsuranceFee  int `json:"insurance_fee"`
	AssistanceFee int `json:"assistance_fee"`
	DrivyFee      int `json:"drivy_fee"`
}

// OptionsInfo lists option prices in a quote response.
type OptionsInfo struct {
	DeductibleReduction int `json:"deductible_reduction"`
}

// QuoteResponse is the HTTP response for POST /v1/quotes.
type QuoteResponse struct {
	Rentals []RentalQuoteInfo `json:"rentals"`
}

// RentalQuoteInfo is one priced rental in a quote response.
type RentalQuoteInfo struct {
	ID         int            `json:"id"`
	Price      int            `json:"price"`
	Options    OptionsInfo    `json:"options"`
	Commission CommissionInfo `json:"commission"`
}

// ActionsResponse is the HTTP response for POST /v1/actions.
type ActionsResponse struct {
	Rentals []RentalActionsInfo `json:"rentals"`
}

// RentalActionsInfo is one rental's settlement in an actions response.
type RentalActionsInfo struct {
	ID      int          `json:"id"`
	Actions []ActionInfo `json:"actions"`
}

// SettlementResponse is the HTTP response for POST /v1/settlements.
type SettlementResponse struct {
	RentalModifications []ModificationInfo `json:"rental_modifications"`
}

// ModificationInfo is one modification's delta settlement.
type ModificationInfo struct {
	ID       int          `json:"id"`
	RentalID int          `json:"rental_id"`
	Actions  []ActionInfo `json:"actions"`
}

// Quotes handles POST /v1/quotes.
func (h *SettlementHandler) Quotes(c *gin.Context) {
	ds, ok := h.bindDataset(c)
	if !ok {
		return
	}

	quotes, err := h.settlementService.QuoteRentals(c.Request.Context(), ds)
	if err != nil {
		respondError(c, err)
		return
	}

	response := QuoteResponse{Rentals: make([]RentalQuoteInfo, 0, len(quotes))}
	for _, q := range quotes {
		response.Rentals = append(response.Rentals, RentalQuoteInfo{
			ID:      q.RentalID,
			Price:   q.Price,
			Options: OptionsInfo{DeductibleReduction: q.Option},
			Commission: CommissionInfo{
				InsuranceFee:  q.Fees.InsuranceFee,
				AssistanceFee: q.Fees.AssistanceFee,
				DrivyFee:      q.Fees.DrivyFee,
			},
		})
	}
	respondJSON(c, http.StatusOK, response)
}

// Actions handles POST /v1/actions.
func (h *SettlementHandler) Actions(c *gin.Context) {
	ds, ok := h.bindDataset(c)
	if !ok {
		return
	}

	results, err := h.settlementService.ActionsForRentals(c.Request.Context(), ds)
	if err != nil {
		respondError(c, err)
		return
	}

	response := ActionsResponse{Rentals: make([]RentalActionsInfo, 0, len(results))}
	for _, r := range results {
		response.Rentals = append(response.Rentals, RentalActionsInfo{
			ID:      r.RentalID,
			Actions: toActionInfos(r.Actions),
		})
	}
	respondJSON(c, http.StatusOK, response)
}

// Settlements handles POST /v1/settlements.
func (h *SettlementHandler) Settlements(c *gin.Context) {
	ds, ok := h.bindDataset(c)
	if !ok {
		return
	}

	results, err := h.settlementService.SettleModifications(c.Request.Context(), ds)
	if err != nil {
		respondError(c, err)
		return
	}

	response := SettlementResponse{RentalModifications: make([]ModificationInfo, 0, len(results))}
	for _, r := range results {
		response.RentalModifications = append(response.RentalModifications, ModificationInfo{
			ID:       r.ModificationID,
			RentalID: r.RentalID,
			Actions:  toActionInfos(r.Actions),
		})
	}
	respondJSON(c, http.StatusOK, response)
}

// bindDataset decodes and validates the dataset document in the request
// body. On failure it writes the error response and returns ok=false.
func (h *SettlementHandler) bindDataset(c *gin.Context) (*dataset.Dataset, bool) {
	var input dataset.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, fmt.Errorf("%w: %v", dataset.ErrInvalidInput, err))
		return nil, false
	}

	ds, err := dataset.Load(input)
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	return ds, true
}

// toActionInfos converts domain actions to their wire form: absolute
// amount, sign carried by the type field.
func toActionInfos(actions []domain.Action) []ActionInfo {
	infos := make([]ActionInfo, 0, len(actions))
	for _, a := range actions {
		infos = append(infos, ActionInfo{
			Who:    string(a.Who),
			Type:   string(a.Type()),
			Amount: a.AbsAmount(),
		})
	}
	return infos
}
