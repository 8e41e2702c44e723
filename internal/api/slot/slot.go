package slot

import (
	"errors"
	"log"
	"net/http"
	dto "slots_backend/internal/api/dto/slot"
	"slots_backend/internal/converter"
	"slots_backend/internal/model"
	"slots_backend/internal/service"
	"slots_backend/pkg/req"
	"slots_backend/pkg/resp"
	"strconv"
)

type HandlerDeps struct {
	Serv service.SlotService
}

type Handler struct {
	serv service.SlotService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.SpinRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.serv.Play(r.Context(), converter.ToSpinRequest(payload))
	if err != nil {
		if errors.Is(err, model.ErrInvalidBet) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Println("Spin error:", err)
		http.Error(w, "spin failed", http.StatusInternalServerError)
		return
	}

	response := converter.ToSpinResponse(*result)

	// Отклоненный спин (нехватка баланса) - ожидаемый ответ, но не 200
	if !result.Success {
		resp.WriteJSONResponse(w, http.StatusBadRequest, response)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, response)
}

func (h *Handler) Deposit(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.DepositRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	balance, err := h.serv.Deposit(r.Context(), payload.Amount)
	if err != nil {
		log.Println("Deposit error:", err)
		http.Error(w, "deposit failed", http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.DepositResponse{Balance: balance})
}

func (h *Handler) CheckData(w http.ResponseWriter, r *http.Request) {
	funds, err := h.serv.CheckData(r.Context())
	if err != nil {
		log.Println("CheckData error:", err)
		http.Error(w, "failed to get player data", http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToDataResponse(*funds))
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	var limit uint64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, _ = strconv.ParseUint(raw, 10, 64)
	}

	spins, err := h.serv.History(r.Context(), limit)
	if err != nil {
		log.Println("History error:", err)
		http.Error(w, "failed to get spin history", http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToHistoryResponse(spins))
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(h.serv.Stats()))
}
