package handler

import (
	"net/http"

	"go-hospital-admin/internal/delivery/dto"
	"go-hospital-admin/internal/usecase"
	"go-hospital-admin/pkg/response"
	"go-hospital-admin/pkg/validator"
)

type BillHandler struct {
	billUsecase usecase.BillUsecase
	validator   *validator.CustomValidator
}

func NewBillHandler(billUsecase usecase.BillUsecase, validator *validator.CustomValidator) *BillHandler {
	return &BillHandler{
		billUsecase: billUsecase,
		validator:   validator,
	}
}

func (h *BillHandler) CreateBill(w http.ResponseWriter, r *http.Request) {
	var req dto.BillRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	bill, err := h.billUsecase.Create(r.Context(), &req)
	if err != nil {
		if err == usecase.ErrInvalidStatus {
			response.Error(w, http.StatusBadRequest, "Invalid payment status", nil)
			return
		}
		response.InternalServerError(w, "Failed to create bill")
		return
	}

	response.Success(w, http.StatusOK, bill)
}

func (h *BillHandler) GetAllBills(w http.ResponseWriter, r *http.Request) {
	bills, err := h.billUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get bills")
		return
	}

	response.Success(w, http.StatusOK, bills)
}

// UpdateBillStatus reads the new status from the payment_status query parameter.
func (h *BillHandler) UpdateBillStatus(w http.ResponseWriter, r *http.Request) {
	billID, ok := pathID(w, r, "bill")
	if !ok {
		return
	}

	err := h.billUsecase.UpdateStatus(r.Context(), billID, r.URL.Query().Get("payment_status"))
	if err != nil {
		switch err {
		case usecase.ErrInvalidStatus:
			response.Error(w, http.StatusBadRequest, "Invalid payment status", nil)
		case usecase.ErrBillNotFound:
			response.NotFound(w, "Bill not found")
		default:
			response.InternalServerError(w, "Failed to update payment status")
		}
		return
	}

	response.Message(w, http.StatusOK, "Payment status updated successfully")
}
