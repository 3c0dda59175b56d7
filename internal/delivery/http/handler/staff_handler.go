package handler

import (
	"net/http"

	"go-hospital-admin/internal/delivery/dto"
	"go-hospital-admin/internal/usecase"
	"go-hospital-admin/pkg/response"
	"go-hospital-admin/pkg/validator"
)

type StaffHandler struct {
	staffUsecase usecase.StaffUsecase
	validator    *validator.CustomValidator
}

func NewStaffHandler(staffUsecase usecase.StaffUsecase, validator *validator.CustomValidator) *StaffHandler {
	return &StaffHandler{
		staffUsecase: staffUsecase,
		validator:    validator,
	}
}

func (h *StaffHandler) CreateStaff(w http.ResponseWriter, r *http.Request) {
	var req dto.StaffRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	staff, err := h.staffUsecase.Create(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create staff")
		return
	}

	response.Success(w, http.StatusOK, staff)
}

func (h *StaffHandler) GetAllStaff(w http.ResponseWriter, r *http.Request) {
	members, err := h.staffUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get staff")
		return
	}

	response.Success(w, http.StatusOK, members)
}

func (h *StaffHandler) DeleteStaff(w http.ResponseWriter, r *http.Request) {
	staffID, ok := pathID(w, r, "staff")
	if !ok {
		return
	}

	if err := h.staffUsecase.Delete(r.Context(), staffID); err != nil {
		if err == usecase.ErrStaffNotFound {
			response.NotFound(w, "Staff not found")
			return
		}
		response.InternalServerError(w, "Failed to delete staff")
		return
	}

	response.Message(w, http.StatusOK, "Staff deleted successfully")
}
