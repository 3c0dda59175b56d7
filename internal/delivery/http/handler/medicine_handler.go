package handler

import (
	"net/http"

	"go-hospital-admin/internal/delivery/dto"
	"go-hospital-admin/internal/usecase"
	"go-hospital-admin/pkg/response"
	"go-hospital-admin/pkg/validator"
)

type MedicineHandler struct {
	medicineUsecase usecase.MedicineUsecase
	validator       *validator.CustomValidator
}

func NewMedicineHandler(medicineUsecase usecase.MedicineUsecase, validator *validator.CustomValidator) *MedicineHandler {
	return &MedicineHandler{
		medicineUsecase: medicineUsecase,
		validator:       validator,
	}
}

func (h *MedicineHandler) CreateMedicine(w http.ResponseWriter, r *http.Request) {
	var req dto.MedicineRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	medicine, err := h.medicineUsecase.Create(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create medicine")
		return
	}

	response.Success(w, http.StatusOK, medicine)
}

func (h *MedicineHandler) GetAllMedicines(w http.ResponseWriter, r *http.Request) {
	medicines, err := h.medicineUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get medicines")
		return
	}

	response.Success(w, http.StatusOK, medicines)
}

func (h *MedicineHandler) UpdateMedicine(w http.ResponseWriter, r *http.Request) {
	medicineID, ok := pathID(w, r, "medicine")
	if !ok {
		return
	}

	var req dto.MedicineRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	medicine, err := h.medicineUsecase.Update(r.Context(), medicineID, &req)
	if err != nil {
		if err == usecase.ErrMedicineNotFound {
			response.NotFound(w, "Medicine not found")
			return
		}
		response.InternalServerError(w, "Failed to update medicine")
		return
	}

	response.Success(w, http.StatusOK, medicine)
}

func (h *MedicineHandler) DeleteMedicine(w http.ResponseWriter, r *http.Request) {
	medicineID, ok := pathID(w, r, "medicine")
	if !ok {
		return
	}

	if err := h.medicineUsecase.Delete(r.Context(), medicineID); err != nil {
		if err == usecase.ErrMedicineNotFound {
			response.NotFound(w, "Medicine not found")
			return
		}
		response.InternalServerError(w, "Failed to delete medicine")
		return
	}

	response.Message(w, http.StatusOK, "Medicine deleted successfully")
}
