package handler

import (
	"net/http"

	"go-hospital-admin/internal/delivery/dto"
	"go-hospital-admin/internal/usecase"
	"go-hospital-admin/pkg/response"
	"go-hospital-admin/pkg/validator"

	"github.com/gorilla/mux"
)

type MedicalRecordHandler struct {
	recordUsecase usecase.MedicalRecordUsecase
	validator     *validator.CustomValidator
}

func NewMedicalRecordHandler(recordUsecase usecase.MedicalRecordUsecase, validator *validator.CustomValidator) *MedicalRecordHandler {
	return &MedicalRecordHandler{
		recordUsecase: recordUsecase,
		validator:     validator,
	}
}

func (h *MedicalRecordHandler) CreateMedicalRecord(w http.ResponseWriter, r *http.Request) {
	var req dto.MedicalRecordRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	record, err := h.recordUsecase.Create(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create medical record")
		return
	}

	response.Success(w, http.StatusOK, record)
}

func (h *MedicalRecordHandler) GetAllMedicalRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.recordUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get medical records")
		return
	}

	response.Success(w, http.StatusOK, records)
}

func (h *MedicalRecordHandler) GetPatientMedicalRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.recordUsecase.GetByPatient(r.Context(), mux.Vars(r)["patientId"])
	if err != nil {
		response.InternalServerError(w, "Failed to get medical records")
		return
	}

	response.Success(w, http.StatusOK, records)
}
