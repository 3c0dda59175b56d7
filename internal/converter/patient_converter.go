package converter

import (
	"go-hospital-admin/internal/delivery/dto"
	"go-hospital-admin/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:             patient.ID,
		Name:           patient.Name,
		Age:            patient.Age,
		Gender:         patient.Gender,
		Contact:        patient.Contact,
		Address:        patient.Address,
		BloodGroup:     patient.BloodGroup,
		MedicalHistory: patient.MedicalHistory,
		CreatedDate:    patient.CreatedAt,
	}
}

// PatientsToResponses converts a slice of Patient entities to slice of PatientResponse DTOs
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return responses
}

// ApplyPatientRequest copies every editable field from req onto patient
func ApplyPatientRequest(patient *entity.Patient, req *dto.PatientRequest) {
	patient.Name = req.Name
	patient.Age = req.Age
	patient.Gender = req.Gender
	patient.Contact = req.Contact
	patient.Address = req.Address
	patient.BloodGroup = req.BloodGroup
	patient.MedicalHistory = req.MedicalHistory
}
