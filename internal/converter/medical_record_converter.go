package converter

import (
	"go-hospital-admin/internal/delivery/dto"
	"go-hospital-admin/internal/domain/entity"
)

func MedicalRecordToResponse(record *entity.MedicalRecord) *dto.MedicalRecordResponse {
	if record == nil {
		return nil
	}

	return &dto.MedicalRecordResponse{
		ID:            record.ID,
		PatientID:     record.PatientID,
		PatientName:   record.PatientName,
		DoctorID:      record.DoctorID,
		DoctorName:    record.DoctorName,
		Date:          record.Date,
		Diagnosis:     record.Diagnosis,
		Prescriptions: record.Prescriptions,
		Tests:         record.Tests,
		Notes:         record.Notes,
		CreatedDate:   record.CreatedAt,
	}
}

func MedicalRecordsToResponses(records []entity.MedicalRecord) []dto.MedicalRecordResponse {
	responses := make([]dto.MedicalRecordResponse, len(records))
	for i := range records {
		responses[i] = *MedicalRecordToResponse(&records[i])
	}
	return responses
}

func MedicalRecordFromRequest(req *dto.MedicalRecordRequest) *entity.MedicalRecord {
	return &entity.MedicalRecord{
		PatientID:     req.PatientID,
		PatientName:   req.PatientName,
		DoctorID:      req.DoctorID,
		DoctorName:    req.DoctorName,
		Date:          req.Date,
		Diagnosis:     req.Diagnosis,
		Prescriptions: req.Prescriptions,
		Tests:         req.Tests,
		Notes:         req.Notes,
	}
}
