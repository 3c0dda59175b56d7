package converter

import (
	"go-hospital-admin/internal/delivery/dto"
	"go-hospital-admin/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:             doctor.ID,
		Name:           doctor.Name,
		Specialization: doctor.Specialization,
		Contact:        doctor.Contact,
		Email:          doctor.Email,
		Department:     doctor.Department,
		Availability:   doctor.Availability,
		CreatedDate:    doctor.CreatedAt,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to slice of DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}

func ApplyDoctorRequest(doctor *entity.Doctor, req *dto.DoctorRequest) {
	doctor.Name = req.Name
	doctor.Specialization = req.Specialization
	doctor.Contact = req.Contact
	doctor.Email = req.Email
	doctor.Department = req.Department
	doctor.Availability = req.Availability
}
