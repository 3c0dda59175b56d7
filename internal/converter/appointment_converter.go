package converter

import (
	"go-hospital-admin/internal/delivery/dto"
	"go-hospital-admin/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:          appointment.ID,
		PatientID:   appointment.PatientID,
		PatientName: appointment.PatientName,
		DoctorID:    appointment.DoctorID,
		DoctorName:  appointment.DoctorName,
		Date:        appointment.Date,
		Time:        appointment.Time,
		Reason:      appointment.Reason,
		Notes:       appointment.Notes,
		Status:      string(appointment.Status),
		CreatedDate: appointment.CreatedAt,
	}
}

func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}

// ApplyAppointmentRequest copies the booking fields. Status is left untouched.
func ApplyAppointmentRequest(appointment *entity.Appointment, req *dto.AppointmentRequest) {
	appointment.PatientID = req.PatientID
	appointment.PatientName = req.PatientName
	appointment.DoctorID = req.DoctorID
	appointment.DoctorName = req.DoctorName
	appointment.Date = req.Date
	appointment.Time = req.Time
	appointment.Reason = req.Reason
	appointment.Notes = req.Notes
}
