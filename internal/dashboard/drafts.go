package dashboard

import "go-hospital-admin/internal/delivery/dto"

// Update drafts are seeded from the whole stored record because the
// server overwrites every field.

func PatientDraft(p dto.PatientResponse) dto.PatientRequest {
	return dto.PatientRequest{
		Name:           p.Name,
		Age:            p.Age,
		Gender:         p.Gender,
		Contact:        p.Contact,
		Address:        p.Address,
		BloodGroup:     p.BloodGroup,
		MedicalHistory: p.MedicalHistory,
	}
}

func DoctorDraft(d dto.DoctorResponse) dto.DoctorRequest {
	return dto.DoctorRequest{
		Name:           d.Name,
		Specialization: d.Specialization,
		Contact:        d.Contact,
		Email:          d.Email,
		Department:     d.Department,
		Availability:   d.Availability,
	}
}

func MedicineDraft(m dto.MedicineResponse) dto.MedicineRequest {
	return dto.MedicineRequest{
		Name:         m.Name,
		Quantity:     m.Quantity,
		Price:        m.Price,
		ExpiryDate:   m.ExpiryDate,
		Manufacturer: m.Manufacturer,
		Category:     m.Category,
	}
}

func blankPatient() dto.PatientRequest {
	return dto.PatientRequest{}
}

func blankDoctor() dto.DoctorRequest {
	return dto.DoctorRequest{}
}

func blankStaff() dto.StaffRequest {
	return dto.StaffRequest{}
}

func blankAppointment() dto.AppointmentRequest {
	return dto.AppointmentRequest{}
}

func blankMedicalRecord() dto.MedicalRecordRequest {
	return dto.MedicalRecordRequest{}
}

func blankBill() dto.BillRequest {
	return dto.BillRequest{PaymentStatus: "pending"}
}

func blankMedicine() dto.MedicineRequest {
	return dto.MedicineRequest{}
}
