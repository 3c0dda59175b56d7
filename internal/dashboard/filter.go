package dashboard

import (
	"strings"

	"go-hospital-admin/internal/delivery/dto"
)

// Fields returns the searchable values of one record.
type Fields[T any] func(item T) []string

// Filter keeps the items where any field contains query, ignoring case.
// The result preserves the input order; an empty query returns every item.
func Filter[T any](items []T, query string, fields Fields[T]) []T {
	out := make([]T, 0, len(items))
	if query == "" {
		return append(out, items...)
	}

	needle := strings.ToLower(query)
	for _, item := range items {
		for _, field := range fields(item) {
			if strings.Contains(strings.ToLower(field), needle) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

func PatientFields(p dto.PatientResponse) []string {
	return []string{p.Name}
}

func DoctorFields(d dto.DoctorResponse) []string {
	return []string{d.Name, d.Specialization}
}

func StaffFields(s dto.StaffResponse) []string {
	return []string{s.Name, s.Role}
}

func AppointmentFields(a dto.AppointmentResponse) []string {
	return []string{a.PatientName, a.DoctorName}
}

func MedicalRecordFields(r dto.MedicalRecordResponse) []string {
	return []string{r.PatientName, r.Diagnosis}
}

func BillFields(b dto.BillResponse) []string {
	return []string{b.PatientName}
}

func MedicineFields(m dto.MedicineResponse) []string {
	return []string{m.Name, m.Category}
}
