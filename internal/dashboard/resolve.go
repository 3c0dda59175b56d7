package dashboard

import "go-hospital-admin/internal/delivery/dto"

// Ref extracts the id and display name of a referenced record.
type Ref[T any] func(item T) (id, name string)

// ResolveName scans list for id and returns its display name, or "" when
// the id is not in the list.
func ResolveName[T any](list []T, id string, ref Ref[T]) string {
	for _, item := range list {
		if itemID, name := ref(item); itemID == id {
			return name
		}
	}
	return ""
}

func PatientRef(p dto.PatientResponse) (string, string) {
	return p.ID.String(), p.Name
}

func DoctorRef(d dto.DoctorResponse) (string, string) {
	return d.ID.String(), d.Name
}
