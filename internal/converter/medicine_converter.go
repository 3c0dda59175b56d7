package converter

import (
	"go-hospital-admin/internal/delivery/dto"
	"go-hospital-admin/internal/domain/entity"
)

// MedicineToResponse converts a Medicine entity to MedicineResponse DTO
func MedicineToResponse(medicine *entity.Medicine) *dto.MedicineResponse {
	if medicine == nil {
		return nil
	}

	return &dto.MedicineResponse{
		ID:           medicine.ID,
		Name:         medicine.Name,
		Quantity:     medicine.Quantity,
		Price:        medicine.Price,
		ExpiryDate:   medicine.ExpiryDate,
		Manufacturer: medicine.Manufacturer,
		Category:     medicine.Category,
		CreatedDate:  medicine.CreatedAt,
	}
}

func MedicinesToResponses(medicines []entity.Medicine) []dto.MedicineResponse {
	responses := make([]dto.MedicineResponse, len(medicines))
	for i := range medicines {
		responses[i] = *MedicineToResponse(&medicines[i])
	}
	return responses
}

func ApplyMedicineRequest(medicine *entity.Medicine, req *dto.MedicineRequest) {
	medicine.Name = req.Name
	medicine.Quantity = req.Quantity
	medicine.Price = req.Price
	medicine.ExpiryDate = req.ExpiryDate
	medicine.Manufacturer = req.Manufacturer
	medicine.Category = req.Category
}
