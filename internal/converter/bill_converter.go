package converter

import (
	"go-hospital-admin/internal/delivery/dto"
	"go-hospital-admin/internal/domain/entity"
)

// BillToResponse converts a Bill entity to BillResponse DTO
func BillToResponse(bill *entity.Bill) *dto.BillResponse {
	if bill == nil {
		return nil
	}

	return &dto.BillResponse{
		ID:            bill.ID,
		PatientID:     bill.PatientID,
		PatientName:   bill.PatientName,
		AppointmentID: bill.AppointmentID,
		Items:         bill.Items,
		TotalAmount:   bill.TotalAmount,
		PaymentStatus: string(bill.PaymentStatus),
		Date:          bill.Date,
		CreatedDate:   bill.CreatedAt,
	}
}

func BillsToResponses(bills []entity.Bill) []dto.BillResponse {
	responses := make([]dto.BillResponse, len(bills))
	for i := range bills {
		responses[i] = *BillToResponse(&bills[i])
	}
	return responses
}

// BillFromRequest builds a bill from the request. Date and a missing payment
// status are filled in by the usecase.
func BillFromRequest(req *dto.BillRequest) *entity.Bill {
	return &entity.Bill{
		PatientID:     req.PatientID,
		PatientName:   req.PatientName,
		AppointmentID: req.AppointmentID,
		Items:         req.Items,
		TotalAmount:   req.TotalAmount,
		PaymentStatus: entity.PaymentStatus(req.PaymentStatus),
	}
}
