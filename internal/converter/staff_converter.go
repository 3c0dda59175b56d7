package converter

import (
	"go-hospital-admin/internal/delivery/dto"
	"go-hospital-admin/internal/domain/entity"
)

func StaffToResponse(staff *entity.Staff) *dto.StaffResponse {
	if staff == nil {
		return nil
	}

	return &dto.StaffResponse{
		ID:          staff.ID,
		Name:        staff.Name,
		Role:        staff.Role,
		Contact:     staff.Contact,
		Email:       staff.Email,
		Department:  staff.Department,
		CreatedDate: staff.CreatedAt,
	}
}

func StaffToResponses(members []entity.Staff) []dto.StaffResponse {
	responses := make([]dto.StaffResponse, len(members))
	for i := range members {
		responses[i] = *StaffToResponse(&members[i])
	}
	return responses
}

func StaffFromRequest(req *dto.StaffRequest) *entity.Staff {
	return &entity.Staff{
		Name:       req.Name,
		Role:       req.Role,
		Contact:    req.Contact,
		Email:      req.Email,
		Department: req.Department,
	}
}
