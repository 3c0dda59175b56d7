package usecase

import (
	"context"
	"errors"
	"time"

	"go-hospital-admin/internal/converter"
	"go-hospital-admin/internal/delivery/dto"
	"go-hospital-admin/internal/domain/entity"
	"go-hospital-admin/internal/domain/repository"
	"go-hospital-admin/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrBillNotFound = errors.New("bill not found")
)

type BillUsecase interface {
	Create(ctx context.Context, req *dto.BillRequest) (*dto.BillResponse, error)
	GetAll(ctx context.Context) ([]dto.BillResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
}

type billUsecase struct {
	log          *logrus.Logger
	billRepo     repository.BillRepository
	auditService service.AuditService
	now          func() time.Time
}

func NewBillUsecase(
	log *logrus.Logger,
	billRepo repository.BillRepository,
	auditService service.AuditService,
) BillUsecase {
	return &billUsecase{
		log:          log,
		billRepo:     billRepo,
		auditService: auditService,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Create issues a bill dated now. Bills without a payment status start pending.
func (u *billUsecase) Create(ctx context.Context, req *dto.BillRequest) (*dto.BillResponse, error) {
	bill := converter.BillFromRequest(req)
	if bill.PaymentStatus == "" {
		bill.PaymentStatus = entity.PaymentStatusPending
	}
	if !bill.PaymentStatus.Valid() {
		return nil, ErrInvalidStatus
	}
	bill.Date = u.now()

	if err := u.billRepo.Create(ctx, bill); err != nil {
		u.log.Warnf("Failed to create bill: %+v", err)
		return nil, err
	}

	resp := converter.BillToResponse(bill)
	u.auditService.LogCreate(ctx, entity.AuditActionBillCreate, "bill", bill.ID.String(), resp)

	return resp, nil
}

func (u *billUsecase) GetAll(ctx context.Context) ([]dto.BillResponse, error) {
	bills, err := u.billRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find all bills: %+v", err)
		return nil, err
	}

	return converter.BillsToResponses(bills), nil
}

func (u *billUsecase) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	next := entity.PaymentStatus(status)
	if !next.Valid() {
		return ErrInvalidStatus
	}

	bill, err := u.billRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find bill: %+v", err)
		return err
	}
	if bill == nil {
		return ErrBillNotFound
	}

	previous := bill.PaymentStatus
	bill.PaymentStatus = next

	if err := u.billRepo.Update(ctx, bill); err != nil {
		u.log.Warnf("Failed to update bill status: %+v", err)
		return err
	}

	u.auditService.LogUpdate(ctx, entity.AuditActionBillStatus, "bill", id.String(), previous, next)

	return nil
}
