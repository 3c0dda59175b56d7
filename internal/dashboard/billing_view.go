package dashboard

import (
	"context"

	"go-hospital-admin/internal/delivery/dto"

	"github.com/sourcegraph/conc/pool"
)

// BillingView lists bills. New drafts start with payment_status pending.
type BillingView struct {
	*listState[dto.BillResponse]

	api      StatusAPI[dto.BillResponse, dto.BillRequest]
	patients *Cache[dto.PatientResponse]
	opts     Options
	form     *Form[dto.BillRequest]
}

func NewBillingView(api StatusAPI[dto.BillResponse, dto.BillRequest], patients Lister[dto.PatientResponse], opts Options) *BillingView {
	opts = opts.normalize()
	v := &BillingView{
		api:      api,
		patients: NewCache(FetchFunc[dto.PatientResponse](patients.List), logFetch(opts, "Failed to fetch patients")),
		opts:     opts,
	}
	v.listState = newListState(FetchFunc[dto.BillResponse](api.List), BillFields, notifyFetch(opts, "Failed to fetch bills"))
	v.form = newForm(blankBill, v.create, v.Refresh, opts.Notifier, formMessages{
		created: "Bill created successfully",
		failed:  "Failed to create bill",
	}, opts.Deduplicate)
	return v
}

func (v *BillingView) create(ctx context.Context, _ string, draft dto.BillRequest) error {
	_, err := v.api.Create(ctx, draft)
	return err
}

func (v *BillingView) Mount(ctx context.Context) error {
	p := pool.New().WithErrors()
	p.Go(func() error { return v.Refresh(ctx) })
	p.Go(func() error { return v.patients.Refresh(ctx) })
	return p.Wait()
}

func (v *BillingView) Form() *Form[dto.BillRequest] {
	return v.form
}

func (v *BillingView) Add() {
	v.form.Open()
}

func (v *BillingView) Patients() []dto.PatientResponse {
	return v.patients.Items()
}

func (v *BillingView) SelectPatient(id string) error {
	name := ResolveName(v.patients.Items(), id, PatientRef)
	return v.form.Edit(func(d *dto.BillRequest) {
		d.PatientID = id
		d.PatientName = name
	})
}

func (v *BillingView) SetStatus(ctx context.Context, id, status string) error {
	return changeStatus(ctx, v.opts, v.api, v.Refresh, id, status, statusMessages{
		updated: "Payment status updated",
		failed:  "Failed to update status",
	})
}
