package dashboard

import (
	"context"

	"go-hospital-admin/internal/delivery/dto"
)

// StaffView supports add and delete only.
type StaffView struct {
	*listState[dto.StaffResponse]

	api  RosterAPI[dto.StaffResponse, dto.StaffRequest]
	opts Options
	form *Form[dto.StaffRequest]
}

func NewStaffView(api RosterAPI[dto.StaffResponse, dto.StaffRequest], opts Options) *StaffView {
	opts = opts.normalize()
	v := &StaffView{api: api, opts: opts}
	v.listState = newListState(FetchFunc[dto.StaffResponse](api.List), StaffFields, notifyFetch(opts, "Failed to fetch staff"))
	v.form = newForm(blankStaff, v.create, v.Refresh, opts.Notifier, formMessages{
		created: "Staff member added successfully",
		failed:  "Failed to add staff member",
	}, opts.Deduplicate)
	return v
}

func (v *StaffView) create(ctx context.Context, _ string, draft dto.StaffRequest) error {
	_, err := v.api.Create(ctx, draft)
	return err
}

func (v *StaffView) Mount(ctx context.Context) error {
	return v.Refresh(ctx)
}

func (v *StaffView) Form() *Form[dto.StaffRequest] {
	return v.form
}

func (v *StaffView) Add() {
	v.form.Open()
}

func (v *StaffView) Delete(ctx context.Context, id string) (bool, error) {
	return deleteConfirmed(ctx, v.opts, v.api, v.Refresh, id, deleteMessages{
		prompt:  "Are you sure you want to delete this staff member?",
		deleted: "Staff member deleted successfully",
		failed:  "Failed to delete staff member",
	})
}
