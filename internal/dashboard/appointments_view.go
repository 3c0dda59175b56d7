package dashboard

import (
	"context"

	"go-hospital-admin/internal/delivery/dto"

	"github.com/sourcegraph/conc/pool"
)

// AppointmentsView lists appointments and resolves patient and doctor
// names from its own reference lists when a draft selects them.
type AppointmentsView struct {
	*listState[dto.AppointmentResponse]

	api      StatusAPI[dto.AppointmentResponse, dto.AppointmentRequest]
	patients *Cache[dto.PatientResponse]
	doctors  *Cache[dto.DoctorResponse]
	opts     Options
	form     *Form[dto.AppointmentRequest]
}

func NewAppointmentsView(api StatusAPI[dto.AppointmentResponse, dto.AppointmentRequest], patients Lister[dto.PatientResponse], doctors Lister[dto.DoctorResponse], opts Options) *AppointmentsView {
	opts = opts.normalize()
	v := &AppointmentsView{
		api:      api,
		patients: NewCache(FetchFunc[dto.PatientResponse](patients.List), logFetch(opts, "Failed to fetch patients")),
		doctors:  NewCache(FetchFunc[dto.DoctorResponse](doctors.List), logFetch(opts, "Failed to fetch doctors")),
		opts:     opts,
	}
	v.listState = newListState(FetchFunc[dto.AppointmentResponse](api.List), AppointmentFields, notifyFetch(opts, "Failed to fetch appointments"))
	v.form = newForm(blankAppointment, v.create, v.Refresh, opts.Notifier, formMessages{
		created: "Appointment scheduled successfully",
		failed:  "Failed to schedule appointment",
	}, opts.Deduplicate)
	return v
}

func (v *AppointmentsView) create(ctx context.Context, _ string, draft dto.AppointmentRequest) error {
	_, err := v.api.Create(ctx, draft)
	return err
}

// Mount fetches appointments, patients and doctors concurrently. Each
// failure is reported on its own and the joined error is returned.
func (v *AppointmentsView) Mount(ctx context.Context) error {
	p := pool.New().WithErrors()
	p.Go(func() error { return v.Refresh(ctx) })
	p.Go(func() error { return v.patients.Refresh(ctx) })
	p.Go(func() error { return v.doctors.Refresh(ctx) })
	return p.Wait()
}

func (v *AppointmentsView) Form() *Form[dto.AppointmentRequest] {
	return v.form
}

func (v *AppointmentsView) Add() {
	v.form.Open()
}

func (v *AppointmentsView) Patients() []dto.PatientResponse {
	return v.patients.Items()
}

func (v *AppointmentsView) Doctors() []dto.DoctorResponse {
	return v.doctors.Items()
}

// SelectPatient sets patient_id and copies the name from the loaded patients.
func (v *AppointmentsView) SelectPatient(id string) error {
	name := ResolveName(v.patients.Items(), id, PatientRef)
	return v.form.Edit(func(d *dto.AppointmentRequest) {
		d.PatientID = id
		d.PatientName = name
	})
}

func (v *AppointmentsView) SelectDoctor(id string) error {
	name := ResolveName(v.doctors.Items(), id, DoctorRef)
	return v.form.Edit(func(d *dto.AppointmentRequest) {
		d.DoctorID = id
		d.DoctorName = name
	})
}

// SetStatus is sent immediately. Any status may follow any other.
func (v *AppointmentsView) SetStatus(ctx context.Context, id, status string) error {
	return changeStatus(ctx, v.opts, v.api, v.Refresh, id, status, statusMessages{
		updated: "Status updated successfully",
		failed:  "Failed to update status",
	})
}
