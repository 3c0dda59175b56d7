package dashboard

import (
	"context"

	"go-hospital-admin/internal/delivery/dto"

	"github.com/sourcegraph/conc/pool"
)

// MedicalRecordsView is create and read only.
type MedicalRecordsView struct {
	*listState[dto.MedicalRecordResponse]

	api      MedicalRecordAPI
	patients *Cache[dto.PatientResponse]
	doctors  *Cache[dto.DoctorResponse]
	opts     Options
	form     *Form[dto.MedicalRecordRequest]
}

func NewMedicalRecordsView(api MedicalRecordAPI, patients Lister[dto.PatientResponse], doctors Lister[dto.DoctorResponse], opts Options) *MedicalRecordsView {
	opts = opts.normalize()
	v := &MedicalRecordsView{
		api:      api,
		patients: NewCache(FetchFunc[dto.PatientResponse](patients.List), logFetch(opts, "Failed to fetch patients")),
		doctors:  NewCache(FetchFunc[dto.DoctorResponse](doctors.List), logFetch(opts, "Failed to fetch doctors")),
		opts:     opts,
	}
	v.listState = newListState(FetchFunc[dto.MedicalRecordResponse](api.List), MedicalRecordFields, notifyFetch(opts, "Failed to fetch medical records"))
	v.form = newForm(blankMedicalRecord, v.create, v.Refresh, opts.Notifier, formMessages{
		created: "Medical record added successfully",
		failed:  "Failed to add medical record",
	}, opts.Deduplicate)
	return v
}

func (v *MedicalRecordsView) create(ctx context.Context, _ string, draft dto.MedicalRecordRequest) error {
	_, err := v.api.Create(ctx, draft)
	return err
}

func (v *MedicalRecordsView) Mount(ctx context.Context) error {
	p := pool.New().WithErrors()
	p.Go(func() error { return v.Refresh(ctx) })
	p.Go(func() error { return v.patients.Refresh(ctx) })
	p.Go(func() error { return v.doctors.Refresh(ctx) })
	return p.Wait()
}

func (v *MedicalRecordsView) Form() *Form[dto.MedicalRecordRequest] {
	return v.form
}

func (v *MedicalRecordsView) Add() {
	v.form.Open()
}

func (v *MedicalRecordsView) Patients() []dto.PatientResponse {
	return v.patients.Items()
}

func (v *MedicalRecordsView) Doctors() []dto.DoctorResponse {
	return v.doctors.Items()
}

func (v *MedicalRecordsView) SelectPatient(id string) error {
	name := ResolveName(v.patients.Items(), id, PatientRef)
	return v.form.Edit(func(d *dto.MedicalRecordRequest) {
		d.PatientID = id
		d.PatientName = name
	})
}

func (v *MedicalRecordsView) SelectDoctor(id string) error {
	name := ResolveName(v.doctors.Items(), id, DoctorRef)
	return v.form.Edit(func(d *dto.MedicalRecordRequest) {
		d.DoctorID = id
		d.DoctorName = name
	})
}

// History fetches one patient's records without touching the cached list.
func (v *MedicalRecordsView) History(ctx context.Context, patientID string) ([]dto.MedicalRecordResponse, error) {
	records, err := v.api.ListByPatient(ctx, patientID)
	if err != nil {
		v.opts.Notifier.Failure("Failed to fetch medical records", err)
		return nil, err
	}
	return records, nil
}
