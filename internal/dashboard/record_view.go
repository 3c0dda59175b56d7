package dashboard

import (
	"context"

	"go-hospital-admin/internal/delivery/dto"
)

type recordMessages struct {
	fetchFailed string
	form        formMessages
	delete      deleteMessages
}

type recordKind[T any, D any] struct {
	fields   Fields[T]
	idOf     func(T) string
	blank    func() D
	seed     func(T) D
	messages recordMessages
}

// RecordView is a screen over entities that support create, full update and delete.
type RecordView[T any, D any] struct {
	*listState[T]

	api  RecordAPI[T, D]
	kind recordKind[T, D]
	opts Options
	form *Form[D]
}

func newRecordView[T any, D any](api RecordAPI[T, D], kind recordKind[T, D], opts Options) *RecordView[T, D] {
	opts = opts.normalize()
	v := &RecordView[T, D]{api: api, kind: kind, opts: opts}
	v.listState = newListState(FetchFunc[T](api.List), kind.fields, notifyFetch(opts, kind.messages.fetchFailed))
	v.form = newForm(kind.blank, v.save, v.Refresh, opts.Notifier, kind.messages.form, opts.Deduplicate)
	return v
}

func (v *RecordView[T, D]) save(ctx context.Context, target string, draft D) error {
	if target == "" {
		_, err := v.api.Create(ctx, draft)
		return err
	}
	_, err := v.api.Update(ctx, target, draft)
	return err
}

// Mount loads the list.
func (v *RecordView[T, D]) Mount(ctx context.Context) error {
	return v.Refresh(ctx)
}

func (v *RecordView[T, D]) Form() *Form[D] {
	return v.form
}

// Add opens an empty create draft.
func (v *RecordView[T, D]) Add() {
	v.form.Open()
}

// Edit opens an update draft seeded from the loaded record with this id.
func (v *RecordView[T, D]) Edit(id string) error {
	item, ok := findByID(v.Items(), id, v.kind.idOf)
	if !ok {
		return ErrNotLoaded
	}
	v.form.open(id, v.kind.seed(item))
	return nil
}

// Delete asks for confirmation and then removes the record. The returned
// bool reports whether the call was issued.
func (v *RecordView[T, D]) Delete(ctx context.Context, id string) (bool, error) {
	return deleteConfirmed(ctx, v.opts, v.api, v.Refresh, id, v.kind.messages.delete)
}

type PatientsView = RecordView[dto.PatientResponse, dto.PatientRequest]

func NewPatientsView(api RecordAPI[dto.PatientResponse, dto.PatientRequest], opts Options) *PatientsView {
	return newRecordView(api, recordKind[dto.PatientResponse, dto.PatientRequest]{
		fields: PatientFields,
		idOf:   func(p dto.PatientResponse) string { return p.ID.String() },
		blank:  blankPatient,
		seed:   PatientDraft,
		messages: recordMessages{
			fetchFailed: "Failed to fetch patients",
			form: formMessages{
				created: "Patient added successfully",
				updated: "Patient updated successfully",
				failed:  "Failed to save patient",
			},
			delete: deleteMessages{
				prompt:  "Are you sure you want to delete this patient?",
				deleted: "Patient deleted successfully",
				failed:  "Failed to delete patient",
			},
		},
	}, opts)
}

type DoctorsView = RecordView[dto.DoctorResponse, dto.DoctorRequest]

func NewDoctorsView(api RecordAPI[dto.DoctorResponse, dto.DoctorRequest], opts Options) *DoctorsView {
	return newRecordView(api, recordKind[dto.DoctorResponse, dto.DoctorRequest]{
		fields: DoctorFields,
		idOf:   func(d dto.DoctorResponse) string { return d.ID.String() },
		blank:  blankDoctor,
		seed:   DoctorDraft,
		messages: recordMessages{
			fetchFailed: "Failed to fetch doctors",
			form: formMessages{
				created: "Doctor added successfully",
				updated: "Doctor updated successfully",
				failed:  "Failed to save doctor",
			},
			delete: deleteMessages{
				prompt:  "Are you sure you want to delete this doctor?",
				deleted: "Doctor deleted successfully",
				failed:  "Failed to delete doctor",
			},
		},
	}, opts)
}

// LowStockThreshold is the quantity below which a medicine is flagged.
const LowStockThreshold = 20

func IsLowStock(m dto.MedicineResponse) bool {
	return m.Quantity < LowStockThreshold
}

// InventoryView is the medicines screen.
type InventoryView struct {
	*RecordView[dto.MedicineResponse, dto.MedicineRequest]
}

func NewInventoryView(api RecordAPI[dto.MedicineResponse, dto.MedicineRequest], opts Options) *InventoryView {
	return &InventoryView{newRecordView(api, recordKind[dto.MedicineResponse, dto.MedicineRequest]{
		fields: MedicineFields,
		idOf:   func(m dto.MedicineResponse) string { return m.ID.String() },
		blank:  blankMedicine,
		seed:   MedicineDraft,
		messages: recordMessages{
			fetchFailed: "Failed to fetch medicines",
			form: formMessages{
				created: "Medicine added successfully",
				updated: "Medicine updated successfully",
				failed:  "Failed to save medicine",
			},
			delete: deleteMessages{
				prompt:  "Are you sure you want to delete this medicine?",
				deleted: "Medicine deleted successfully",
				failed:  "Failed to delete medicine",
			},
		},
	}, opts)}
}

// LowStock lists the loaded medicines under the threshold, in list order.
func (v *InventoryView) LowStock() []dto.MedicineResponse {
	var out []dto.MedicineResponse
	for _, m := range v.Items() {
		if IsLowStock(m) {
			out = append(out, m)
		}
	}
	return out
}
