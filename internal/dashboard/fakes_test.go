package dashboard

import (
	"context"
	"errors"
	"sync"

	"go-hospital-admin/internal/apiclient"
	"go-hospital-admin/internal/delivery/dto"

	"github.com/google/uuid"
)

var errBoom = errors.New("boom")

// fakeStore is an in-memory remote for one entity kind.
type fakeStore[T any, D any] struct {
	mu      sync.Mutex
	items   []T
	build   func(id uuid.UUID, draft D) T
	idOf    func(T) string
	setStat func(item *T, status string)

	listErr   error
	createErr error
	updateErr error
	deleteErr error
	statusErr error

	lists    int
	creates  int
	updates  int
	deletes  int
	statuses []string
	keys     []string

	// createGate, when set, blocks every Create until it is closed.
	createGate chan struct{}
	// createStarted receives once per Create before it blocks.
	createStarted chan struct{}
}

func (s *fakeStore[T, D]) List(ctx context.Context) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lists++
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *fakeStore[T, D]) Create(ctx context.Context, draft D) (T, error) {
	if s.createStarted != nil {
		s.createStarted <- struct{}{}
	}
	if s.createGate != nil {
		<-s.createGate
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.creates++
	s.keys = append(s.keys, apiclient.IdempotencyKeyFromContext(ctx))
	var zero T
	if s.createErr != nil {
		return zero, s.createErr
	}
	item := s.build(uuid.New(), draft)
	s.items = append(s.items, item)
	return item, nil
}

func (s *fakeStore[T, D]) Update(ctx context.Context, id string, draft D) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updates++
	var zero T
	if s.updateErr != nil {
		return zero, s.updateErr
	}
	for i, item := range s.items {
		if s.idOf(item) == id {
			updated := s.build(uuid.MustParse(id), draft)
			s.items[i] = updated
			return updated, nil
		}
	}
	return zero, &apiclient.APIError{Status: 404, Message: "not found"}
}

func (s *fakeStore[T, D]) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deletes++
	if s.deleteErr != nil {
		return s.deleteErr
	}
	for i, item := range s.items {
		if s.idOf(item) == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return &apiclient.APIError{Status: 404, Message: "not found"}
}

func (s *fakeStore[T, D]) SetStatus(ctx context.Context, id, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statuses = append(s.statuses, status)
	if s.statusErr != nil {
		return s.statusErr
	}
	for i := range s.items {
		if s.idOf(s.items[i]) == id {
			s.setStat(&s.items[i], status)
			return nil
		}
	}
	return &apiclient.APIError{Status: 404, Message: "not found"}
}

func (s *fakeStore[T, D]) counts() (lists, creates, updates, deletes int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lists, s.creates, s.updates, s.deletes
}

func (s *fakeStore[T, D]) setListErr(err error) {
	s.mu.Lock()
	s.listErr = err
	s.mu.Unlock()
}

func newPatientStore(seed ...dto.PatientResponse) *fakeStore[dto.PatientResponse, dto.PatientRequest] {
	return &fakeStore[dto.PatientResponse, dto.PatientRequest]{
		items: seed,
		build: func(id uuid.UUID, d dto.PatientRequest) dto.PatientResponse {
			return dto.PatientResponse{
				ID: id, Name: d.Name, Age: d.Age, Gender: d.Gender, Contact: d.Contact,
				Address: d.Address, BloodGroup: d.BloodGroup, MedicalHistory: d.MedicalHistory,
			}
		},
		idOf: func(p dto.PatientResponse) string { return p.ID.String() },
	}
}

func newDoctorStore(seed ...dto.DoctorResponse) *fakeStore[dto.DoctorResponse, dto.DoctorRequest] {
	return &fakeStore[dto.DoctorResponse, dto.DoctorRequest]{
		items: seed,
		build: func(id uuid.UUID, d dto.DoctorRequest) dto.DoctorResponse {
			return dto.DoctorResponse{ID: id, Name: d.Name, Specialization: d.Specialization}
		},
		idOf: func(d dto.DoctorResponse) string { return d.ID.String() },
	}
}

func newStaffStore(seed ...dto.StaffResponse) *fakeStore[dto.StaffResponse, dto.StaffRequest] {
	return &fakeStore[dto.StaffResponse, dto.StaffRequest]{
		items: seed,
		build: func(id uuid.UUID, d dto.StaffRequest) dto.StaffResponse {
			return dto.StaffResponse{ID: id, Name: d.Name, Role: d.Role}
		},
		idOf: func(s dto.StaffResponse) string { return s.ID.String() },
	}
}

func newAppointmentStore(seed ...dto.AppointmentResponse) *fakeStore[dto.AppointmentResponse, dto.AppointmentRequest] {
	return &fakeStore[dto.AppointmentResponse, dto.AppointmentRequest]{
		items: seed,
		build: func(id uuid.UUID, d dto.AppointmentRequest) dto.AppointmentResponse {
			return dto.AppointmentResponse{
				ID: id, PatientID: d.PatientID, PatientName: d.PatientName,
				DoctorID: d.DoctorID, DoctorName: d.DoctorName, Status: "scheduled",
			}
		},
		idOf:    func(a dto.AppointmentResponse) string { return a.ID.String() },
		setStat: func(a *dto.AppointmentResponse, status string) { a.Status = status },
	}
}

func newBillStore(seed ...dto.BillResponse) *fakeStore[dto.BillResponse, dto.BillRequest] {
	return &fakeStore[dto.BillResponse, dto.BillRequest]{
		items: seed,
		build: func(id uuid.UUID, d dto.BillRequest) dto.BillResponse {
			return dto.BillResponse{ID: id, PatientID: d.PatientID, PatientName: d.PatientName, PaymentStatus: d.PaymentStatus}
		},
		idOf:    func(b dto.BillResponse) string { return b.ID.String() },
		setStat: func(b *dto.BillResponse, status string) { b.PaymentStatus = status },
	}
}

func newMedicineStore(seed ...dto.MedicineResponse) *fakeStore[dto.MedicineResponse, dto.MedicineRequest] {
	return &fakeStore[dto.MedicineResponse, dto.MedicineRequest]{
		items: seed,
		build: func(id uuid.UUID, d dto.MedicineRequest) dto.MedicineResponse {
			return dto.MedicineResponse{ID: id, Name: d.Name, Quantity: d.Quantity, Category: d.Category}
		},
		idOf: func(m dto.MedicineResponse) string { return m.ID.String() },
	}
}

// recordStore adds the per-patient lookup to a medical record fakeStore.
type recordStore struct {
	*fakeStore[dto.MedicalRecordResponse, dto.MedicalRecordRequest]
}

func newRecordStore() recordStore {
	return recordStore{&fakeStore[dto.MedicalRecordResponse, dto.MedicalRecordRequest]{
		build: func(id uuid.UUID, d dto.MedicalRecordRequest) dto.MedicalRecordResponse {
			return dto.MedicalRecordResponse{
				ID: id, PatientID: d.PatientID, PatientName: d.PatientName,
				DoctorID: d.DoctorID, DoctorName: d.DoctorName, Diagnosis: d.Diagnosis,
			}
		},
		idOf: func(r dto.MedicalRecordResponse) string { return r.ID.String() },
	}}
}

func (s recordStore) ListByPatient(ctx context.Context, patientID string) ([]dto.MedicalRecordResponse, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []dto.MedicalRecordResponse
	for _, r := range all {
		if r.PatientID == patientID {
			out = append(out, r)
		}
	}
	return out, nil
}

type recordingNotifier struct {
	mu        sync.Mutex
	successes []string
	failures  []string
}

func (n *recordingNotifier) Success(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, message)
}

func (n *recordingNotifier) Failure(message string, err error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.failures = append(n.failures, message)
}

func (n *recordingNotifier) Failures() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.failures...)
}

func (n *recordingNotifier) Successes() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.successes...)
}

type fakeStats struct {
	stats dto.DashboardStatsResponse
	err   error
}

func (f *fakeStats) Get(ctx context.Context) (dto.DashboardStatsResponse, error) {
	return f.stats, f.err
}

func answer(yes bool) (Confirmer, *[]string) {
	var prompts []string
	return ConfirmFunc(func(ctx context.Context, prompt string) bool {
		prompts = append(prompts, prompt)
		return yes
	}), &prompts
}
