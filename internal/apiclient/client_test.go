package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"go-hospital-admin/internal/delivery/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client, err := New(Config{BaseURL: srv.URL + "/api/", Token: "tok"})
	require.NoError(t, err)
	return client
}

func TestNew_RequiresBaseURL(t *testing.T) {
	_, err := New(Config{BaseURL: "  "})
	assert.Error(t, err)
}

func TestEndpoint_List(t *testing.T) {
	id := uuid.New()
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/patients", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]dto.PatientResponse{{ID: id, Name: "Jane Doe"}})
	})

	patients, err := client.Patients().List(context.Background())
	require.NoError(t, err)
	require.Len(t, patients, 1)
	assert.Equal(t, id, patients[0].ID)
	assert.Equal(t, "Jane Doe", patients[0].Name)
}

func TestEndpoint_ListNullIsEmpty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("null"))
	})

	staff, err := client.Staff().List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, staff)
	assert.Empty(t, staff)
}

func TestEndpoint_CreateSendsDraft(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get("Idempotency-Key"))

		var req dto.DoctorRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Dr. Who", req.Name)
		json.NewEncoder(w).Encode(dto.DoctorResponse{ID: uuid.New(), Name: req.Name})
	})

	doctor, err := client.Doctors().Create(context.Background(), dto.DoctorRequest{Name: "Dr. Who"})
	require.NoError(t, err)
	assert.Equal(t, "Dr. Who", doctor.Name)
}

func TestEndpoint_UpdateAndDeletePaths(t *testing.T) {
	var calls []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		if r.Method == http.MethodDelete {
			w.Write([]byte(`{"message":"Medicine deleted successfully"}`))
			return
		}
		w.Write([]byte(`{"name":"Aspirin"}`))
	})

	_, err := client.Medicines().Update(context.Background(), "m-1", dto.MedicineRequest{Name: "Aspirin"})
	require.NoError(t, err)
	require.NoError(t, client.Medicines().Delete(context.Background(), "m-1"))

	assert.Equal(t, []string{"PUT /api/medicines/m-1", "DELETE /api/medicines/m-1"}, calls)
}

func TestStatusEndpoint_SetStatus(t *testing.T) {
	var got []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		got = append(got, r.URL.Path+"?"+r.URL.RawQuery)
		w.Write([]byte(`{"message":"ok"}`))
	})

	require.NoError(t, client.Appointments().SetStatus(context.Background(), "a-1", "cancelled"))
	require.NoError(t, client.Bills().SetStatus(context.Background(), "b-1", "paid"))

	assert.Equal(t, []string{
		"/api/appointments/a-1/status?status=cancelled",
		"/api/bills/b-1/status?payment_status=paid",
	}, got)
}

func TestMedicalRecords_ListByPatient(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/medical-records/patient/p-1", r.URL.Path)
		w.Write([]byte(`[{"patient_id":"p-1","diagnosis":"Flu"}]`))
	})

	records, err := client.MedicalRecords().ListByPatient(context.Background(), "p-1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Flu", records[0].Diagnosis)
}

func TestStats_Get(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/dashboard/stats", r.URL.Path)
		w.Write([]byte(`{"total_patients":3,"total_doctors":1,"total_appointments":2,"total_staff":4,"pending_bills":1}`))
	})

	stats, err := client.Stats().Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalPatients)
	assert.Equal(t, int64(1), stats.PendingBills)
}

func TestInvoke_DecodesErrorEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success":false,"message":"Patient not found"}`))
	})

	err := client.Patients().Delete(context.Background(), "missing")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Patient not found", apiErr.Message)
	assert.True(t, IsNotFound(err))
}

func TestInvoke_PlainTextError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	})

	_, err := client.Patients().List(context.Background())
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, "upstream down", apiErr.Message)
}

func TestInvoke_DoesNotRetry(t *testing.T) {
	var calls int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := client.Staff().Create(context.Background(), dto.StaffRequest{Name: "Sam"})
	require.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestInvoke_IdempotencyKeyOnMutationsOnly(t *testing.T) {
	headers := map[string]string{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.Copy(io.Discard, r.Body)
		headers[r.Method] = r.Header.Get("Idempotency-Key")
		if r.Method == http.MethodGet {
			w.Write([]byte(`[]`))
			return
		}
		w.Write([]byte(`{}`))
	})

	ctx := WithIdempotencyKey(context.Background(), "draft-1")
	_, err := client.Bills().Create(ctx, dto.BillRequest{PatientID: "p-1", Items: "x"})
	require.NoError(t, err)
	_, err = client.Bills().List(ctx)
	require.NoError(t, err)

	assert.Equal(t, "draft-1", headers[http.MethodPost])
	assert.Empty(t, headers[http.MethodGet])
}

func TestInvoke_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client, err := New(Config{BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = client.Patients().List(context.Background())
	require.Error(t, err)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}
