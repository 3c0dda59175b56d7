package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"go-hospital-admin/internal/delivery/dto"
)

// Endpoint is one collection resource: T is the stored record, D the draft sent on create and update.
type Endpoint[T any, D any] struct {
	client *Client
	path   string
}

func (e Endpoint[T, D]) List(ctx context.Context) ([]T, error) {
	data, err := e.client.invoke(ctx, http.MethodGet, e.path, nil, nil)
	if err != nil {
		return nil, err
	}
	items, err := decodeInto[[]T](data)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (e Endpoint[T, D]) Get(ctx context.Context, id string) (T, error) {
	data, err := e.client.invoke(ctx, http.MethodGet, e.path+"/"+url.PathEscape(id), nil, nil)
	if err != nil {
		var zero T
		return zero, err
	}
	return decodeInto[T](data)
}

func (e Endpoint[T, D]) Create(ctx context.Context, draft D) (T, error) {
	data, err := e.client.invoke(ctx, http.MethodPost, e.path, nil, draft)
	if err != nil {
		var zero T
		return zero, err
	}
	return decodeInto[T](data)
}

// Update overwrites the whole record.
func (e Endpoint[T, D]) Update(ctx context.Context, id string, draft D) (T, error) {
	data, err := e.client.invoke(ctx, http.MethodPut, e.path+"/"+url.PathEscape(id), nil, draft)
	if err != nil {
		var zero T
		return zero, err
	}
	return decodeInto[T](data)
}

func (e Endpoint[T, D]) Delete(ctx context.Context, id string) error {
	_, err := e.client.invoke(ctx, http.MethodDelete, e.path+"/"+url.PathEscape(id), nil, nil)
	return err
}

// StatusEndpoint adds the narrow status patch used by appointments and bills.
type StatusEndpoint[T any, D any] struct {
	Endpoint[T, D]
	param string
}

// SetStatus issues PATCH {path}/{id}/status?{param}={status}.
func (e StatusEndpoint[T, D]) SetStatus(ctx context.Context, id, status string) error {
	query := url.Values{}
	query.Set(e.param, status)
	_, err := e.client.invoke(ctx, http.MethodPatch, e.path+"/"+url.PathEscape(id)+"/status", query, nil)
	return err
}

func (c *Client) Patients() Endpoint[dto.PatientResponse, dto.PatientRequest] {
	return Endpoint[dto.PatientResponse, dto.PatientRequest]{client: c, path: "/patients"}
}

func (c *Client) Doctors() Endpoint[dto.DoctorResponse, dto.DoctorRequest] {
	return Endpoint[dto.DoctorResponse, dto.DoctorRequest]{client: c, path: "/doctors"}
}

func (c *Client) Staff() Endpoint[dto.StaffResponse, dto.StaffRequest] {
	return Endpoint[dto.StaffResponse, dto.StaffRequest]{client: c, path: "/staff"}
}

func (c *Client) Appointments() StatusEndpoint[dto.AppointmentResponse, dto.AppointmentRequest] {
	return StatusEndpoint[dto.AppointmentResponse, dto.AppointmentRequest]{
		Endpoint: Endpoint[dto.AppointmentResponse, dto.AppointmentRequest]{client: c, path: "/appointments"},
		param:    "status",
	}
}

func (c *Client) MedicalRecords() MedicalRecordEndpoint {
	return MedicalRecordEndpoint{
		Endpoint: Endpoint[dto.MedicalRecordResponse, dto.MedicalRecordRequest]{client: c, path: "/medical-records"},
	}
}

func (c *Client) Bills() StatusEndpoint[dto.BillResponse, dto.BillRequest] {
	return StatusEndpoint[dto.BillResponse, dto.BillRequest]{
		Endpoint: Endpoint[dto.BillResponse, dto.BillRequest]{client: c, path: "/bills"},
		param:    "payment_status",
	}
}

func (c *Client) Medicines() Endpoint[dto.MedicineResponse, dto.MedicineRequest] {
	return Endpoint[dto.MedicineResponse, dto.MedicineRequest]{client: c, path: "/medicines"}
}

// MedicalRecordEndpoint adds the per-patient history lookup.
type MedicalRecordEndpoint struct {
	Endpoint[dto.MedicalRecordResponse, dto.MedicalRecordRequest]
}

func (e MedicalRecordEndpoint) ListByPatient(ctx context.Context, patientID string) ([]dto.MedicalRecordResponse, error) {
	return Endpoint[dto.MedicalRecordResponse, dto.MedicalRecordRequest]{
		client: e.client,
		path:   e.path + "/patient/" + url.PathEscape(patientID),
	}.List(ctx)
}

// Stats is the stats reader.
type Stats struct {
	client *Client
}

func (c *Client) Stats() Stats {
	return Stats{client: c}
}

func (s Stats) Get(ctx context.Context) (dto.DashboardStatsResponse, error) {
	data, err := s.client.invoke(ctx, http.MethodGet, "/dashboard/stats", nil, nil)
	if err != nil {
		return dto.DashboardStatsResponse{}, err
	}
	return decodeInto[dto.DashboardStatsResponse](data)
}
