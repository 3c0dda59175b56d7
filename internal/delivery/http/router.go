package http

import (
	"net/http"

	"go-hospital-admin/internal/delivery/http/handler"
	"go-hospital-admin/internal/delivery/http/middleware"
	"go-hospital-admin/pkg/response"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// Handlers groups one handler per resource served under /api.
type Handlers struct {
	Patient       *handler.PatientHandler
	Doctor        *handler.DoctorHandler
	Staff         *handler.StaffHandler
	Appointment   *handler.AppointmentHandler
	MedicalRecord *handler.MedicalRecordHandler
	Bill          *handler.BillHandler
	Medicine      *handler.MedicineHandler
	Dashboard     *handler.DashboardHandler
	AuditLog      *handler.AuditLogHandler
}

// Middlewares are optional apart from Auth and CORS. A nil Idempotency or
// Metrics is skipped.
type Middlewares struct {
	Auth        *middleware.AuthMiddleware
	CORS        *middleware.CORSMiddleware
	Idempotency *middleware.IdempotencyMiddleware
	Metrics     *middleware.HTTPMetrics
	Gatherer    prometheus.Gatherer
	Log         *logrus.Logger
}

type Router struct {
	router      *mux.Router
	handlers    Handlers
	middlewares Middlewares
}

func NewRouter(handlers Handlers, middlewares Middlewares) *Router {
	return &Router{
		router:      mux.NewRouter(),
		handlers:    handlers,
		middlewares: middlewares,
	}
}

func (r *Router) Setup() *mux.Router {
	h := r.handlers
	mw := r.middlewares

	if mw.Gatherer != nil {
		r.router.Handle("/metrics", promhttp.HandlerFor(mw.Gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	}

	api := r.router.PathPrefix("/api").Subrouter()

	// Public routes
	api.HandleFunc("/", r.banner).Methods(http.MethodGet)
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Protected routes
	protected := api.NewRoute().Subrouter()
	protected.Use(mw.Auth.Authenticate)
	if mw.Idempotency != nil {
		protected.Use(mw.Idempotency.Handle)
	}

	// Patients
	protected.HandleFunc("/patients", h.Patient.CreatePatient).Methods(http.MethodPost)
	protected.HandleFunc("/patients", h.Patient.GetAllPatients).Methods(http.MethodGet)
	protected.HandleFunc("/patients/{id}", h.Patient.GetPatient).Methods(http.MethodGet)
	protected.HandleFunc("/patients/{id}", h.Patient.UpdatePatient).Methods(http.MethodPut)
	protected.HandleFunc("/patients/{id}", h.Patient.DeletePatient).Methods(http.MethodDelete)

	// Doctors
	protected.HandleFunc("/doctors", h.Doctor.CreateDoctor).Methods(http.MethodPost)
	protected.HandleFunc("/doctors", h.Doctor.GetAllDoctors).Methods(http.MethodGet)
	protected.HandleFunc("/doctors/{id}", h.Doctor.GetDoctor).Methods(http.MethodGet)
	protected.HandleFunc("/doctors/{id}", h.Doctor.UpdateDoctor).Methods(http.MethodPut)
	protected.HandleFunc("/doctors/{id}", h.Doctor.DeleteDoctor).Methods(http.MethodDelete)

	// Staff
	protected.HandleFunc("/staff", h.Staff.CreateStaff).Methods(http.MethodPost)
	protected.HandleFunc("/staff", h.Staff.GetAllStaff).Methods(http.MethodGet)
	protected.HandleFunc("/staff/{id}", h.Staff.DeleteStaff).Methods(http.MethodDelete)

	// Appointments
	protected.HandleFunc("/appointments", h.Appointment.CreateAppointment).Methods(http.MethodPost)
	protected.HandleFunc("/appointments", h.Appointment.GetAllAppointments).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}", h.Appointment.UpdateAppointment).Methods(http.MethodPut)
	protected.HandleFunc("/appointments/{id}", h.Appointment.DeleteAppointment).Methods(http.MethodDelete)
	protected.HandleFunc("/appointments/{id}/status", h.Appointment.UpdateAppointmentStatus).Methods(http.MethodPatch)

	// Medical records
	protected.HandleFunc("/medical-records", h.MedicalRecord.CreateMedicalRecord).Methods(http.MethodPost)
	protected.HandleFunc("/medical-records", h.MedicalRecord.GetAllMedicalRecords).Methods(http.MethodGet)
	protected.HandleFunc("/medical-records/patient/{patientId}", h.MedicalRecord.GetPatientMedicalRecords).Methods(http.MethodGet)

	// Bills
	protected.HandleFunc("/bills", h.Bill.CreateBill).Methods(http.MethodPost)
	protected.HandleFunc("/bills", h.Bill.GetAllBills).Methods(http.MethodGet)
	protected.HandleFunc("/bills/{id}/status", h.Bill.UpdateBillStatus).Methods(http.MethodPatch)

	// Medicines
	protected.HandleFunc("/medicines", h.Medicine.CreateMedicine).Methods(http.MethodPost)
	protected.HandleFunc("/medicines", h.Medicine.GetAllMedicines).Methods(http.MethodGet)
	protected.HandleFunc("/medicines/{id}", h.Medicine.UpdateMedicine).Methods(http.MethodPut)
	protected.HandleFunc("/medicines/{id}", h.Medicine.DeleteMedicine).Methods(http.MethodDelete)

	// Dashboard and audit
	protected.HandleFunc("/dashboard/stats", h.Dashboard.GetStats).Methods(http.MethodGet)
	protected.HandleFunc("/audit-logs", h.AuditLog.ListAuditLogs).Methods(http.MethodGet)
	protected.HandleFunc("/audit-logs/{id}", h.AuditLog.GetAuditLog).Methods(http.MethodGet)

	// Preflight requests have to match a route for the middleware chain to run.
	r.router.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(func(w http.ResponseWriter, req *http.Request) {})

	r.router.Use(mw.CORS.Handle)
	if mw.Log != nil {
		r.router.Use(middleware.RequestLogger(mw.Log))
	}
	if mw.Metrics != nil {
		r.router.Use(mw.Metrics.Handle)
	}

	return r.router
}

func (r *Router) banner(w http.ResponseWriter, req *http.Request) {
	response.Message(w, http.StatusOK, "Hospital Management System API")
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
