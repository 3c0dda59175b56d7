package main

import (
	"go-hospital-admin/internal/dashboard"
	"go-hospital-admin/internal/delivery/dto"

	"github.com/spf13/cobra"
)

func appointmentsCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{Use: "appointments", Short: "Schedule appointments and change their status"}
	view := func() *dashboard.AppointmentsView {
		return dashboard.NewAppointmentsView(s.client.Appointments(), s.client.Patients(), s.client.Doctors(), s.options())
	}

	var search string
	list := &cobra.Command{
		Use:   "list",
		Short: "List appointments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := view()
			if err := v.Refresh(cmd.Context()); err != nil {
				return err
			}
			v.Search(search)
			printAppointments(s.out, v.Visible())
			return nil
		},
	}
	list.Flags().StringVarP(&search, "search", "s", "", "filter on patient or doctor name")

	var in dto.AppointmentRequest
	add := &cobra.Command{
		Use:   "add",
		Short: "Schedule an appointment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := view()
			// Reference list failures are logged; names then resolve to "".
			_ = v.Mount(cmd.Context())
			v.Add()
			if err := v.SelectPatient(in.PatientID); err != nil {
				return err
			}
			if err := v.SelectDoctor(in.DoctorID); err != nil {
				return err
			}
			return submit(cmd, s, v.Form(), func(_ *cobra.Command, d *dto.AppointmentRequest) {
				d.Date, d.Time, d.Reason, d.Notes = in.Date, in.Time, in.Reason, in.Notes
			})
		},
	}
	f := add.Flags()
	f.StringVar(&in.PatientID, "patient", "", "patient id")
	f.StringVar(&in.DoctorID, "doctor", "", "doctor id")
	f.StringVar(&in.Date, "date", "", "appointment date")
	f.StringVar(&in.Time, "time", "", "appointment time")
	f.StringVar(&in.Reason, "reason", "", "reason for the visit")
	f.StringVar(&in.Notes, "notes", "", "notes")

	status := &cobra.Command{
		Use:       "status <id> <scheduled|completed|cancelled>",
		Short:     "Set an appointment status",
		Args:      cobra.ExactArgs(2),
		ValidArgs: dashboard.AppointmentStatuses,
		RunE: func(cmd *cobra.Command, args []string) error {
			return view().SetStatus(cmd.Context(), args[0], args[1])
		},
	}

	cmd.AddCommand(list, add, status)
	return cmd
}

func recordsCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{Use: "records", Short: "Browse and add medical records"}
	view := func() *dashboard.MedicalRecordsView {
		return dashboard.NewMedicalRecordsView(s.client.MedicalRecords(), s.client.Patients(), s.client.Doctors(), s.options())
	}

	var search, patientID string
	list := &cobra.Command{
		Use:   "list",
		Short: "List medical records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := view()
			if patientID != "" {
				records, err := v.History(cmd.Context(), patientID)
				if err != nil {
					return err
				}
				printMedicalRecords(s.out, dashboard.Filter(records, search, dashboard.MedicalRecordFields))
				return nil
			}
			if err := v.Refresh(cmd.Context()); err != nil {
				return err
			}
			v.Search(search)
			printMedicalRecords(s.out, v.Visible())
			return nil
		},
	}
	list.Flags().StringVarP(&search, "search", "s", "", "filter on patient name or diagnosis")
	list.Flags().StringVar(&patientID, "patient", "", "only this patient's history")

	var in dto.MedicalRecordRequest
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a medical record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := view()
			_ = v.Mount(cmd.Context())
			v.Add()
			if err := v.SelectPatient(in.PatientID); err != nil {
				return err
			}
			if err := v.SelectDoctor(in.DoctorID); err != nil {
				return err
			}
			return submit(cmd, s, v.Form(), func(_ *cobra.Command, d *dto.MedicalRecordRequest) {
				d.Date, d.Diagnosis, d.Prescriptions = in.Date, in.Diagnosis, in.Prescriptions
				d.Tests, d.Notes = in.Tests, in.Notes
			})
		},
	}
	f := add.Flags()
	f.StringVar(&in.PatientID, "patient", "", "patient id")
	f.StringVar(&in.DoctorID, "doctor", "", "doctor id")
	f.StringVar(&in.Date, "date", "", "visit date")
	f.StringVar(&in.Diagnosis, "diagnosis", "", "diagnosis")
	f.StringVar(&in.Prescriptions, "prescriptions", "", "prescriptions")
	f.StringVar(&in.Tests, "tests", "", "tests ordered")
	f.StringVar(&in.Notes, "notes", "", "notes")

	cmd.AddCommand(list, add)
	return cmd
}

func billsCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{Use: "bills", Short: "Create bills and track payment"}
	view := func() *dashboard.BillingView {
		return dashboard.NewBillingView(s.client.Bills(), s.client.Patients(), s.options())
	}

	var search string
	list := &cobra.Command{
		Use:   "list",
		Short: "List bills",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := view()
			if err := v.Refresh(cmd.Context()); err != nil {
				return err
			}
			v.Search(search)
			printBills(s.out, v.Visible())
			return nil
		},
	}
	list.Flags().StringVarP(&search, "search", "s", "", "filter on patient name")

	var in dto.BillRequest
	add := &cobra.Command{
		Use:   "add",
		Short: "Create a bill",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := view()
			_ = v.Mount(cmd.Context())
			v.Add()
			if err := v.SelectPatient(in.PatientID); err != nil {
				return err
			}
			return submit(cmd, s, v.Form(), func(cmd *cobra.Command, d *dto.BillRequest) {
				d.AppointmentID, d.Items, d.TotalAmount = in.AppointmentID, in.Items, in.TotalAmount
				if cmd.Flags().Changed("status") {
					d.PaymentStatus = in.PaymentStatus
				}
			})
		},
	}
	f := add.Flags()
	f.StringVar(&in.PatientID, "patient", "", "patient id")
	f.StringVar(&in.AppointmentID, "appointment", "", "related appointment id")
	f.StringVar(&in.Items, "items", "", "billed items")
	f.Var(decimalFlag{&in.TotalAmount}, "amount", "total amount")
	f.StringVar(&in.PaymentStatus, "status", "", "pending, paid or cancelled")

	status := &cobra.Command{
		Use:       "status <id> <pending|paid|cancelled>",
		Short:     "Set a bill's payment status",
		Args:      cobra.ExactArgs(2),
		ValidArgs: dashboard.PaymentStatuses,
		RunE: func(cmd *cobra.Command, args []string) error {
			return view().SetStatus(cmd.Context(), args[0], args[1])
		},
	}

	cmd.AddCommand(list, add, status)
	return cmd
}

func statsCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show the dashboard counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := dashboard.NewStatsView(s.client.Stats(), s.options())
			if err := v.Mount(cmd.Context()); err != nil {
				return err
			}
			printStats(s.out, v.Stats())
			return nil
		},
	}
}
