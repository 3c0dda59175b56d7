package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"go-hospital-admin/internal/dashboard"
	"go-hospital-admin/internal/delivery/dto"
)

func newTable(w io.Writer, header string) *tabwriter.Writer {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, header)
	return tw
}

func printPatients(w io.Writer, items []dto.PatientResponse) {
	tw := newTable(w, "ID\tNAME\tAGE\tGENDER\tBLOOD\tCONTACT")
	for _, p := range items {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\n", p.ID, p.Name, p.Age, p.Gender, p.BloodGroup, p.Contact)
	}
	tw.Flush()
}

func printDoctors(w io.Writer, items []dto.DoctorResponse) {
	tw := newTable(w, "ID\tNAME\tSPECIALIZATION\tDEPARTMENT\tAVAILABILITY")
	for _, d := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", d.ID, d.Name, d.Specialization, d.Department, d.Availability)
	}
	tw.Flush()
}

func printStaff(w io.Writer, items []dto.StaffResponse) {
	tw := newTable(w, "ID\tNAME\tROLE\tDEPARTMENT\tEMAIL")
	for _, s := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", s.ID, s.Name, s.Role, s.Department, s.Email)
	}
	tw.Flush()
}

func printAppointments(w io.Writer, items []dto.AppointmentResponse) {
	tw := newTable(w, "ID\tPATIENT\tDOCTOR\tDATE\tTIME\tSTATUS")
	for _, a := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", a.ID, a.PatientName, a.DoctorName, a.Date, a.Time, a.Status)
	}
	tw.Flush()
}

func printMedicalRecords(w io.Writer, items []dto.MedicalRecordResponse) {
	tw := newTable(w, "ID\tPATIENT\tDOCTOR\tDATE\tDIAGNOSIS")
	for _, r := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.ID, r.PatientName, r.DoctorName, r.Date, r.Diagnosis)
	}
	tw.Flush()
}

func printBills(w io.Writer, items []dto.BillResponse) {
	tw := newTable(w, "ID\tPATIENT\tAMOUNT\tSTATUS\tDATE")
	for _, b := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", b.ID, b.PatientName, b.TotalAmount.StringFixed(2), b.PaymentStatus, b.Date.Format("2006-01-02"))
	}
	tw.Flush()
}

func printMedicines(w io.Writer, items []dto.MedicineResponse) {
	tw := newTable(w, "ID\tNAME\tCATEGORY\tQTY\tPRICE\tEXPIRY\t")
	for _, m := range items {
		flag := ""
		if dashboard.IsLowStock(m) {
			flag = "LOW"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\t%s\n", m.ID, m.Name, m.Category, m.Quantity, m.Price.StringFixed(2), m.ExpiryDate, flag)
	}
	tw.Flush()
}

func printStats(w io.Writer, stats dto.DashboardStatsResponse) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Patients\t%d\n", stats.TotalPatients)
	fmt.Fprintf(tw, "Doctors\t%d\n", stats.TotalDoctors)
	fmt.Fprintf(tw, "Appointments\t%d\n", stats.TotalAppointments)
	fmt.Fprintf(tw, "Staff\t%d\n", stats.TotalStaff)
	fmt.Fprintf(tw, "Pending bills\t%d\n", stats.PendingBills)
	tw.Flush()
}
