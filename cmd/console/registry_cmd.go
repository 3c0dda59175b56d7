package main

import (
	"fmt"

	"go-hospital-admin/internal/dashboard"
	"go-hospital-admin/internal/delivery/dto"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func patientsCmd(s *session) *cobra.Command {
	return recordCommand[dto.PatientResponse, dto.PatientRequest]{
		use:   "patients",
		short: "Manage patients",
		view: func(s *session) *dashboard.RecordView[dto.PatientResponse, dto.PatientRequest] {
			return dashboard.NewPatientsView(s.client.Patients(), s.options())
		},
		flags: patientFlags,
		print: printPatients,
	}.build(s)
}

func patientFlags(cmd *cobra.Command) func(*cobra.Command, *dto.PatientRequest) {
	var in dto.PatientRequest
	f := cmd.Flags()
	f.StringVar(&in.Name, "name", "", "full name")
	f.IntVar(&in.Age, "age", 0, "age in years")
	f.StringVar(&in.Gender, "gender", "", "Male, Female or Other")
	f.StringVar(&in.Contact, "contact", "", "phone number")
	f.StringVar(&in.Address, "address", "", "home address")
	f.StringVar(&in.BloodGroup, "blood-group", "", "A+, A-, B+, B-, AB+, AB-, O+ or O-")
	f.StringVar(&in.MedicalHistory, "history", "", "medical history")

	return func(cmd *cobra.Command, d *dto.PatientRequest) {
		set := changed(cmd)
		set("name", func() { d.Name = in.Name })
		set("age", func() { d.Age = in.Age })
		set("gender", func() { d.Gender = in.Gender })
		set("contact", func() { d.Contact = in.Contact })
		set("address", func() { d.Address = in.Address })
		set("blood-group", func() { d.BloodGroup = in.BloodGroup })
		set("history", func() { d.MedicalHistory = in.MedicalHistory })
	}
}

func doctorsCmd(s *session) *cobra.Command {
	return recordCommand[dto.DoctorResponse, dto.DoctorRequest]{
		use:   "doctors",
		short: "Manage doctors",
		view: func(s *session) *dashboard.RecordView[dto.DoctorResponse, dto.DoctorRequest] {
			return dashboard.NewDoctorsView(s.client.Doctors(), s.options())
		},
		flags: doctorFlags,
		print: printDoctors,
	}.build(s)
}

func doctorFlags(cmd *cobra.Command) func(*cobra.Command, *dto.DoctorRequest) {
	var in dto.DoctorRequest
	f := cmd.Flags()
	f.StringVar(&in.Name, "name", "", "full name")
	f.StringVar(&in.Specialization, "specialization", "", "specialization")
	f.StringVar(&in.Contact, "contact", "", "phone number")
	f.StringVar(&in.Email, "email", "", "email address")
	f.StringVar(&in.Department, "department", "", "department")
	f.StringVar(&in.Availability, "availability", "", "availability, free text")

	return func(cmd *cobra.Command, d *dto.DoctorRequest) {
		set := changed(cmd)
		set("name", func() { d.Name = in.Name })
		set("specialization", func() { d.Specialization = in.Specialization })
		set("contact", func() { d.Contact = in.Contact })
		set("email", func() { d.Email = in.Email })
		set("department", func() { d.Department = in.Department })
		set("availability", func() { d.Availability = in.Availability })
	}
}

func inventoryCmd(s *session) *cobra.Command {
	return recordCommand[dto.MedicineResponse, dto.MedicineRequest]{
		use:   "inventory",
		short: "Manage the medicine inventory",
		view: func(s *session) *dashboard.RecordView[dto.MedicineResponse, dto.MedicineRequest] {
			return dashboard.NewInventoryView(s.client.Medicines(), s.options()).RecordView
		},
		flags: medicineFlags,
		print: printMedicines,
		listFlags: func(cmd *cobra.Command) func([]dto.MedicineResponse) []dto.MedicineResponse {
			var low bool
			cmd.Flags().BoolVar(&low, "low", false, fmt.Sprintf("only medicines with quantity below %d", dashboard.LowStockThreshold))
			return func(items []dto.MedicineResponse) []dto.MedicineResponse {
				if !low {
					return items
				}
				var out []dto.MedicineResponse
				for _, m := range items {
					if dashboard.IsLowStock(m) {
						out = append(out, m)
					}
				}
				return out
			}
		},
	}.build(s)
}

func medicineFlags(cmd *cobra.Command) func(*cobra.Command, *dto.MedicineRequest) {
	var in dto.MedicineRequest
	f := cmd.Flags()
	f.StringVar(&in.Name, "name", "", "medicine name")
	f.IntVar(&in.Quantity, "quantity", 0, "units in stock")
	f.Var(decimalFlag{&in.Price}, "price", "unit price")
	f.StringVar(&in.ExpiryDate, "expiry", "", "expiry date")
	f.StringVar(&in.Manufacturer, "manufacturer", "", "manufacturer")
	f.StringVar(&in.Category, "category", "", "category")

	return func(cmd *cobra.Command, d *dto.MedicineRequest) {
		set := changed(cmd)
		set("name", func() { d.Name = in.Name })
		set("quantity", func() { d.Quantity = in.Quantity })
		set("price", func() { d.Price = in.Price })
		set("expiry", func() { d.ExpiryDate = in.ExpiryDate })
		set("manufacturer", func() { d.Manufacturer = in.Manufacturer })
		set("category", func() { d.Category = in.Category })
	}
}

func staffCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{Use: "staff", Short: "Manage staff members"}
	view := func() *dashboard.StaffView { return dashboard.NewStaffView(s.client.Staff(), s.options()) }

	var search string
	list := &cobra.Command{
		Use:   "list",
		Short: "List staff",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := view()
			if err := v.Mount(cmd.Context()); err != nil {
				return err
			}
			v.Search(search)
			printStaff(s.out, v.Visible())
			return nil
		},
	}
	list.Flags().StringVarP(&search, "search", "s", "", "case-insensitive filter")

	add := &cobra.Command{Use: "add", Short: "Add a staff member", Args: cobra.NoArgs}
	apply := staffFlags(add)
	add.RunE = func(cmd *cobra.Command, args []string) error {
		v := view()
		v.Add()
		return submit(cmd, s, v.Form(), apply)
	}

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a staff member after confirmation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := view().Delete(cmd.Context(), args[0])
			return err
		},
	}
	del.Flags().BoolVarP(&s.assumeYes, "yes", "y", false, "skip the confirmation prompt")

	cmd.AddCommand(list, add, del)
	return cmd
}

func staffFlags(cmd *cobra.Command) func(*cobra.Command, *dto.StaffRequest) {
	var in dto.StaffRequest
	f := cmd.Flags()
	f.StringVar(&in.Name, "name", "", "full name")
	f.StringVar(&in.Role, "role", "", "role")
	f.StringVar(&in.Contact, "contact", "", "phone number")
	f.StringVar(&in.Email, "email", "", "email address")
	f.StringVar(&in.Department, "department", "", "department")

	return func(cmd *cobra.Command, d *dto.StaffRequest) {
		set := changed(cmd)
		set("name", func() { d.Name = in.Name })
		set("role", func() { d.Role = in.Role })
		set("contact", func() { d.Contact = in.Contact })
		set("email", func() { d.Email = in.Email })
		set("department", func() { d.Department = in.Department })
	}
}

// changed returns a helper that runs fn only when the named flag was given.
func changed(cmd *cobra.Command) func(name string, fn func()) {
	return func(name string, fn func()) {
		if cmd.Flags().Changed(name) {
			fn()
		}
	}
}

// decimalFlag parses a flag value into a decimal amount.
type decimalFlag struct {
	value *decimal.Decimal
}

func (f decimalFlag) String() string {
	if f.value == nil {
		return "0"
	}
	return f.value.String()
}

func (f decimalFlag) Set(raw string) error {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return fmt.Errorf("invalid amount %q", raw)
	}
	*f.value = d
	return nil
}

func (f decimalFlag) Type() string {
	return "decimal"
}
