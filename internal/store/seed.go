package store

import "github.com/clinicdesk/scheduling/internal/model"

// DemoAppointments is the fixture dataset used when the service runs in
// demo mode so the dashboard has something to render on first load.
func DemoAppointments() []model.Appointment {
	return []model.Appointment{
		{ID: "1", PatientName: "Rajesh Kumar", Date: "2025-12-28", Time: "09:00", Duration: 30, DoctorName: "Dr. Sarah Johnson", Status: model.StatusUpcoming, Mode: model.ModeInPerson, Type: "General Checkup"},
		{ID: "2", PatientName: "Priya Sharma", Date: "2025-12-28", Time: "09:30", Duration: 30, DoctorName: "Dr. Michael Chen", Status: model.StatusUpcoming, Mode: model.ModeVideo, Type: "Follow-up"},
		{ID: "3", PatientName: "Amit Patel", Date: "2025-12-28", Time: "10:00", Duration: 45, DoctorName: "Dr. Sarah Johnson", Status: model.StatusCompleted, Mode: model.ModeInPerson, Type: "Lab Results"},
		{ID: "4", PatientName: "Sneha Reddy", Date: "2025-12-28", Time: "10:30", Duration: 30, DoctorName: "Dr. David Lee", Status: model.StatusUpcoming, Mode: model.ModeVideo, Type: "Consultation"},
		{ID: "5", PatientName: "Vikram Singh", Date: "2025-12-28", Time: "11:00", Duration: 60, DoctorName: "Dr. Emily White", Status: model.StatusCancelled, Mode: model.ModeInPerson, Type: "Surgery Prep"},
		{ID: "6", PatientName: "John Doe", Date: "2025-12-29", Time: "09:00", Duration: 30, DoctorName: "Dr. Sarah Johnson", Status: model.StatusScheduled, Mode: model.ModeInPerson, Type: "General Checkup"},
		{ID: "7", PatientName: "Jane Smith", Date: "2025-12-27", Time: "14:00", Duration: 30, DoctorName: "Dr. Michael Chen", Status: model.StatusCompleted, Mode: model.ModePhone, Type: "Consultation"},
		{ID: "8", PatientName: "Robert Brown", Date: "2025-12-30", Time: "11:00", Duration: 45, DoctorName: "Dr. Sarah Johnson", Status: model.StatusScheduled, Mode: model.ModeInPerson, Type: "Physical Therapy"},
		{ID: "9", PatientName: "Emily Davis", Date: "2025-12-28", Time: "15:00", Duration: 30, DoctorName: "Dr. Sarah Johnson", Status: model.StatusConfirmed, Mode: model.ModeVideo, Type: "Follow-up"},
		{ID: "10", PatientName: "Michael Wilson", Date: "2025-12-28", Time: "16:00", Duration: 30, DoctorName: "Dr. David Lee", Status: model.StatusScheduled, Mode: model.ModeInPerson, Type: "Dental Checkup"},
		{ID: "11", PatientName: "Sarah Connor", Date: "2025-12-28", Time: "13:00", Duration: 15, DoctorName: "Dr. Emily White", Status: model.StatusScheduled, Mode: model.ModeInPerson, Type: "Urgent Care - Stitches"},
	}
}
