package converter

import (
	"time"

	"go-hospital-records/internal/delivery/dto"
	"go-hospital-records/internal/domain/entity"
)

const dateLayout = "2006-01-02"

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func formatOptionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

func HospitalStayToResponse(stay *entity.HospitalStay) *dto.HospitalStayResponse {
	return &dto.HospitalStayResponse{
		StartDate: formatDate(stay.StartDate),
		EndDate:   formatOptionalDate(stay.EndDate),
		Room:      stay.Room,
		Injury:    stay.Injury,
	}
}

func HospitalStaysToReportTable(stays []entity.HospitalStay) *dto.ReportTable {
	table := &dto.ReportTable{Columns: []string{"Startdate", "Enddate", "Room", "Injury"}}
	for i := range stays {
		s := &stays[i]
		table.Rows = append(table.Rows, []string{
			formatDate(s.StartDate),
			formatOptionalDate(s.EndDate),
			s.Room,
			s.Injury,
		})
	}
	return table
}

func StayReportsToReportTable(reports []entity.PatientStayReport) *dto.ReportTable {
	table := &dto.ReportTable{Columns: []string{"Username", "Room", "Startdate", "Enddate"}}
	for i := range reports {
		r := &reports[i]
		table.Rows = append(table.Rows, []string{
			r.Username,
			r.Room,
			formatDate(r.StartDate),
			formatOptionalDate(r.EndDate),
		})
	}
	return table
}
