package converter

import (
	"fmt"

	"go-hospital-records/internal/delivery/dto"
	"go-hospital-records/internal/domain/entity"
)

func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	return &dto.DoctorResponse{
		ID:            doctor.UserID,
		Username:      doctor.User.Username,
		AcademicTitle: doctor.AcademicTitle,
	}
}

func DoctorsToReportTable(doctors []entity.Doctor) *dto.ReportTable {
	table := &dto.ReportTable{Columns: []string{"Id", "Username", "Academic title"}}
	for i := range doctors {
		d := &doctors[i]
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", d.UserID),
			d.User.Username,
			d.AcademicTitle,
		})
	}
	return table
}
