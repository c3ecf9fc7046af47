package converter

import (
	"fmt"

	"go-hospital-records/internal/delivery/dto"
	"go-hospital-records/internal/domain/entity"
)

func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	return &dto.PatientResponse{
		ID:       patient.UserID,
		Username: patient.User.Username,
		Age:      patient.User.Age,
	}
}

func PatientsToReportTable(patients []entity.Patient) *dto.ReportTable {
	table := &dto.ReportTable{Columns: []string{"ID", "Username", "Age"}}
	for i := range patients {
		p := &patients[i]
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", p.UserID),
			p.User.Username,
			fmt.Sprintf("%d", p.User.Age),
		})
	}
	return table
}
