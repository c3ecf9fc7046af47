package converter

import (
	"fmt"

	"go-hospital-records/internal/delivery/dto"
	"go-hospital-records/internal/domain/entity"
)

func VisitationToResponse(visitation *entity.Visitation) *dto.VisitationResponse {
	return &dto.VisitationResponse{
		ID:        visitation.ID,
		StartHour: visitation.StartHour,
	}
}

func VisitationsToReportTable(visitations []entity.Visitation) *dto.ReportTable {
	table := &dto.ReportTable{Columns: []string{"Id", "Start hour"}}
	for i := range visitations {
		v := &visitations[i]
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", v.ID),
			v.StartHour,
		})
	}
	return table
}
