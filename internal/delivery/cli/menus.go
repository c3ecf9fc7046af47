package cli

import (
	"context"
	"fmt"

	"go-hospital-records/internal/delivery/dto"
	"go-hospital-records/internal/session"
)

func (r *Runner) doctorMenu(ctx context.Context, acc *session.DoctorAccount) {
	for {
		fmt.Fprintln(r.out, `
1) My patients
2) Add visitation slot
3) My free visitations
4) Purge my free visitations
5) Rooms and stay durations of my patients
6) Admit patient (hospital stay)
7) Change my username
8) Change my age
0) Logout`)
		choice, ok := r.prompt("choice:> ")
		if !ok || choice == "0" {
			return
		}

		switch choice {
		case "1":
			r.showResult(r.doctorUsecase.PatientsByDoctor(ctx, acc.ID))
		case "2":
			r.addVisitation(ctx, acc.ID)
		case "3":
			r.showResult(r.visitationUsecase.FreeByDoctor(ctx, acc.ID))
		case "4":
			deleted, err := r.visitationUsecase.PurgeFree(ctx, acc.ID)
			if err != nil {
				fmt.Fprintln(r.out, err)
				break
			}
			fmt.Fprintf(r.out, "Removed %d free visitation(s).\n", deleted)
		case "5":
			r.showResult(r.doctorUsecase.RoomsAndDurations(ctx, acc.ID))
		case "6":
			r.admitPatient(ctx)
		case "7":
			r.changeUsername(ctx, acc.ID)
		case "8":
			r.changeAge(ctx, acc.ID)
		default:
			fmt.Fprintln(r.out, "Unknown choice.")
		}
	}
}

func (r *Runner) patientMenu(ctx context.Context, acc *session.PatientAccount) {
	for {
		fmt.Fprintln(r.out, `
1) All doctors
2) My hospital stays
3) Free visitations of a doctor
4) Book a visitation
5) Change my doctor
6) Change my username
7) Change my age
0) Logout`)
		choice, ok := r.prompt("choice:> ")
		if !ok || choice == "0" {
			return
		}

		switch choice {
		case "1":
			r.showDoctors(ctx)
		case "2":
			r.showResult(r.stayUsecase.ListByPatient(ctx, acc.ID))
		case "3":
			doctorID, ok := r.promptInt("Doctor ID:> ")
			if !ok {
				return
			}
			r.showResult(r.visitationUsecase.FreeByDoctor(ctx, uint(doctorID)))
		case "4":
			r.bookVisitation(ctx, acc.ID)
		case "5":
			r.changeDoctor(ctx, acc)
		case "6":
			r.changeUsername(ctx, acc.ID)
		case "7":
			r.changeAge(ctx, acc.ID)
		default:
			fmt.Fprintln(r.out, "Unknown choice.")
		}
	}
}

func (r *Runner) showResult(table *dto.ReportTable, err error) {
	if err != nil {
		fmt.Fprintln(r.out, err)
		return
	}
	r.renderTable(table)
}

func (r *Runner) addVisitation(ctx context.Context, doctorID uint) {
	startHour, ok := r.prompt("start hour (HH:MM):> ")
	if !ok {
		return
	}
	id, err := r.visitationUsecase.Create(ctx, &dto.CreateVisitationRequest{
		DoctorID:  doctorID,
		StartHour: startHour,
	})
	if err != nil {
		fmt.Fprintln(r.out, err)
		return
	}
	fmt.Fprintf(r.out, "Created visitation %d.\n", id)
}

func (r *Runner) admitPatient(ctx context.Context) {
	patientID, ok := r.promptInt("Patient ID:> ")
	if !ok {
		return
	}
	startDate, ok := r.prompt("start date (YYYY-MM-DD):> ")
	if !ok {
		return
	}
	endDate, ok := r.prompt("end date (YYYY-MM-DD, empty if open):> ")
	if !ok {
		return
	}
	room, ok := r.prompt("room:> ")
	if !ok {
		return
	}
	injury, ok := r.prompt("injury:> ")
	if !ok {
		return
	}

	id, err := r.stayUsecase.Create(ctx, &dto.CreateHospitalStayRequest{
		StartDate: startDate,
		EndDate:   endDate,
		Room:      room,
		Injury:    injury,
		PatientID: uint(patientID),
	})
	if err != nil {
		fmt.Fprintln(r.out, err)
		return
	}
	fmt.Fprintf(r.out, "Created hospital stay %d.\n", id)
}

func (r *Runner) bookVisitation(ctx context.Context, patientID uint) {
	visitationID, ok := r.promptInt("Visitation ID:> ")
	if !ok {
		return
	}
	err := r.visitationUsecase.AssignPatient(ctx, &dto.AssignVisitationRequest{
		VisitationID: uint(visitationID),
		PatientID:    patientID,
	})
	if err != nil {
		fmt.Fprintln(r.out, err)
		return
	}
	fmt.Fprintln(r.out, "Visitation booked.")
}

func (r *Runner) changeDoctor(ctx context.Context, acc *session.PatientAccount) {
	r.showDoctors(ctx)
	doctorID, ok := r.promptInt("Doctor ID:> ")
	if !ok {
		return
	}
	err := r.patientUsecase.UpdateDoctor(ctx, &dto.UpdatePatientDoctorRequest{
		PatientID: acc.ID,
		DoctorID:  uint(doctorID),
	})
	if err != nil {
		fmt.Fprintln(r.out, err)
		return
	}
	acc.DoctorID = uint(doctorID)
	fmt.Fprintln(r.out, "Doctor changed.")
}

func (r *Runner) changeUsername(ctx context.Context, userID uint) {
	username, ok := r.prompt("new username:> ")
	if !ok {
		return
	}
	err := r.userUsecase.UpdateUsername(ctx, &dto.UpdateUsernameRequest{
		UserID:   userID,
		Username: username,
	})
	if err != nil {
		fmt.Fprintln(r.out, err)
		return
	}
	fmt.Fprintln(r.out, "Username changed.")
}

func (r *Runner) changeAge(ctx context.Context, userID uint) {
	age, ok := r.promptInt("new age:> ")
	if !ok {
		return
	}
	err := r.userUsecase.UpdateAge(ctx, &dto.UpdateAgeRequest{
		UserID: userID,
		Age:    age,
	})
	if err != nil {
		fmt.Fprintln(r.out, err)
		return
	}
	fmt.Fprintln(r.out, "Age changed.")
}
