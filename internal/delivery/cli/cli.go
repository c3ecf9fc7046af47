package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/sirupsen/logrus"

	"go-hospital-records/internal/delivery/dto"
	"go-hospital-records/internal/domain/entity"
	"go-hospital-records/internal/session"
	"go-hospital-records/internal/usecase"
)

// Runner is the interactive collaborator. It owns all prompting and
// printing; the usecases behind it never touch the terminal.
type Runner struct {
	log          *logrus.Logger
	hospitalName string
	in           *bufio.Scanner
	out          io.Writer

	authUsecase       usecase.AuthUsecase
	userUsecase       usecase.UserUsecase
	doctorUsecase     usecase.DoctorUsecase
	patientUsecase    usecase.PatientUsecase
	stayUsecase       usecase.HospitalStayUsecase
	visitationUsecase usecase.VisitationUsecase
}

func NewRunner(
	log *logrus.Logger,
	hospitalName string,
	in io.Reader,
	out io.Writer,
	authUsecase usecase.AuthUsecase,
	userUsecase usecase.UserUsecase,
	doctorUsecase usecase.DoctorUsecase,
	patientUsecase usecase.PatientUsecase,
	stayUsecase usecase.HospitalStayUsecase,
	visitationUsecase usecase.VisitationUsecase,
) *Runner {
	return &Runner{
		log:               log,
		hospitalName:      hospitalName,
		in:                bufio.NewScanner(in),
		out:               out,
		authUsecase:       authUsecase,
		userUsecase:       userUsecase,
		doctorUsecase:     doctorUsecase,
		patientUsecase:    patientUsecase,
		stayUsecase:       stayUsecase,
		visitationUsecase: visitationUsecase,
	}
}

// Run drives the top-level menu until the user exits or input ends.
func (r *Runner) Run(ctx context.Context) {
	fmt.Fprintf(r.out, "Welcome to %s.\n", r.hospitalName)

	for {
		fmt.Fprintln(r.out, "\n1) Register\n2) Login\n0) Exit")
		choice, ok := r.prompt("choice:> ")
		if !ok || choice == "0" {
			return
		}

		switch choice {
		case "1":
			r.register(ctx)
		case "2":
			r.login(ctx)
		default:
			fmt.Fprintln(r.out, "Unknown choice.")
		}
	}
}

func (r *Runner) register(ctx context.Context) {
	req := &dto.RegisterRequest{}
	var ok bool
	if req.Username, ok = r.prompt("username:> "); !ok {
		return
	}
	if req.Password, ok = r.prompt("password:> "); !ok {
		return
	}
	if req.Age, ok = r.promptInt("age:> "); !ok {
		return
	}

	if entity.IsDoctorUsername(req.Username) {
		fmt.Fprintf(r.out, "Academic titles: %s\n", strings.Join(entity.AcademicTitles, ", "))
		if req.AcademicTitle, ok = r.prompt("academic title:> "); !ok {
			return
		}
	} else {
		fmt.Fprintln(r.out, "Choose which doctor...")
		r.showDoctors(ctx)
		doctorID, ok := r.promptInt("Doctor ID:> ")
		if !ok {
			return
		}
		req.DoctorID = uint(doctorID)
	}

	sess, err := r.authUsecase.Register(ctx, req)
	if err != nil {
		fmt.Fprintln(r.out, err)
		return
	}
	r.runSession(ctx, sess)
}

func (r *Runner) login(ctx context.Context) {
	req := &dto.LoginRequest{}
	var ok bool
	if req.Username, ok = r.prompt("username:> "); !ok {
		return
	}
	if req.Password, ok = r.prompt("password:> "); !ok {
		return
	}

	sess, err := r.authUsecase.Login(ctx, req)
	if err != nil {
		fmt.Fprintln(r.out, err)
		return
	}
	r.runSession(ctx, sess)
}

// runSession dispatches to the menu of the account's role and logs the user
// out when the menu returns.
func (r *Runner) runSession(ctx context.Context, sess *session.Session) {
	r.log.Infof("Session %s opened for user %d", sess.ID, sess.Account.UserID())
	fmt.Fprintf(r.out, "Hello, %s!\n", sess.Account.Username())

	switch sess.Account.Role() {
	case entity.RoleDoctor:
		r.doctorMenu(ctx, sess.Account.(*session.DoctorAccount))
	case entity.RolePatient:
		r.patientMenu(ctx, sess.Account.(*session.PatientAccount))
	default:
		fmt.Fprintln(r.out, "This account has no interface yet.")
	}

	if err := r.authUsecase.Logout(ctx, sess.Account.UserID()); err != nil {
		fmt.Fprintln(r.out, err)
	}
	r.log.Infof("Session %s closed", sess.ID)
}

func (r *Runner) showDoctors(ctx context.Context) {
	table, err := r.doctorUsecase.ListAll(ctx)
	if err != nil {
		fmt.Fprintln(r.out, err)
		return
	}
	r.renderTable(table)
}

func (r *Runner) renderTable(table *dto.ReportTable) {
	w := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(table.Columns, "\t"))
	for _, row := range table.Rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()
}

func (r *Runner) prompt(label string) (string, bool) {
	fmt.Fprint(r.out, label)
	if !r.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(r.in.Text()), true
}

func (r *Runner) promptInt(label string) (int, bool) {
	for {
		text, ok := r.prompt(label)
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(text)
		if err != nil {
			fmt.Fprintln(r.out, "Please enter a number.")
			continue
		}
		return n, true
	}
}
