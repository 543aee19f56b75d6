package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"masar/internal/attachments"
	"masar/internal/db"
	"masar/internal/domain/records"
	"masar/internal/domain/reports"
	"masar/internal/platform/config"
	"masar/internal/platform/logging"
)

const usage = `masar - employee personnel files

Usage:
  masar list
  masar search <query>
  masar add [field flags] [-attach file]... [-photo file]
  masar update -id <id> [field flags] [-attach file]... [-photo file]
  masar delete -id <id>
  masar attach -id <id> -file <path> [-is-photo]
  masar open -id <id> -name <filename>
  masar report [-basic]
  masar export [-out <path>]
  masar stats
`

type app struct {
	log      *logrus.Logger
	service  *records.Service
	manager  *attachments.Manager
	exporter *reports.Exporter
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	_ = godotenv.Load()
	cfg := config.Load()
	log := logging.New(cfg.LogLevel)
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	ctx := context.Background()
	conn, err := db.Open(ctx, cfg.DatabaseFile)
	if err != nil {
		log.WithError(err).Fatal("storage open failed")
	}
	defer conn.Close()

	if err := db.Migrate(ctx, conn); err != nil {
		log.WithError(err).Fatal("storage init failed")
	}

	store := records.NewStore(conn)
	masar := &app{
		log:      log,
		service:  records.NewService(store),
		manager:  attachments.NewManager(cfg.AttachmentsDir, store, log),
		exporter: &reports.Exporter{Title: cfg.ExportTitle, FontFile: cfg.FontFile},
	}

	if err := masar.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		var invalid *records.ValidationError
		if errors.As(err, &invalid) {
			fmt.Fprintln(os.Stderr, invalid.Message)
			os.Exit(1)
		}
		log.WithError(err).Fatal("command failed")
	}
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "list":
		return a.list(ctx)
	case "search":
		return a.search(ctx, strings.Join(args, " "))
	case "add":
		return a.add(ctx, args)
	case "update":
		return a.update(ctx, args)
	case "delete":
		return a.delete(ctx, args)
	case "attach":
		return a.attach(ctx, args)
	case "open":
		return a.openAttachment(ctx, args)
	case "report":
		return a.report(ctx, args)
	case "export":
		return a.export(ctx, args)
	case "stats":
		return a.stats(ctx)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func (a *app) list(ctx context.Context) error {
	employees, err := a.service.ListEmployees(ctx)
	if err != nil {
		return err
	}
	printEmployees(employees)
	return nil
}

func (a *app) search(ctx context.Context, query string) error {
	employees, err := a.service.SearchEmployees(ctx, query)
	if err != nil {
		return err
	}
	printEmployees(employees)
	return nil
}

func (a *app) add(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("add", flag.ExitOnError)
	emp := employeeFlags(flags)
	var files stringList
	flags.Var(&files, "attach", "file to attach (repeatable)")
	photo := flags.String("photo", "", "personal photo file")
	if err := flags.Parse(args); err != nil {
		return err
	}

	// New-record flow: files are copied before an id exists and the pending
	// rows are persisted together with the employee insert.
	var pending []records.Attachment
	for _, file := range files {
		att, err := a.manager.Save(ctx, nil, file, emp.FileNo, false)
		if err != nil {
			return err
		}
		pending = append(pending, att)
	}
	if *photo != "" {
		att, err := a.manager.Save(ctx, nil, *photo, emp.FileNo, true)
		if err != nil {
			return err
		}
		pending = append(pending, att)
	}

	id, err := a.service.AddEmployee(ctx, *emp, pending)
	if err != nil {
		return err
	}
	fmt.Printf("added employee %d\n", id)
	return nil
}

func (a *app) update(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("update", flag.ExitOnError)
	id := flags.Int64("id", 0, "employee id")
	emp := employeeFlags(flags)
	var files stringList
	flags.Var(&files, "attach", "file to attach (repeatable)")
	photo := flags.String("photo", "", "personal photo file")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *id == 0 {
		return records.ErrEmployeeNotFound
	}

	// Edits replace the attachment set wholesale: current rows plus any new
	// uploads are reinserted together.
	current, err := a.service.ListAttachments(ctx, *id)
	if err != nil {
		return err
	}
	for _, file := range files {
		att, err := a.manager.Save(ctx, nil, file, emp.FileNo, false)
		if err != nil {
			return err
		}
		current = append(current, att)
	}
	if *photo != "" {
		att, err := a.manager.Save(ctx, nil, *photo, emp.FileNo, true)
		if err != nil {
			return err
		}
		current = append(current, att)
	}

	if err := a.service.UpdateEmployee(ctx, *id, *emp, current); err != nil {
		return err
	}
	fmt.Printf("updated employee %d\n", *id)
	return nil
}

func (a *app) delete(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("delete", flag.ExitOnError)
	id := flags.Int64("id", 0, "employee id")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *id == 0 {
		return records.ErrEmployeeNotFound
	}
	if err := a.service.DeleteEmployee(ctx, *id); err != nil {
		return err
	}
	fmt.Printf("deleted employee %d\n", *id)
	return nil
}

func (a *app) attach(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("attach", flag.ExitOnError)
	id := flags.Int64("id", 0, "employee id")
	file := flags.String("file", "", "file to attach")
	isPhoto := flags.Bool("is-photo", false, "flag the file as the personal photo")
	if err := flags.Parse(args); err != nil {
		return err
	}
	emp, err := a.service.GetEmployee(ctx, *id)
	if err != nil {
		return err
	}
	att, err := a.manager.Save(ctx, &emp.ID, *file, emp.FileNo, *isPhoto)
	if err != nil {
		return err
	}
	fmt.Printf("attached %s (%s)\n", att.Filename, att.ContentType)
	return nil
}

func (a *app) openAttachment(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("open", flag.ExitOnError)
	id := flags.Int64("id", 0, "employee id")
	name := flags.String("name", "", "attachment filename")
	if err := flags.Parse(args); err != nil {
		return err
	}
	atts, err := a.service.ListAttachments(ctx, *id)
	if err != nil {
		return err
	}
	for _, att := range atts {
		if att.Filename == *name {
			return a.manager.Open(att.Path)
		}
	}
	return nil
}

func (a *app) report(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("report", flag.ExitOnError)
	basic := flags.Bool("basic", false, "short report with core columns only")
	if err := flags.Parse(args); err != nil {
		return err
	}
	employees, err := a.service.ListEmployees(ctx)
	if err != nil {
		return err
	}
	fields := records.Fields
	if *basic {
		fields = reports.BasicFields
	}
	for line := range reports.FormatTable(employees, fields) {
		fmt.Println(line)
	}
	return nil
}

func (a *app) export(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("export", flag.ExitOnError)
	out := flags.String("out", "", "output path for the PDF")
	if err := flags.Parse(args); err != nil {
		return err
	}
	path := *out
	if path == "" {
		path = reports.DefaultExportFilename(time.Now())
	}
	employees, err := a.service.ListEmployees(ctx)
	if err != nil {
		return err
	}
	if err := a.exporter.Export(path, employees, records.Fields); err != nil {
		return err
	}
	a.log.WithField("path", path).Info("report exported")
	return nil
}

func (a *app) stats(ctx context.Context) error {
	employees, err := a.service.CountEmployees(ctx)
	if err != nil {
		return err
	}
	departments, err := a.service.CountDepartments(ctx)
	if err != nil {
		return err
	}
	atts, err := a.service.CountAttachments(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("employees: %d\ndepartments: %d\nattachments: %d\n", employees, departments, atts)
	return nil
}

func printEmployees(employees []records.Employee) {
	for _, emp := range employees {
		fmt.Printf("%d\t%s\t%s\t%s\n", emp.ID, emp.Name, emp.Department, emp.FileNo)
	}
}

func employeeFlags(flags *flag.FlagSet) *records.Employee {
	var emp records.Employee
	flags.StringVar(&emp.Name, "name", "", "employee name")
	flags.StringVar(&emp.Grade, "grade", "", "grade")
	flags.StringVar(&emp.GradeDate, "grade-date", "", "grade date (YYYY-MM-DD)")
	flags.StringVar(&emp.HireDate, "hire-date", "", "hire date (YYYY-MM-DD)")
	flags.StringVar(&emp.FileNo, "file-no", "", "file number")
	flags.StringVar(&emp.Qualification, "qualification", "", "qualification")
	flags.StringVar(&emp.FunctionalGroup, "functional-group", "", "functional group")
	flags.StringVar(&emp.TypeGroup, "type-group", "", "type group")
	flags.StringVar(&emp.JobTitle, "job-title", "", "job title")
	flags.StringVar(&emp.Department, "department", "", "department")
	flags.StringVar(&emp.CurrentWork, "current-work", "", "current assignment")
	flags.StringVar(&emp.BirthDate, "birth-date", "", "birth date (YYYY-MM-DD)")
	flags.StringVar(&emp.InsuranceNo, "insurance-no", "", "insurance number")
	flags.StringVar(&emp.NationalID, "national-id", "", "national identifier (14 digits)")
	flags.StringVar(&emp.Address, "address", "", "address")
	flags.StringVar(&emp.Phone, "phone", "", "phone number")
	flags.StringVar(&emp.Notes, "notes", "", "notes")
	return &emp
}

type stringList []string

func (l *stringList) String() string {
	return strings.Join(*l, ",")
}

func (l *stringList) Set(value string) error {
	*l = append(*l, value)
	return nil
}
