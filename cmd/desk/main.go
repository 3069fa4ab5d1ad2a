// Command desk is the clerical surface for the payroll record store: it
// lists and filters records, drives the editing form, deletes records, and
// downloads payslips.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"payrolldesk/internal/browser"
	"payrolldesk/internal/client"
	"payrolldesk/internal/domain/payroll"
	"payrolldesk/internal/editor"
	"payrolldesk/internal/platform/config"
)

const usage = `usage: desk <command> [flags]

commands:
  list     list payroll records, optionally filtered
  create   create a new payroll record
  edit     edit an existing payroll record
  delete   delete a payroll record
  payslip  download a record's payslip PDF
`

func main() {
	log.SetFlags(0)
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg := config.Load()
	store := client.New(cfg.StoreURL)
	ctx := context.Background()

	var err error
	switch os.Args[1] {
	case "list":
		err = runList(ctx, store, os.Args[2:])
	case "create":
		err = runEdit(ctx, store, "", os.Args[2:])
	case "edit":
		id, rest, argErr := idArg(os.Args[2:])
		if argErr != nil {
			err = argErr
			break
		}
		err = runEdit(ctx, store, id, rest)
	case "delete":
		err = runDelete(ctx, store, os.Args[2:])
	case "payslip":
		err = runPayslip(ctx, store, cfg.PayslipDir, os.Args[2:])
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func idArg(args []string) (string, []string, error) {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return "", nil, fmt.Errorf("a record id is required")
	}
	return args[0], args[1:], nil
}

func parseFilter(fs *flag.FlagSet, args []string) (payroll.Filter, error) {
	month := fs.Int("month", 0, "filter by month (1-12)")
	year := fs.Int("year", 0, "filter by 4-digit year")
	active := fs.String("active", "", "filter by status (true or false)")
	if err := fs.Parse(args); err != nil {
		return payroll.Filter{}, err
	}

	filter := payroll.Filter{Month: *month, Year: *year}
	if *active != "" {
		b, err := strconv.ParseBool(*active)
		if err != nil {
			return payroll.Filter{}, fmt.Errorf("invalid -active value %q", *active)
		}
		filter.Active = &b
	}
	return filter, nil
}

func runList(ctx context.Context, store *client.Client, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	filter, err := parseFilter(fs, args)
	if err != nil {
		return err
	}

	b := browser.New(store, nil)
	if err := b.SetFilter(ctx, filter); err != nil {
		return fmt.Errorf("%s", b.Err())
	}

	records := b.Records()
	if len(records) == 0 {
		fmt.Println(b.EmptyMessage())
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tEMP CODE\tNAME\tDEPARTMENT\tDESIGNATION\tSALARY\tSTATUS")
	for _, rec := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			rec.ID, rec.EmpCode, rec.EmpName, rec.Department, rec.Designation,
			totalLabel(rec), statusLabel(rec))
	}
	return tw.Flush()
}

// kvFlag collects repeated -set name=value assignments.
type kvFlag struct {
	names  []string
	values []string
}

func (f *kvFlag) String() string { return strings.Join(f.names, ",") }

func (f *kvFlag) Set(raw string) error {
	name, value, ok := strings.Cut(raw, "=")
	if !ok {
		return fmt.Errorf("expected name=value, got %q", raw)
	}
	if _, found := payroll.FieldByName(name); !found {
		return fmt.Errorf("unknown field %q", name)
	}
	f.names = append(f.names, name)
	f.values = append(f.values, value)
	return nil
}

func runEdit(ctx context.Context, store *client.Client, id string, args []string) error {
	fs := flag.NewFlagSet("edit", flag.ExitOnError)
	var sets kvFlag
	fs.Var(&sets, "set", "field assignment name=value (repeatable)")
	compute := fs.Bool("compute", false, "compute the total salary before saving")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ed := editor.New(store, nil, nil)
	if id != "" {
		b := browser.New(store, nil)
		rec, err := b.Edit(ctx, id)
		if err != nil {
			return fmt.Errorf("%s", b.Err())
		}
		ed.Load(rec)
	}

	for i, name := range sets.names {
		if err := ed.SetField(name, sets.values[i]); err != nil {
			return err
		}
	}
	if *compute {
		fmt.Printf("Calculated Total Salary: %.2f\n", ed.Compute())
	}

	if err := ed.Submit(ctx); err != nil {
		return fmt.Errorf("%s", ed.Err())
	}
	if id == "" {
		fmt.Println("Record saved.")
	} else {
		fmt.Println("Record updated.")
	}
	return nil
}

func runDelete(ctx context.Context, store *client.Client, args []string) error {
	id, rest, err := idArg(args)
	if err != nil {
		return err
	}
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	yes := fs.Bool("y", false, "delete without asking")
	if err := fs.Parse(rest); err != nil {
		return err
	}

	confirm := browser.ConfirmFunc(func(prompt string) bool {
		if *yes {
			return true
		}
		fmt.Printf("%s [y/N] ", prompt)
		line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		answer := strings.ToLower(strings.TrimSpace(line))
		return answer == "y" || answer == "yes"
	})

	b := browser.New(store, confirm)
	if err := b.Delete(ctx, id); err != nil {
		return fmt.Errorf("%s", b.Err())
	}
	return nil
}

func runPayslip(ctx context.Context, store *client.Client, dir string, args []string) error {
	id, rest, err := idArg(args)
	if err != nil {
		return err
	}
	fs := flag.NewFlagSet("payslip", flag.ExitOnError)
	outDir := fs.String("dir", dir, "directory to save the payslip into")
	if err := fs.Parse(rest); err != nil {
		return err
	}

	b := browser.New(store, nil)
	rec, err := b.Edit(ctx, id)
	if err != nil {
		return fmt.Errorf("%s", b.Err())
	}

	path, err := b.SavePayslip(*rec, *outDir)
	if err != nil {
		return err
	}
	fmt.Printf("Saved %s\n", path)
	return nil
}

func totalLabel(rec payroll.Record) string {
	if rec.TotalSalary == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", *rec.TotalSalary)
}

func statusLabel(rec payroll.Record) string {
	if rec.IsActive {
		return "Active"
	}
	return "Inactive"
}
