// Package sqlite implements the payroll record store on the pure-Go sqlite
// driver, for development setups and tests that have no postgres at hand.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // pure go sqlite driver

	"payrolldesk/internal/domain/payroll"
)

const schema = `
CREATE TABLE IF NOT EXISTS payroll_records (
  id TEXT PRIMARY KEY,
  emp_code TEXT NOT NULL,
  emp_name TEXT NOT NULL,
  department TEXT NOT NULL DEFAULT '',
  designation TEXT NOT NULL DEFAULT '',
  category TEXT NOT NULL DEFAULT '',
  basic_salary TEXT NOT NULL DEFAULT '',
  da TEXT NOT NULL DEFAULT '',
  hra TEXT NOT NULL DEFAULT '',
  conveyance TEXT NOT NULL DEFAULT '',
  special_allowance TEXT NOT NULL DEFAULT '',
  dp TEXT NOT NULL DEFAULT '',
  arrears TEXT NOT NULL DEFAULT '',
  overtime TEXT NOT NULL DEFAULT '',
  lop TEXT NOT NULL DEFAULT '',
  advance TEXT NOT NULL DEFAULT '',
  personal_bill TEXT NOT NULL DEFAULT '',
  other_deduction TEXT NOT NULL DEFAULT '',
  medical_deduction TEXT NOT NULL DEFAULT '',
  loan TEXT NOT NULL DEFAULT '',
  total_salary REAL,
  is_active INTEGER NOT NULL DEFAULT 0,
  remarks TEXT NOT NULL DEFAULT '',
  created_at TEXT NOT NULL
)`

type Store struct {
	db *sql.DB
}

// Open creates or opens the database at path and ensures the schema.
// ":memory:" gives a throwaway in-memory store.
func Open(path string) (*Store, error) {
	if path == "" {
		path = "payrolldesk.db"
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if strings.Contains(path, ":memory:") {
		// Each pooled connection would otherwise see its own empty database.
		db.SetMaxOpenConns(1)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create payroll_records table: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }

const recordColumns = `
  id, emp_code, emp_name, department, designation, category,
  basic_salary, da, hra, conveyance, special_allowance, dp, arrears, overtime,
  lop, advance, personal_bill, other_deduction, medical_deduction, loan,
  total_salary, is_active, remarks, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (payroll.Record, error) {
	var rec payroll.Record
	var active int
	var createdAt string
	err := row.Scan(
		&rec.ID, &rec.EmpCode, &rec.EmpName, &rec.Department, &rec.Designation, &rec.Category,
		&rec.BasicSalary, &rec.DA, &rec.HRA, &rec.Conveyance, &rec.SpecialAllowance, &rec.DP, &rec.Arrears, &rec.Overtime,
		&rec.LOP, &rec.Advance, &rec.PersonalBill, &rec.OtherDeduction, &rec.MedicalDeduction, &rec.Loan,
		&rec.TotalSalary, &active, &rec.Remarks, &createdAt,
	)
	if err != nil {
		return payroll.Record{}, err
	}
	rec.IsActive = payroll.Flag(active != 0)
	if ts, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
		rec.CreatedAt = ts
	}
	return rec, nil
}

func (s *Store) List(ctx context.Context, filter payroll.Filter) ([]payroll.Record, error) {
	query := "SELECT" + recordColumns + " FROM payroll_records"
	var conds []string
	var args []any
	if filter.Month != 0 {
		conds = append(conds, "CAST(strftime('%m', created_at) AS INTEGER) = ?")
		args = append(args, filter.Month)
	}
	if filter.Year != 0 {
		conds = append(conds, "CAST(strftime('%Y', created_at) AS INTEGER) = ?")
		args = append(args, filter.Year)
	}
	if filter.Active != nil {
		conds = append(conds, "is_active = ?")
		if *filter.Active {
			args = append(args, 1)
		} else {
			args = append(args, 0)
		}
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []payroll.Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (s *Store) Get(ctx context.Context, id string) (payroll.Record, error) {
	row := s.db.QueryRowContext(ctx, "SELECT"+recordColumns+" FROM payroll_records WHERE id = ?", id)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return payroll.Record{}, payroll.ErrNotFound
	}
	return rec, err
}

func (s *Store) Create(ctx context.Context, rec payroll.Record) (payroll.Record, error) {
	rec.ID = uuid.NewString()
	rec.CreatedAt = time.Now().UTC()
	_, err := s.db.ExecContext(ctx, `
    INSERT INTO payroll_records (`+recordColumns+`)
    VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)
  `, rec.ID, rec.EmpCode, rec.EmpName, rec.Department, rec.Designation, rec.Category,
		string(rec.BasicSalary), string(rec.DA), string(rec.HRA), string(rec.Conveyance), string(rec.SpecialAllowance),
		string(rec.DP), string(rec.Arrears), string(rec.Overtime), string(rec.LOP), string(rec.Advance),
		string(rec.PersonalBill), string(rec.OtherDeduction), string(rec.MedicalDeduction), string(rec.Loan),
		rec.TotalSalary, boolToInt(bool(rec.IsActive)), rec.Remarks, rec.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return payroll.Record{}, err
	}
	return rec, nil
}

func (s *Store) Update(ctx context.Context, id string, rec payroll.Record) (payroll.Record, error) {
	res, err := s.db.ExecContext(ctx, `
    UPDATE payroll_records SET
      emp_code = ?, emp_name = ?, department = ?, designation = ?, category = ?,
      basic_salary = ?, da = ?, hra = ?, conveyance = ?, special_allowance = ?,
      dp = ?, arrears = ?, overtime = ?, lop = ?, advance = ?,
      personal_bill = ?, other_deduction = ?, medical_deduction = ?, loan = ?,
      total_salary = ?, is_active = ?, remarks = ?
    WHERE id = ?
  `, rec.EmpCode, rec.EmpName, rec.Department, rec.Designation, rec.Category,
		string(rec.BasicSalary), string(rec.DA), string(rec.HRA), string(rec.Conveyance), string(rec.SpecialAllowance),
		string(rec.DP), string(rec.Arrears), string(rec.Overtime), string(rec.LOP), string(rec.Advance),
		string(rec.PersonalBill), string(rec.OtherDeduction), string(rec.MedicalDeduction), string(rec.Loan),
		rec.TotalSalary, boolToInt(bool(rec.IsActive)), rec.Remarks, id)
	if err != nil {
		return payroll.Record{}, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return payroll.Record{}, err
	}
	if affected == 0 {
		return payroll.Record{}, payroll.ErrNotFound
	}
	return s.Get(ctx, id)
}

func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM payroll_records WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return payroll.ErrNotFound
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
