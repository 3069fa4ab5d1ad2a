// Package postgres implements the payroll record store on pgx.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"payrolldesk/internal/domain/payroll"
)

type Store struct {
	DB *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Store {
	return &Store{DB: pool}
}

const recordColumns = `
  id, emp_code, emp_name, department, designation, category,
  basic_salary, da, hra, conveyance, special_allowance, dp, arrears, overtime,
  lop, advance, personal_bill, other_deduction, medical_deduction, loan,
  total_salary, is_active, remarks, created_at`

func scanRecord(row pgx.Row) (payroll.Record, error) {
	var rec payroll.Record
	err := row.Scan(
		&rec.ID, &rec.EmpCode, &rec.EmpName, &rec.Department, &rec.Designation, &rec.Category,
		&rec.BasicSalary, &rec.DA, &rec.HRA, &rec.Conveyance, &rec.SpecialAllowance, &rec.DP, &rec.Arrears, &rec.Overtime,
		&rec.LOP, &rec.Advance, &rec.PersonalBill, &rec.OtherDeduction, &rec.MedicalDeduction, &rec.Loan,
		&rec.TotalSalary, &rec.IsActive, &rec.Remarks, &rec.CreatedAt,
	)
	return rec, err
}

// List filters month and year against the record's creation time; status
// against is_active. Omitted filter fields impose no constraint.
func (s *Store) List(ctx context.Context, filter payroll.Filter) ([]payroll.Record, error) {
	query := "SELECT" + recordColumns + " FROM payroll_records"
	var conds []string
	var args []any
	if filter.Month != 0 {
		args = append(args, filter.Month)
		conds = append(conds, fmt.Sprintf("EXTRACT(MONTH FROM created_at) = $%d", len(args)))
	}
	if filter.Year != 0 {
		args = append(args, filter.Year)
		conds = append(conds, fmt.Sprintf("EXTRACT(YEAR FROM created_at) = $%d", len(args)))
	}
	if filter.Active != nil {
		args = append(args, *filter.Active)
		conds = append(conds, fmt.Sprintf("is_active = $%d", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.DB.Query(ctx, query, args...)
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
	row := s.DB.QueryRow(ctx, "SELECT"+recordColumns+" FROM payroll_records WHERE id = $1", id)
	rec, err := scanRecord(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return payroll.Record{}, payroll.ErrNotFound
	}
	return rec, err
}

func (s *Store) Create(ctx context.Context, rec payroll.Record) (payroll.Record, error) {
	rec.ID = uuid.NewString()
	// timestamptz keeps microseconds; truncate so the returned record
	// matches what a later read yields.
	rec.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)
	_, err := s.DB.Exec(ctx, `
    INSERT INTO payroll_records (`+recordColumns+`)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24)
  `, rec.ID, rec.EmpCode, rec.EmpName, rec.Department, rec.Designation, rec.Category,
		rec.BasicSalary, rec.DA, rec.HRA, rec.Conveyance, rec.SpecialAllowance, rec.DP, rec.Arrears, rec.Overtime,
		rec.LOP, rec.Advance, rec.PersonalBill, rec.OtherDeduction, rec.MedicalDeduction, rec.Loan,
		rec.TotalSalary, bool(rec.IsActive), rec.Remarks, rec.CreatedAt)
	if err != nil {
		return payroll.Record{}, err
	}
	return rec, nil
}

func (s *Store) Update(ctx context.Context, id string, rec payroll.Record) (payroll.Record, error) {
	tag, err := s.DB.Exec(ctx, `
    UPDATE payroll_records SET
      emp_code = $2, emp_name = $3, department = $4, designation = $5, category = $6,
      basic_salary = $7, da = $8, hra = $9, conveyance = $10, special_allowance = $11,
      dp = $12, arrears = $13, overtime = $14, lop = $15, advance = $16,
      personal_bill = $17, other_deduction = $18, medical_deduction = $19, loan = $20,
      total_salary = $21, is_active = $22, remarks = $23
    WHERE id = $1
  `, id, rec.EmpCode, rec.EmpName, rec.Department, rec.Designation, rec.Category,
		rec.BasicSalary, rec.DA, rec.HRA, rec.Conveyance, rec.SpecialAllowance,
		rec.DP, rec.Arrears, rec.Overtime, rec.LOP, rec.Advance,
		rec.PersonalBill, rec.OtherDeduction, rec.MedicalDeduction, rec.Loan,
		rec.TotalSalary, bool(rec.IsActive), rec.Remarks)
	if err != nil {
		return payroll.Record{}, err
	}
	if tag.RowsAffected() == 0 {
		return payroll.Record{}, payroll.ErrNotFound
	}
	return s.Get(ctx, id)
}

func (s *Store) Delete(ctx context.Context, id string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM payroll_records WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrNotFound
	}
	return nil
}
