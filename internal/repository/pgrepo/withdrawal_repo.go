package pgrepo

import (
	"context"

	"github.com/fsdevblog/lodes-affiliate/internal/domain"
	"github.com/fsdevblog/lodes-affiliate/internal/repository/repoargs"
	"github.com/fsdevblog/lodes-affiliate/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const withdrawalColumns = `id, created_at, updated_at, affiliate_id, amount,
	bank_name, account_number, account_holder, ewallet_type, admin_note, status, processed_at`

type WithdrawalRepository struct {
	conn uow.DBTX
}

func NewWithdrawalRepository(conn uow.DBTX) *WithdrawalRepository {
	return &WithdrawalRepository{conn: conn}
}

func (r *WithdrawalRepository) Create(
	ctx context.Context,
	args repoargs.WithdrawalCreate,
) (*domain.Withdrawal, error) {
	row := r.conn.QueryRow(ctx, `
		INSERT INTO withdrawals (affiliate_id, amount, bank_name, account_number, account_holder, ewallet_type)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+withdrawalColumns,
		args.AffiliateID, args.Amount, args.PaymentDetails.BankName, args.PaymentDetails.AccountNumber,
		args.PaymentDetails.AccountHolder, args.PaymentDetails.EwalletType,
	)
	w, err := scanWithdrawal(row)
	if err != nil {
		return nil, convertErr(err, "creating withdrawal for affiliate `%d`", args.AffiliateID)
	}
	return w, nil
}

func (r *WithdrawalRepository) FindByID(ctx context.Context, id int64) (*domain.Withdrawal, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+withdrawalColumns+` FROM withdrawals WHERE id = $1`, id)
	w, err := scanWithdrawal(row)
	if err != nil {
		return nil, convertErr(err, "finding withdrawal by id `%d`", id)
	}
	return w, nil
}

// FindByIDForUpdate читает заявку с блокировкой строки, чтобы конкурентные
// смены статуса (и связанный с ними возврат резерва) сериализовались.
func (r *WithdrawalRepository) FindByIDForUpdate(ctx context.Context, id int64) (*domain.Withdrawal, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+withdrawalColumns+` FROM withdrawals WHERE id = $1 FOR UPDATE`, id)
	w, err := scanWithdrawal(row)
	if err != nil {
		return nil, convertErr(err, "finding withdrawal for update by id `%d`", id)
	}
	return w, nil
}

func (r *WithdrawalRepository) GetAll(ctx context.Context) ([]domain.Withdrawal, error) {
	rows, err := r.conn.Query(ctx, `SELECT `+withdrawalColumns+` FROM withdrawals ORDER BY created_at DESC`)
	if err != nil {
		return nil, convertErr(err, "getting all withdrawals")
	}
	return collectWithdrawals(rows)
}

func (r *WithdrawalRepository) GetByAffiliateID(ctx context.Context, affiliateID int64) ([]domain.Withdrawal, error) {
	rows, err := r.conn.Query(ctx,
		`SELECT `+withdrawalColumns+` FROM withdrawals WHERE affiliate_id = $1 ORDER BY created_at DESC`,
		affiliateID)
	if err != nil {
		return nil, convertErr(err, "getting withdrawals by affiliateID `%d`", affiliateID)
	}
	return collectWithdrawals(rows)
}

func (r *WithdrawalRepository) UpdateStatus(
	ctx context.Context,
	args repoargs.WithdrawalStatusUpdate,
) (*domain.Withdrawal, error) {
	row := r.conn.QueryRow(ctx, `
		UPDATE withdrawals
		SET status = $2, admin_note = COALESCE(NULLIF($3, ''), admin_note),
			processed_at = COALESCE($4, processed_at), updated_at = now()
		WHERE id = $1
		RETURNING `+withdrawalColumns,
		args.ID, args.Status, args.AdminNote, args.ProcessedAt)
	w, err := scanWithdrawal(row)
	if err != nil {
		return nil, convertErr(err, "updating status of withdrawal `%d` to `%s`", args.ID, args.Status)
	}
	return w, nil
}

func collectWithdrawals(rows pgx.Rows) ([]domain.Withdrawal, error) {
	defer rows.Close()

	var withdrawals []domain.Withdrawal
	for rows.Next() {
		w, scanErr := scanWithdrawal(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning withdrawal row")
		}
		withdrawals = append(withdrawals, *w)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "iterating withdrawal rows")
	}
	return withdrawals, nil
}

func scanWithdrawal(row pgx.Row) (*domain.Withdrawal, error) {
	var w domain.Withdrawal
	err := row.Scan(
		&w.ID, &w.CreatedAt, &w.UpdatedAt, &w.AffiliateID, &w.Amount,
		&w.PaymentDetails.BankName, &w.PaymentDetails.AccountNumber,
		&w.PaymentDetails.AccountHolder, &w.PaymentDetails.EwalletType,
		&w.AdminNote, &w.Status, &w.ProcessedAt,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &w, nil
}
