package pgrepo

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/lodes-affiliate/internal/domain"
	"github.com/fsdevblog/lodes-affiliate/internal/repository/repoargs"
	"github.com/fsdevblog/lodes-affiliate/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const affiliateColumns = `id, created_at, updated_at, name, email, password, phone, code, active,
	balance, total_earnings, total_sales, bank_name, account_number, account_holder, ewallet_type`

type AffiliateRepository struct {
	conn uow.DBTX
}

func NewAffiliateRepository(conn uow.DBTX) *AffiliateRepository {
	return &AffiliateRepository{conn: conn}
}

func (r *AffiliateRepository) Create(
	ctx context.Context,
	args repoargs.AffiliateCreate,
) (*domain.Affiliate, error) {
	row := r.conn.QueryRow(ctx, `
		INSERT INTO affiliates (name, email, password, phone, code, bank_name, account_number, account_holder, ewallet_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+affiliateColumns,
		args.Name, args.Email, args.Password, args.Phone, args.Code,
		args.PaymentInfo.BankName, args.PaymentInfo.AccountNumber,
		args.PaymentInfo.AccountHolder, args.PaymentInfo.EwalletType,
	)
	aff, err := scanAffiliate(row)
	if err != nil {
		return nil, convertErr(err, "creating affiliate with email `%s`", args.Email)
	}
	return aff, nil
}

func (r *AffiliateRepository) FindByID(ctx context.Context, id int64) (*domain.Affiliate, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+affiliateColumns+` FROM affiliates WHERE id = $1`, id)
	aff, err := scanAffiliate(row)
	if err != nil {
		return nil, convertErr(err, "finding affiliate by id `%d`", id)
	}
	return aff, nil
}

// FindByIDForUpdate читает партнера с блокировкой строки. Используется внутри
// транзакций, где последующие изменения баланса должны быть сериализованы.
func (r *AffiliateRepository) FindByIDForUpdate(ctx context.Context, id int64) (*domain.Affiliate, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+affiliateColumns+` FROM affiliates WHERE id = $1 FOR UPDATE`, id)
	aff, err := scanAffiliate(row)
	if err != nil {
		return nil, convertErr(err, "finding affiliate for update by id `%d`", id)
	}
	return aff, nil
}

func (r *AffiliateRepository) FindByEmail(ctx context.Context, email string) (*domain.Affiliate, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+affiliateColumns+` FROM affiliates WHERE email = $1`, email)
	aff, err := scanAffiliate(row)
	if err != nil {
		return nil, convertErr(err, "finding affiliate by email `%s`", email)
	}
	return aff, nil
}

func (r *AffiliateRepository) FindByCode(ctx context.Context, code string) (*domain.Affiliate, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+affiliateColumns+` FROM affiliates WHERE code = $1`, code)
	aff, err := scanAffiliate(row)
	if err != nil {
		return nil, convertErr(err, "finding affiliate by code `%s`", code)
	}
	return aff, nil
}

// GetAll возвращает всех партнеров, отсортированных по дате создания по убыванию.
func (r *AffiliateRepository) GetAll(ctx context.Context) ([]domain.Affiliate, error) {
	rows, err := r.conn.Query(ctx, `SELECT `+affiliateColumns+` FROM affiliates ORDER BY created_at DESC`)
	if err != nil {
		return nil, convertErr(err, "getting all affiliates")
	}
	defer rows.Close()

	var affiliates []domain.Affiliate
	for rows.Next() {
		aff, scanErr := scanAffiliate(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning affiliate row")
		}
		affiliates = append(affiliates, *aff)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "iterating affiliate rows")
	}
	return affiliates, nil
}

func (r *AffiliateRepository) SetActive(ctx context.Context, id int64, active bool) (*domain.Affiliate, error) {
	row := r.conn.QueryRow(ctx, `
		UPDATE affiliates SET active = $2, updated_at = now()
		WHERE id = $1
		RETURNING `+affiliateColumns, id, active)
	aff, err := scanAffiliate(row)
	if err != nil {
		return nil, convertErr(err, "setting active=%t for affiliate `%d`", active, id)
	}
	return aff, nil
}

// RegisterSale фиксирует продажу в статистике партнера: инкрементирует счетчик
// продаж и накопленную комиссию. Баланс здесь не трогаем - комиссия становится
// доступной только после завершения продажи.
func (r *AffiliateRepository) RegisterSale(ctx context.Context, id int64, commission decimal.Decimal) error {
	tag, err := r.conn.Exec(ctx, `
		UPDATE affiliates
		SET total_sales = total_sales + 1, total_earnings = total_earnings + $2, updated_at = now()
		WHERE id = $1`, id, commission)
	if err != nil {
		return convertErr(err, "registering sale for affiliate `%d`", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "registering sale for affiliate `%d`", id)
	}
	return nil
}

// CreditBalance увеличивает доступный баланс партнера на amount.
func (r *AffiliateRepository) CreditBalance(ctx context.Context, id int64, amount decimal.Decimal) error {
	tag, err := r.conn.Exec(ctx, `
		UPDATE affiliates SET balance = balance + $2, updated_at = now()
		WHERE id = $1`, id, amount)
	if err != nil {
		return convertErr(err, "crediting balance of affiliate `%d`", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "crediting balance of affiliate `%d`", id)
	}
	return nil
}

// DebitBalance атомарно проверяет и списывает amount с баланса партнера.
// Проверка и списание выполняются одним UPDATE, поэтому два конкурентных
// списания не могут пройти по одному и тому же остатку. Возвращает
// domain.ErrNotEnoughBalance, если средств недостаточно.
func (r *AffiliateRepository) DebitBalance(ctx context.Context, id int64, amount decimal.Decimal) error {
	tag, err := r.conn.Exec(ctx, `
		UPDATE affiliates SET balance = balance - $2, updated_at = now()
		WHERE id = $1 AND balance >= $2`, id, amount)
	if err != nil {
		return convertErr(err, "debiting balance of affiliate `%d`", id)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotEnoughBalance
	}
	return nil
}

func scanAffiliate(row pgx.Row) (*domain.Affiliate, error) {
	var aff domain.Affiliate
	err := row.Scan(
		&aff.ID, &aff.CreatedAt, &aff.UpdatedAt, &aff.Name, &aff.Email, &aff.Password,
		&aff.Phone, &aff.Code, &aff.Active, &aff.Balance, &aff.TotalEarnings, &aff.TotalSales,
		&aff.PaymentInfo.BankName, &aff.PaymentInfo.AccountNumber,
		&aff.PaymentInfo.AccountHolder, &aff.PaymentInfo.EwalletType,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &aff, nil
}
