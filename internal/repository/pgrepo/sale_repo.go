package pgrepo

import (
	"context"

	"github.com/fsdevblog/lodes-affiliate/internal/domain"
	"github.com/fsdevblog/lodes-affiliate/internal/repository/repoargs"
	"github.com/fsdevblog/lodes-affiliate/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const saleColumns = `id, created_at, updated_at, order_code, affiliate_id, affiliate_code,
	product_id, product_name, customer_name, customer_phone, customer_address,
	quantity, price, amount, commission_percent, commission, status`

type SaleRepository struct {
	conn uow.DBTX
}

func NewSaleRepository(conn uow.DBTX) *SaleRepository {
	return &SaleRepository{conn: conn}
}

func (r *SaleRepository) Create(ctx context.Context, args repoargs.SaleCreate) (*domain.Sale, error) {
	row := r.conn.QueryRow(ctx, `
		INSERT INTO sales (order_code, affiliate_id, affiliate_code, product_id, product_name,
			customer_name, customer_phone, customer_address, quantity, price, amount,
			commission_percent, commission, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING `+saleColumns,
		args.OrderCode, args.AffiliateID, args.AffiliateCode, args.ProductID, args.ProductName,
		args.CustomerName, args.CustomerPhone, args.CustomerAddress, args.Quantity, args.Price,
		args.Amount, args.CommissionPercent, args.Commission, args.Status,
	)
	sale, err := scanSale(row)
	if err != nil {
		return nil, convertErr(err, "creating sale with order code `%s`", args.OrderCode)
	}
	return sale, nil
}

func (r *SaleRepository) FindByID(ctx context.Context, id int64) (*domain.Sale, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+saleColumns+` FROM sales WHERE id = $1`, id)
	sale, err := scanSale(row)
	if err != nil {
		return nil, convertErr(err, "finding sale by id `%d`", id)
	}
	return sale, nil
}

// FindByIDForUpdate читает продажу с блокировкой строки. Смена статуса и
// начисление на баланс партнера должны происходить в одной транзакции
// поверх этой блокировки.
func (r *SaleRepository) FindByIDForUpdate(ctx context.Context, id int64) (*domain.Sale, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+saleColumns+` FROM sales WHERE id = $1 FOR UPDATE`, id)
	sale, err := scanSale(row)
	if err != nil {
		return nil, convertErr(err, "finding sale for update by id `%d`", id)
	}
	return sale, nil
}

func (r *SaleRepository) GetAll(ctx context.Context) ([]domain.Sale, error) {
	rows, err := r.conn.Query(ctx, `SELECT `+saleColumns+` FROM sales ORDER BY created_at DESC`)
	if err != nil {
		return nil, convertErr(err, "getting all sales")
	}
	return collectSales(rows)
}

// GetByAffiliateID возвращает продажи партнера, отсортированные по дате создания по убыванию.
func (r *SaleRepository) GetByAffiliateID(ctx context.Context, affiliateID int64) ([]domain.Sale, error) {
	rows, err := r.conn.Query(ctx,
		`SELECT `+saleColumns+` FROM sales WHERE affiliate_id = $1 ORDER BY created_at DESC`, affiliateID)
	if err != nil {
		return nil, convertErr(err, "getting sales by affiliateID `%d`", affiliateID)
	}
	return collectSales(rows)
}

func (r *SaleRepository) UpdateStatus(
	ctx context.Context,
	id int64,
	status domain.SaleStatusType,
) (*domain.Sale, error) {
	row := r.conn.QueryRow(ctx, `
		UPDATE sales SET status = $2, updated_at = now()
		WHERE id = $1
		RETURNING `+saleColumns, id, status)
	sale, err := scanSale(row)
	if err != nil {
		return nil, convertErr(err, "updating status of sale `%d` to `%s`", id, status)
	}
	return sale, nil
}

func collectSales(rows pgx.Rows) ([]domain.Sale, error) {
	defer rows.Close()

	var sales []domain.Sale
	for rows.Next() {
		sale, scanErr := scanSale(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning sale row")
		}
		sales = append(sales, *sale)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "iterating sale rows")
	}
	return sales, nil
}

func scanSale(row pgx.Row) (*domain.Sale, error) {
	var sale domain.Sale
	err := row.Scan(
		&sale.ID, &sale.CreatedAt, &sale.UpdatedAt, &sale.OrderCode, &sale.AffiliateID,
		&sale.AffiliateCode, &sale.ProductID, &sale.ProductName, &sale.CustomerName,
		&sale.CustomerPhone, &sale.CustomerAddress, &sale.Quantity, &sale.Price,
		&sale.Amount, &sale.CommissionPercent, &sale.Commission, &sale.Status,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &sale, nil
}
