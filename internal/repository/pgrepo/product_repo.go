package pgrepo

import (
	"context"

	"github.com/fsdevblog/lodes-affiliate/internal/domain"
	"github.com/fsdevblog/lodes-affiliate/internal/repository/repoargs"
	"github.com/fsdevblog/lodes-affiliate/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const productColumns = `id, created_at, updated_at, name, description, price, commission_percent, active`

type ProductRepository struct {
	conn uow.DBTX
}

func NewProductRepository(conn uow.DBTX) *ProductRepository {
	return &ProductRepository{conn: conn}
}

func (r *ProductRepository) Create(ctx context.Context, args repoargs.ProductCreate) (*domain.Product, error) {
	row := r.conn.QueryRow(ctx, `
		INSERT INTO products (name, description, price, commission_percent, active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+productColumns,
		args.Name, args.Description, args.Price, args.CommissionPercent, args.Active,
	)
	product, err := scanProduct(row)
	if err != nil {
		return nil, convertErr(err, "creating product `%s`", args.Name)
	}
	return product, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	product, err := scanProduct(row)
	if err != nil {
		return nil, convertErr(err, "finding product by id `%d`", id)
	}
	return product, nil
}

// GetAll возвращает продукты. При onlyActive=true скрытые продукты отфильтровываются.
func (r *ProductRepository) GetAll(ctx context.Context, onlyActive bool) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`
	if onlyActive {
		query += ` WHERE active`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.conn.Query(ctx, query)
	if err != nil {
		return nil, convertErr(err, "getting products")
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		product, scanErr := scanProduct(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning product row")
		}
		products = append(products, *product)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "iterating product rows")
	}
	return products, nil
}

func (r *ProductRepository) Update(ctx context.Context, args repoargs.ProductUpdate) (*domain.Product, error) {
	row := r.conn.QueryRow(ctx, `
		UPDATE products
		SET name = $2, description = $3, price = $4, commission_percent = $5, active = $6, updated_at = now()
		WHERE id = $1
		RETURNING `+productColumns,
		args.ID, args.Name, args.Description, args.Price, args.CommissionPercent, args.Active,
	)
	product, err := scanProduct(row)
	if err != nil {
		return nil, convertErr(err, "updating product `%d`", args.ID)
	}
	return product, nil
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var product domain.Product
	err := row.Scan(
		&product.ID, &product.CreatedAt, &product.UpdatedAt, &product.Name,
		&product.Description, &product.Price, &product.CommissionPercent, &product.Active,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &product, nil
}
