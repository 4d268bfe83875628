// Package sheets отправляет бухгалтерские записи о продажах в Google Sheets.
// Приемник best-effort: вызывающая сторона логирует ошибки и не откатывает
// продажу из-за недоступности таблицы.
package sheets

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/fsdevblog/lodes-affiliate/internal/domain"
)

// appendRange колонки листа: Date, Order ID, Affiliate Code, Customer Name,
// Product, Amount, Commission %, Commission, Status.
const appendRange = "Sales!A:I"

type Client struct {
	svc     *sheetsapi.Service
	sheetID string
}

func New(ctx context.Context, credentialsJSON []byte, sheetID string) (*Client, error) {
	svc, err := sheetsapi.NewService(ctx,
		option.WithCredentialsJSON(credentialsJSON),
		option.WithScopes(sheetsapi.SpreadsheetsScope),
	)
	if err != nil {
		return nil, errors.Wrap(err, "creating sheets service")
	}
	return &Client{
		svc:     svc,
		sheetID: sheetID,
	}, nil
}

// AppendSale добавляет строку о продаже в конец листа Sales.
func (c *Client) AppendSale(ctx context.Context, sale domain.Sale) error {
	row := []interface{}{
		sale.CreatedAt.Format(time.RFC3339),
		sale.OrderCode,
		sale.AffiliateCode,
		sale.CustomerName,
		sale.ProductName,
		"RM " + sale.Amount.StringFixed(2),
		sale.CommissionPercent.String() + "%",
		"RM " + sale.Commission.StringFixed(2),
		string(sale.Status),
	}

	_, err := c.svc.Spreadsheets.Values.
		Append(c.sheetID, appendRange, &sheetsapi.ValueRange{Values: [][]interface{}{row}}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	return errors.Wrapf(err, "appending sale `%s` to sheet", sale.OrderCode)
}
