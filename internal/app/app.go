package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive

	"github.com/fsdevblog/lodes-affiliate/internal/config"
	"github.com/fsdevblog/lodes-affiliate/internal/repository/pgrepo"
	"github.com/fsdevblog/lodes-affiliate/internal/repository/repoargs"
	"github.com/fsdevblog/lodes-affiliate/internal/service"
	"github.com/fsdevblog/lodes-affiliate/internal/transport/api"
	"github.com/fsdevblog/lodes-affiliate/internal/transport/sheets"
	"github.com/fsdevblog/lodes-affiliate/pkg/uow"
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.Infof("Starting app on %s", a.Config.RunAddress)
	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	minWithdrawal, minErr := a.Config.MinWithdrawalAmount()
	if minErr != nil {
		return fmt.Errorf("app run: %s", minErr.Error())
	}

	sink, sinkErr := a.initSink(notifyCtx)
	if sinkErr != nil {
		return fmt.Errorf("app run: %s", sinkErr.Error())
	}

	services, sErr := service.Factory(unitOfWork, service.FactoryArgs{
		JWTSecret:     []byte(a.Config.JWTSecret),
		MinWithdrawal: minWithdrawal,
		Sink:          sink,
		Logger:        a.Logger,
	})
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	router := api.New(api.RouterArgs{
		Logger:            a.Logger,
		UserService:       services.UserService,
		AffiliateService:  services.AffiliateService,
		ProductService:    services.ProductService,
		SaleService:       services.SaleService,
		WithdrawalService: services.WithdrawalService,
		JWTSecretKey:      []byte(a.Config.JWTSecret),
	})

	errChan := make(chan error, 1)

	go func() {
		if runErr := router.Run(a.Config.RunAddress); runErr != nil {
			errChan <- runErr
		}
	}()

	select {
	case <-notifyCtx.Done():
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

// initSink поднимает клиент Google Sheets. Если доступы не сконфигурированы,
// возвращает nil - бухгалтерская выгрузка отключена.
func (a *App) initSink(ctx context.Context) (service.SaleSink, error) {
	if a.Config.SheetID == "" || a.Config.GoogleCredentials == "" {
		a.Logger.Info("bookkeeping sink is not configured, skipping")
		return nil, nil //nolint:nilnil
	}
	client, err := sheets.New(ctx, []byte(a.Config.GoogleCredentials), a.Config.SheetID)
	if err != nil {
		return nil, fmt.Errorf("init sink: %s", err.Error())
	}
	return client, nil
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	factories := map[repoargs.RepositoryName]uow.RepositoryFactory{
		repoargs.UserRepoName:       func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewUserRepository(dbtx) },
		repoargs.AffiliateRepoName:  func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewAffiliateRepository(dbtx) },
		repoargs.ProductRepoName:    func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewProductRepository(dbtx) },
		repoargs.SaleRepoName:       func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewSaleRepository(dbtx) },
		repoargs.WithdrawalRepoName: func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewWithdrawalRepository(dbtx) },
	}

	for name, factory := range factories {
		if regErr := unitOfWork.Register(uow.RepositoryName(name), factory); regErr != nil {
			return nil, fmt.Errorf("init UOW: %s", regErr.Error())
		}
	}

	return unitOfWork, nil
}
