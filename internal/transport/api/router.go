package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/lodes-affiliate/internal/domain"
	"github.com/fsdevblog/lodes-affiliate/internal/transport/api/middlewares"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RouteGroup = "/api"

	PublicOrderRoute    = "/public/order"
	PublicProductsRoute = "/public/products"

	AffiliateRegisterRoute = "/auth/affiliate/register"
	AffiliateLoginRoute    = "/auth/affiliate/login"
	AdminLoginRoute        = "/auth/admin/login"

	AffiliateSalesRoute       = "/affiliate/sales"
	AffiliateBalanceRoute     = "/affiliate/balance"
	AffiliateWithdrawalsRoute = "/affiliate/withdrawals"

	AdminSalesRoute           = "/admin/sales"
	AdminSaleRoute            = "/admin/sales/:id"
	AdminWithdrawalsRoute     = "/admin/withdrawals"
	AdminWithdrawalRoute      = "/admin/withdrawals/:id"
	AdminAffiliatesRoute      = "/admin/affiliates"
	AdminAffiliateActiveRoute = "/admin/affiliates/:id/active"
	AdminProductsRoute        = "/admin/products"
	AdminProductRoute         = "/admin/products/:id"
)

type RouterArgs struct {
	Logger            *logrus.Logger
	UserService       UserServicer
	AffiliateService  AffiliateServicer
	ProductService    ProductServicer
	SaleService       SaleServicer
	WithdrawalService WithdrawalServicer
	JWTSecretKey      []byte
}

func New(args RouterArgs) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	authHandler := NewAuthHandler(args.UserService, args.AffiliateService)
	publicHandler := NewPublicHandler(args.SaleService, args.ProductService)
	salesHandler := NewSalesHandler(args.SaleService, args.ProductService)
	withdrawalsHandler := NewWithdrawalsHandler(args.WithdrawalService)
	affiliatesHandler := NewAffiliatesHandler(args.AffiliateService)
	productsHandler := NewProductsHandler(args.ProductService)

	api := r.Group(RouteGroup)

	api.POST(PublicOrderRoute, publicHandler.CreateOrder)
	api.GET(PublicProductsRoute, publicHandler.Products)

	api.POST(AffiliateRegisterRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Register)
	api.POST(AffiliateLoginRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Login)
	api.POST(AdminLoginRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.AdminLogin)

	affiliate := api.Group("", middlewares.AuthRequired(args.JWTSecretKey, domain.RoleAffiliate))
	affiliate.GET(AffiliateSalesRoute, salesHandler.My)
	affiliate.GET(AffiliateBalanceRoute, affiliatesHandler.Balance)
	affiliate.GET(AffiliateWithdrawalsRoute, withdrawalsHandler.My)
	affiliate.POST(AffiliateWithdrawalsRoute, withdrawalsHandler.Create)

	admin := api.Group("", middlewares.AuthRequired(args.JWTSecretKey, domain.RoleAdmin))
	admin.GET(AdminSalesRoute, salesHandler.Index)
	admin.POST(AdminSalesRoute, salesHandler.Create)
	admin.PUT(AdminSaleRoute, salesHandler.UpdateStatus)
	admin.GET(AdminWithdrawalsRoute, withdrawalsHandler.Index)
	admin.PUT(AdminWithdrawalRoute, withdrawalsHandler.UpdateStatus)
	admin.GET(AdminAffiliatesRoute, affiliatesHandler.Index)
	admin.PUT(AdminAffiliateActiveRoute, affiliatesHandler.SetActive)
	admin.GET(AdminProductsRoute, productsHandler.Index)
	admin.POST(AdminProductsRoute, productsHandler.Create)
	admin.PUT(AdminProductRoute, productsHandler.Update)

	return r
}
