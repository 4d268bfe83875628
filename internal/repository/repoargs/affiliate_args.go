package repoargs

import "github.com/fsdevblog/lodes-affiliate/internal/domain"

type AffiliateCreate struct {
	Name        string
	Email       string
	Password    string
	Phone       string
	Code        string
	PaymentInfo domain.PaymentInfo
}
