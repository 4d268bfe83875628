package service

import (
	"math/rand"
	"strings"
)

const (
	affiliateCodePrefix = "LODES-"
	affiliateCodeLength = 5
	// без 0/O/1/I, чтобы код без ошибок диктовался по телефону.
	affiliateCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// newAffiliateCode генерирует партнерский код вида LODES-XXXXX. Уникальность
// гарантируется не здесь, а уникальным индексом в БД (см. AffiliateService.Register).
func newAffiliateCode() string {
	var b strings.Builder
	b.WriteString(affiliateCodePrefix)
	for i := 0; i < affiliateCodeLength; i++ {
		b.WriteByte(affiliateCodeAlphabet[rand.Intn(len(affiliateCodeAlphabet))]) //nolint:gosec
	}
	return b.String()
}
