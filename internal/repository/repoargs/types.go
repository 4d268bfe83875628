package repoargs

type RepositoryName string

const (
	UserRepoName       RepositoryName = "user"
	AffiliateRepoName  RepositoryName = "affiliate"
	ProductRepoName    RepositoryName = "product"
	SaleRepoName       RepositoryName = "sale"
	WithdrawalRepoName RepositoryName = "withdrawal"
)
