package constants

type (
	APIStatus   string
	CachePrefix string
)

const (
	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"

	CachePrefixAnalyticsQuery CachePrefix = "GAQ_"
	CachePrefixGatewayStats   CachePrefix = "GWSTATS"
	CachePrefixUsedToken      CachePrefix = "USED_TOKEN_"
)

// OtherBucket labels the synthetic residual entry produced when small or
// truncated slices are collapsed during ranking and percent conversion.
const OtherBucket = "Other"
