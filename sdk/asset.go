package sdk

type Asset string

const (
	// AssetRebate is the rebate token mint managed by this program.
	AssetRebate Asset = "rbt"
)

// String returns the raw ticker string for logging or host calls.
// Example payload: sdk.AssetRebate.String()
func (a Asset) String() string {
	return string(a)
}
