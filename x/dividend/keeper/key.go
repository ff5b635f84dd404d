package keeper

var (
	AssetKey = []byte{0x01} // prefix for dividend asset definitions, by denom
)

// GetAssetKey returns the store key for one asset's definition.
func GetAssetKey(denom string) []byte {
	return append(AssetKey, []byte(denom)...)
}
