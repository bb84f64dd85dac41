package constants

// Redis key formats
const (
	// Matching service
	KeyProviderGeo      = "provider:geo"         // GeoHash set of all online provider locations
	KeyProviderLocation = "provider:location:%s" // Format: provider:location:{provider_id}
	KeyOnlineProviders  = "providers:online"     // Set of online provider IDs

	// Dispatch service
	KeyActiveRequest = "requester:active:%s" // Format: requester:active:{requester_id}
)

// Redis hash fields
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldTimestamp = "ts"
	FieldStatus    = "status"
	FieldName      = "name"
	FieldModel     = "model"
	FieldPhone     = "phone"
	FieldGeohash   = "geohash"
)
