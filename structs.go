package geoapify

// FeatureCollection is a GeoJSON-like structure the Geoapify API
// responds with. It is forwarded to the caller verbatim, no schema is
// imposed on it beyond a successful decode.
type FeatureCollection map[string]interface{}

// OK returns true if the service returned anything at all. Failed
// requests always produce a collection for which OK is false.
func (f FeatureCollection) OK() bool {
	return len(f) > 0
}
