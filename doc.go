// This package provides a client for the Geoapify geocoding web
// service: https://apidocs.geoapify.com/docs/geocoding/.
//
// Two operations are supported. Geocode converts a free-text address
// into a GeoJSON-like feature collection with coordinates and
// structured location data. ReverseGeocode does the opposite: it takes
// a latitude/longitude pair and returns a feature collection
// describing that place.
//
// The client does not interpret the response beyond decoding it: a
// FeatureCollection is forwarded to you verbatim, so any field the
// service returns is available.
//
//	client, err := geoapify.NewClient(geoapify.Opts{APIKey: "..."})
//	if err != nil {
//	    panic(err)
//	}
//
//	result, err := client.Geocode(ctx, "10 Downing Street, London")
//
// Malformed caller input (a missing API key, a location string which
// is obviously not an address) is returned as one of the Err*
// sentinels. Failures of the service itself (bad HTTP status,
// unparseable body) are returned as *ServiceError together with an
// empty FeatureCollection, so both the error-inspection and the
// "is the result empty" calling styles work.
package geoapify
