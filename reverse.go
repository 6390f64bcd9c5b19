package geoapify

import (
	"context"
	"net/url"
	"strconv"
)

const opReverseGeocode = "reverse_geocode"

// ReverseGeocode resolves a latitude/longitude pair into a feature
// collection describing that place.
//
// Both coordinates are required: a zero latitude or longitude fails
// with ErrCoordinatesAreRequired before any request is made, same as
// values outside of the valid ranges fail with
// ErrCoordinatesAreOutOfRange. A failure of the service itself comes
// back as an empty FeatureCollection and a *ServiceError.
func (c *Client) ReverseGeocode(ctx context.Context, lat, lon float64) (FeatureCollection, error) {
	switch {
	case lat == 0 || lon == 0:
		return FeatureCollection{}, ErrCoordinatesAreRequired
	case lat < -90 || lat > 90 || lon < -180 || lon > 180:
		return FeatureCollection{}, ErrCoordinatesAreOutOfRange
	}

	getQuery := url.Values{}
	getQuery.Set("lat", formatCoordinate(lat))
	getQuery.Set("lon", formatCoordinate(lon))

	return c.doRequest(ctx, opReverseGeocode, "reverse", getQuery)
}

func formatCoordinate(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
