package geoapify

import (
	"context"
	"net/url"
	"regexp"
	"strings"
	"unicode"
)

const opGeocode = "geocode"

// Geoapify is likely to confuse a trailing "England" with the New
// England region of the United States, so it is rewritten before
// transmission.
var englandSuffixRegexp = regexp.MustCompile(`(?i),\s*England\s*$`)

// Geocode resolves a free-text address into a feature collection with
// coordinates and structured location data.
//
// A blank location fails with ErrLocationIsRequired. A location with
// no letters in it fails with ErrLocationIsNotAnAddress; both checks
// happen before any request is made. A failure of the service itself
// comes back as an empty FeatureCollection and a *ServiceError.
func (c *Client) Geocode(ctx context.Context, location string) (FeatureCollection, error) {
	location = strings.TrimSpace(location)

	switch {
	case location == "":
		return FeatureCollection{}, ErrLocationIsRequired
	case !containsLetter(location):
		return FeatureCollection{}, ErrLocationIsNotAnAddress
	}

	getQuery := url.Values{}
	getQuery.Set("text", disambiguate(location))

	return c.doRequest(ctx, opGeocode, "search", getQuery)
}

func disambiguate(location string) string {
	return englandSuffixRegexp.ReplaceAllString(location, ", United Kingdom")
}

func containsLetter(value string) bool {
	for _, char := range value {
		if unicode.IsLetter(char) {
			return true
		}
	}

	return false
}
