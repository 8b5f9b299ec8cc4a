package utils

import (
	"fmt"
	"net/url"
	"strconv"
)

// MapsSearchURL builds a Google Maps search link for a coordinate pair.
func MapsSearchURL(lat, lng float64) string {
	query := strconv.FormatFloat(lat, 'f', -1, 64) + "," + strconv.FormatFloat(lng, 'f', -1, 64)
	return fmt.Sprintf("https://www.google.com/maps/search/?api=1&query=%s", url.QueryEscape(query))
}
