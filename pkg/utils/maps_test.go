package utils

import "testing"

func TestMapsSearchURL(t *testing.T) {
	got := MapsSearchURL(41.9009, 12.4833)
	want := "https://www.google.com/maps/search/?api=1&query=41.9009%2C12.4833"
	if got != want {
		t.Fatalf("MapsSearchURL = %q, want %q", got, want)
	}
}

func TestMapsSearchURL_NegativeCoordinates(t *testing.T) {
	got := MapsSearchURL(-33.8688, 151.2093)
	want := "https://www.google.com/maps/search/?api=1&query=-33.8688%2C151.2093"
	if got != want {
		t.Fatalf("MapsSearchURL = %q, want %q", got, want)
	}
}
