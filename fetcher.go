package pbinfo

import "context"

// Fetcher retrieves raw page bodies from the site.
type Fetcher interface {
	// Fetch issues a GET request and returns the body of a 200 response.
	// A 404 response yields ENOTFOUND; any other status or a transport
	// failure yields ENETWORK.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (body string, err error)
}
