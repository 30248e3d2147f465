package id

import "github.com/teris-io/shortid"

// ShortId generates a short, URL-safe id. Used for share codes.
func ShortId() string {
	sid, err := shortid.Generate()
	if err != nil {
		return ""
	}
	return sid
}
