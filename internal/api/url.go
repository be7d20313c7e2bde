package api

import "strings"

// JoinURL glues a configured service base URL and a collection path without
// doubling slashes.
func JoinURL(base, path string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}
