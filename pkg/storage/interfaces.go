package storage

import "io"

// BlobStorage is the contract the publish pipeline depends on. URL
// resolution is a separate step from upload so a caller can tell the two
// failure modes apart.
type BlobStorage interface {
	Upload(key string, reader io.Reader) error
	ResolveURL(key string) (string, error)
	Delete(key string) error
}
