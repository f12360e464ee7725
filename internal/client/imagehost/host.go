// Package imagehost implements the hosting phase of a profile-image update:
// raw image bytes go to an external store and a durable public URL comes back.
// Two hosts are supported: a Cloudinary-style unsigned form upload and a
// direct S3 upload.
package imagehost

import "context"

type Host interface {
	// Upload stores the image bytes and returns their public URL.
	Upload(ctx context.Context, filename string, data []byte) (string, error)
}
