// Package media stores uploaded listing images and hands back stable URLs.
package media

import (
	"context"
	"mime/multipart"

	"golang.org/x/sync/errgroup"
)

// Store uploads one file and returns the URL it will be served from.
type Store interface {
	Upload(ctx context.Context, file *multipart.FileHeader, folder string) (string, error)
}

// UploadAll pushes every file concurrently. All uploads must succeed; the
// first failure cancels the rest and nothing is returned, so the caller never
// persists a record with a partial image list.
func UploadAll(ctx context.Context, store Store, folder string, files []*multipart.FileHeader) ([]string, error) {
	urls := make([]string, len(files))

	g, ctx := errgroup.WithContext(ctx)
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			url, err := store.Upload(ctx, file, folder)
			if err != nil {
				return err
			}
			urls[i] = url
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return urls, nil
}
