package upload

import (
	"bytes"
	"context"

	log "github.com/sirupsen/logrus"

	"rulesconsole/internal/api"
	"rulesconsole/internal/draft"
)

// Coordinator resolves a draft's attached file into a fully-qualified image
// URL before the rule is created.
type Coordinator struct {
	client  *api.Client
	baseURL string

	// AbortOnFailure makes a failed upload abort the whole creation.
	// When false a failed upload is logged and the rule is created
	// without an image, matching the update path of the rules page.
	AbortOnFailure bool
}

// NewCoordinator creates an upload coordinator. baseURL is the public
// prefix under which uploaded files are served, including a trailing slash.
func NewCoordinator(client *api.Client, baseURL string) *Coordinator {
	return &Coordinator{client: client, baseURL: baseURL}
}

// Resolve uploads the file and returns its public URL. A nil file resolves
// to nil immediately without any network call; rules without an image fall
// back to a placeholder at render time.
func (c *Coordinator) Resolve(ctx context.Context, file *draft.File) (*string, error) {
	if file == nil {
		return nil, nil
	}

	fileName, err := c.client.UploadFile(ctx, file.Name, bytes.NewReader(file.Content))
	if err != nil {
		if c.AbortOnFailure {
			return nil, err
		}
		log.Warnf("UPLOAD: image upload failed, creating rule without image: %v", err)
		return nil, nil
	}

	imageURL := c.baseURL + fileName
	return &imageURL, nil
}
