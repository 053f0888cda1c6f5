package reporters

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/aws/aws-sdk-go/service/s3/s3manager/s3manageriface"
	"github.com/pkg/errors"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/providers/provider"
	uuid "github.com/satori/go.uuid"
)

// GistPublisher publishes the report as a secret gist.
type GistPublisher struct{}

var _ ArtifactPublisher = GistPublisher{}

func (GistPublisher) Publish(ctx context.Context, p provider.Provider, r *Report) (string, error) {
	content, err := RenderArtifact(r)
	if err != nil {
		return "", err
	}

	g, err := p.CreateGist(ctx, fmt.Sprintf("Analysis of %s#%d", r.FullName(), r.PullRequestNumber), false,
		[]provider.GistFile{{
			Name:    fmt.Sprintf("analysis-%d.md", r.AnalysisID),
			Content: content,
		}})
	if err != nil {
		return "", errors.Wrap(err, "failed to create gist")
	}

	return g.HTMLURL, nil
}

// S3Publisher uploads the report to a bucket and returns the object url.
type S3Publisher struct {
	uploader s3manageriface.UploaderAPI
	bucket   string
}

var _ ArtifactPublisher = S3Publisher{}

func NewS3Publisher(uploader s3manageriface.UploaderAPI, bucket string) *S3Publisher {
	return &S3Publisher{
		uploader: uploader,
		bucket:   bucket,
	}
}

func (s S3Publisher) key(r *Report) string {
	return fmt.Sprintf("analyses/%s/%d/%d-%s.md",
		strings.ToLower(r.FullName()), r.PullRequestNumber, r.AnalysisID, uuid.NewV4().String())
}

func (s S3Publisher) Publish(ctx context.Context, _ provider.Provider, r *Report) (string, error) {
	content, err := RenderArtifact(r)
	if err != nil {
		return "", err
	}

	out, err := s.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.key(r)),
		Body:        strings.NewReader(content),
		ContentType: aws.String("text/markdown; charset=utf-8"),
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to upload report to bucket %s", s.bucket)
	}

	return out.Location, nil
}
