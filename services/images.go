package services

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/image/draw"

	"github.com/venoxy/portfolio-backend/config"
	"github.com/venoxy/portfolio-backend/errs"
)

// maxImageEdge is the practical ceiling for hosted images; anything larger
// is downscaled before upload, preserving aspect ratio.
const maxImageEdge = 1920

// Uploader pushes portfolio images to an S3 bucket and hands back the
// publicly-resolvable URL the CDN serves them under.
type Uploader struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

// NewUploader reads S3_BUCKET, AWS_REGION and optional MEDIA_BASE_URL from
// configuration. With no MEDIA_BASE_URL the standard virtual-hosted S3 URL
// is used.
func NewUploader(ctx context.Context, cfg map[string]string) (*Uploader, error) {
	bucket := config.GetString(cfg, "S3_BUCKET", "")
	if bucket == "" {
		return nil, fmt.Errorf("S3_BUCKET is required")
	}
	region := config.GetString(cfg, "AWS_REGION", "us-east-1")

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	baseURL := config.GetString(cfg, "MEDIA_BASE_URL", "")
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, region)
	}

	return &Uploader{
		client:  s3.NewFromConfig(awsCfg),
		bucket:  bucket,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}, nil
}

// Upload stores one image and returns its public URL. The payload is decoded,
// downscaled to the edge ceiling when oversized, and re-encoded in its
// original format (GIFs are re-encoded as PNG to avoid dropping frames
// silently; animated content should be uploaded pre-sized).
func (u *Uploader) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	payload, err := io.ReadAll(r)
	if err != nil {
		return "", errs.NewUploadError(filename, err)
	}

	img, format, err := image.Decode(bytes.NewReader(payload))
	if err != nil {
		return "", errs.NewMalformedPayloadError("image", err)
	}

	img = ScaleToFit(img, maxImageEdge)

	var buf bytes.Buffer
	var contentType, ext string
	switch format {
	case "jpeg":
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: 85})
		contentType, ext = "image/jpeg", ".jpg"
	default:
		err = png.Encode(&buf, img)
		contentType, ext = "image/png", ".png"
	}
	if err != nil {
		return "", errs.NewUploadError(filename, err)
	}

	key := "uploads/" + uuid.NewString() + ext
	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		log.Error().Err(err).Str("filename", filename).Str("key", key).Msg("image upload failed")
		return "", errs.NewUploadError(filename, err)
	}

	url := u.baseURL + "/" + key
	log.Info().Str("filename", filename).Str("url", url).Msg("image uploaded")
	return url, nil
}

// ScaleToFit downscales img so its longest edge is at most limit pixels,
// preserving aspect ratio. Images already within the limit are returned
// unchanged; nothing is ever upscaled.
func ScaleToFit(img image.Image, limit int) image.Image {
	bounds := img.Bounds()
	width, height := FitDimensions(bounds.Dx(), bounds.Dy(), limit)
	if width == bounds.Dx() && height == bounds.Dy() {
		return img
	}

	scaled := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), img, bounds, draw.Over, nil)
	return scaled
}

// FitDimensions computes the target size for a w×h image constrained to the
// given longest-edge limit.
func FitDimensions(w, h, limit int) (int, int) {
	longest := w
	if h > w {
		longest = h
	}
	if longest <= limit {
		return w, h
	}

	if w >= h {
		return limit, max(1, h*limit/w)
	}
	return max(1, w*limit/h), limit
}
