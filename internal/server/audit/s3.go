package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/gophvault/internal/logging"
	"github.com/google/uuid"
)

// S3Config locates the archive bucket. BaseEndpoint is set for
// S3-compatible stores such as MinIO.
type S3Config struct {
	Bucket       string
	Region       string
	AccessKey    string
	SecretKey    string
	BaseEndpoint string
}

// ObjectPutter is the subset of *s3.Client the archive uses.
type ObjectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) ObjectPutter {
		return s3.NewFromConfig(cfg, optFns...)
	}
)

// NewS3Client builds an S3 client with static credentials.
func NewS3Client(ctx context.Context, c S3Config) (ObjectPutter, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(c.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			c.AccessKey,
			c.SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	return newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if c.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(c.BaseEndpoint)
			o.UsePathStyle = true
		}
	}), nil
}

// DefaultMaxBuffered bounds the events an S3Sink holds while the bucket is
// unreachable.
const DefaultMaxBuffered = 10000

// S3Sink buffers events and archives them in batches as JSON-lines objects
// under audit/YYYY/MM/DD/<uuid>.jsonl. Past maxBuffered pending events the
// oldest are dropped.
type S3Sink struct {
	client      ObjectPutter
	bucket      string
	logger      logging.Logger
	now         func() time.Time
	maxBuffered int

	mu      sync.Mutex
	buf     []Event
	dropped int
}

func NewS3Sink(client ObjectPutter, bucket string, logger logging.Logger) *S3Sink {
	return &S3Sink{
		client:      client,
		bucket:      bucket,
		logger:      logger.With("module", "audit_s3"),
		now:         time.Now,
		maxBuffered: DefaultMaxBuffered,
	}
}

func (s *S3Sink) Record(_ context.Context, e Event) {
	s.mu.Lock()
	s.buf = append(s.buf, e)
	s.trimLocked()
	s.mu.Unlock()
}

// trimLocked drops the oldest events beyond maxBuffered. s.mu must be held.
func (s *S3Sink) trimLocked() {
	if s.maxBuffered <= 0 || len(s.buf) <= s.maxBuffered {
		return
	}
	n := len(s.buf) - s.maxBuffered
	s.buf = append([]Event(nil), s.buf[n:]...)
	s.dropped += n
}

// Flush uploads the buffered events as one object. On failure the events are
// put back so the next flush retries them, subject to the buffer bound.
func (s *S3Sink) Flush(ctx context.Context) error {
	s.mu.Lock()
	batch := s.buf
	s.buf = nil
	dropped := s.dropped
	s.dropped = 0
	s.mu.Unlock()

	if dropped > 0 {
		s.logger.Warn(ctx, "audit buffer full, oldest events dropped", "dropped", dropped)
	}

	if len(batch) == 0 {
		return nil
	}

	var body bytes.Buffer
	enc := json.NewEncoder(&body)
	for _, e := range batch {
		if err := enc.Encode(e); err != nil {
			return err
		}
	}

	key := s.objectKey()
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body.Bytes()),
		ContentType: aws.String("application/x-ndjson"),
	})
	if err != nil {
		s.mu.Lock()
		s.buf = append(batch, s.buf...)
		s.trimLocked()
		s.mu.Unlock()
		return fmt.Errorf("put audit batch: %w", err)
	}

	s.logger.Debug(ctx, "audit batch archived", "key", key, "events", len(batch))
	return nil
}

// Run flushes every interval until ctx is done, then flushes once more
// with a fresh deadline.
func (s *S3Sink) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := s.Flush(ctx); err != nil {
				s.logger.Error(ctx, "audit flush failed", "error", err.Error())
			}
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			if err := s.Flush(shutdownCtx); err != nil {
				s.logger.Error(shutdownCtx, "final audit flush failed", "error", err.Error())
			}
			cancel()
			return
		}
	}
}

func (s *S3Sink) objectKey() string {
	d := s.now().UTC()
	return fmt.Sprintf("audit/%04d/%02d/%02d/%v.jsonl", d.Year(), d.Month(), d.Day(), uuid.New())
}
