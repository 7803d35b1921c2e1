package processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/orayew2002/fkemployee/domain"
	"github.com/orayew2002/fkemployee/employee"
	"github.com/rs/zerolog"
)

// Uploader pushes a local file to bucket/key.
type Uploader interface {
	Upload(ctx context.Context, bucket, localPath, key string) error
}

// Options controls a single run.
type Options struct {
	Count         int
	LocalPath     string
	Bucket        string
	ObjectKey     string
	UploadTimeout time.Duration
}

// Result summarizes a run.
type Result struct {
	Rows      int
	Files     []string
	Uploaded  bool
	UploadErr error
}

// Processor generates records, streams them to writers and uploads the
// primary file once every writer is closed.
type Processor struct {
	gen      *domain.Generator
	writers  []employee.Writer
	uploader Uploader
	log      zerolog.Logger
	opts     Options
}

// New creates a Processor. A nil uploader skips the upload step.
func New(gen *domain.Generator, writers []employee.Writer, uploader Uploader, log zerolog.Logger, opts Options) *Processor {
	return &Processor{gen: gen, writers: writers, uploader: uploader, log: log, opts: opts}
}

// Run writes opts.Count records and uploads opts.LocalPath. Local write
// failures are returned. Upload failures are logged and reported only
// through Result; Run still returns a nil error.
func (p *Processor) Run(ctx context.Context) (Result, error) {
	var res Result

	if err := p.writeAll(); err != nil {
		return res, err
	}

	res.Rows = p.opts.Count
	for _, w := range p.writers {
		res.Files = append(res.Files, w.Path())
	}
	p.log.Info().Int("rows", res.Rows).Strs("files", res.Files).Msg("employee data written")

	if p.uploader == nil {
		p.log.Info().Msg("upload skipped")
		return res, nil
	}

	if p.opts.UploadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.opts.UploadTimeout)
		defer cancel()
	}

	err := p.uploader.Upload(ctx, p.opts.Bucket, p.opts.LocalPath, p.opts.ObjectKey)
	if err != nil {
		p.log.Error().Err(err).
			Str("bucket", p.opts.Bucket).
			Str("file", p.opts.LocalPath).
			Str("key", p.opts.ObjectKey).
			Msg("error uploading file")
		res.UploadErr = err
		return res, nil
	}

	res.Uploaded = true
	p.log.Info().
		Str("bucket", p.opts.Bucket).
		Str("file", p.opts.LocalPath).
		Str("key", p.opts.ObjectKey).
		Msg("file uploaded")

	return res, nil
}

func (p *Processor) writeAll() (err error) {
	defer func() {
		for _, w := range p.writers {
			if cerr := w.Close(); cerr != nil {
				err = errors.Join(err, fmt.Errorf("%s: %w", w.Path(), cerr))
			}
		}
	}()

	for _, w := range p.writers {
		if err := w.WriteHeader(); err != nil {
			return fmt.Errorf("%s: %w", w.Path(), err)
		}
	}

	for i := range p.opts.Count {
		e := p.gen.Next()
		for _, w := range p.writers {
			if err := w.Write(e); err != nil {
				return fmt.Errorf("%s: employee %d: %w", w.Path(), i+1, err)
			}
		}
	}

	return nil
}
