package instrumented

import (
	"context"
	"time"

	"shorturl-service/internal/domain/shorturl"
	"shorturl-service/internal/lib/metrics"
	"shorturl-service/internal/storage"
)

// Repository decorates a repository with per-operation counters and
// latency histograms.
type Repository struct {
	next storage.Repository
}

func New(next storage.Repository) *Repository {
	return &Repository{next: next}
}

func (r *Repository) Save(ctx context.Context, record *shorturl.ShortURL) error {
	const op = "Save"
	start := time.Now()
	err := r.next.Save(ctx, record)
	r.recordMetrics(op, err, start)
	return err
}

func (r *Repository) GetByKey(ctx context.Context, key string) (*shorturl.ShortURL, error) {
	const op = "GetByKey"
	start := time.Now()
	record, err := r.next.GetByKey(ctx, key)
	r.recordMetrics(op, err, start)
	return record, err
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*shorturl.ShortURL, error) {
	const op = "GetByID"
	start := time.Now()
	record, err := r.next.GetByID(ctx, id)
	r.recordMetrics(op, err, start)
	return record, err
}

func (r *Repository) GetByOwner(ctx context.Context, ownerID string, skip, take int) ([]*shorturl.ShortURL, error) {
	const op = "GetByOwner"
	start := time.Now()
	records, err := r.next.GetByOwner(ctx, ownerID, skip, take)
	r.recordMetrics(op, err, start)
	return records, err
}

func (r *Repository) GetAll(ctx context.Context, skip, take int) ([]*shorturl.ShortURL, error) {
	const op = "GetAll"
	start := time.Now()
	records, err := r.next.GetAll(ctx, skip, take)
	r.recordMetrics(op, err, start)
	return records, err
}

func (r *Repository) Delete(ctx context.Context, record *shorturl.ShortURL) error {
	const op = "Delete"
	start := time.Now()
	err := r.next.Delete(ctx, record)
	r.recordMetrics(op, err, start)
	return err
}

func (r *Repository) DeleteBatch(ctx context.Context, records []*shorturl.ShortURL) error {
	const op = "DeleteBatch"
	start := time.Now()
	err := r.next.DeleteBatch(ctx, records)
	r.recordMetrics(op, err, start)
	return err
}

func (r *Repository) DeleteAllByOwner(ctx context.Context, ownerID string) error {
	const op = "DeleteAllByOwner"
	start := time.Now()
	err := r.next.DeleteAllByOwner(ctx, ownerID)
	r.recordMetrics(op, err, start)
	return err
}

func (r *Repository) DeleteAll(ctx context.Context) error {
	const op = "DeleteAll"
	start := time.Now()
	err := r.next.DeleteAll(ctx)
	r.recordMetrics(op, err, start)
	return err
}

func (r *Repository) ExistsOriginalURL(ctx context.Context, originalURL string) (bool, error) {
	const op = "ExistsOriginalURL"
	start := time.Now()
	exists, err := r.next.ExistsOriginalURL(ctx, originalURL)
	r.recordMetrics(op, err, start)
	return exists, err
}

func (r *Repository) ExistsKey(ctx context.Context, key string) (bool, error) {
	const op = "ExistsKey"
	start := time.Now()
	exists, err := r.next.ExistsKey(ctx, key)
	r.recordMetrics(op, err, start)
	return exists, err
}

func (r *Repository) recordMetrics(operation string, err error, start time.Time) {
	duration := time.Since(start).Seconds()
	status := "success"
	if err != nil {
		status = "error"
	}
	metrics.StorageOperationsTotal.WithLabelValues(operation, status).Inc()
	metrics.StorageOperationDuration.WithLabelValues(operation).Observe(duration)
}
