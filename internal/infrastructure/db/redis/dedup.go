package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const submissionTTL = 10 * time.Minute

// SubmissionDeduper suppresses double-submitted booking requests backed by
// Redis. Key format: booking:submit:<sha256 of client|photographer|date|event>
type SubmissionDeduper struct {
	client *redis.Client
}

// NewSubmissionDeduper creates a SubmissionDeduper wrapping the given Redis client.
func NewSubmissionDeduper(client *redis.Client) *SubmissionDeduper {
	return &SubmissionDeduper{client: client}
}

// Seen reports whether an identical booking request was submitted recently.
func (d *SubmissionDeduper) Seen(ctx context.Context, client, photographer, date, event string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(client, photographer, date, event)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records the submission (expires after submissionTTL).
func (d *SubmissionDeduper) Mark(ctx context.Context, client, photographer, date, event string) error {
	return d.client.Set(ctx, d.key(client, photographer, date, event), "1", submissionTTL).Err()
}

func (d *SubmissionDeduper) key(client, photographer, date, event string) string {
	sum := sha256.Sum256([]byte(client + "|" + photographer + "|" + date + "|" + event))
	return "booking:submit:" + hex.EncodeToString(sum[:16])
}
