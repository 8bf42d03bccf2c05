package ports

import (
	"context"

	"ahlan_office/internal/models"
)

// ArtifactMeta identifies a stored generated document.
type ArtifactMeta struct {
	Bucket      string
	Key         string
	Size        int64
	ContentType string
}

// ArtifactStore keeps generated contract/receipt blobs. The CRM API owns
// the business records; we only own the rendered files.
type ArtifactStore interface {
	Put(ctx context.Context, key string, blob []byte, contentType string) (ArtifactMeta, error)
	Get(ctx context.Context, key string) ([]byte, string, error)
}

// DraftStore archives generated contract drafts. Drafts are immutable:
// there is no update, a re-submission inserts a fresh draft.
type DraftStore interface {
	Insert(ctx context.Context, draft models.ContractDraft, artifact ArtifactMeta) error
	FindByReference(ctx context.Context, referenceID int64) (models.ContractDraft, ArtifactMeta, error)
}

// PageCache is a best-effort cache for remote listing pages. A miss or a
// cache failure is never fatal; callers fall through to the CRM API.
type PageCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte) error
}
