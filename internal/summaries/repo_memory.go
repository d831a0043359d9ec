package summaries

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore keeps posts and summaries in memory and is safe for concurrent use.
type MemoryStore struct {
	mu        sync.RWMutex
	posts     []Post
	summaries []Summary
}

// NewMemoryStore constructs a MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// SavePost stores post under a new UUID.
func (m *MemoryStore) SavePost(ctx context.Context, post Post) (Post, error) {
	if err := ctx.Err(); err != nil {
		return Post{}, err
	}
	post.ID = uuid.NewString()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.posts = append(m.posts, post)
	return post, nil
}

// SaveSummary stores summary under a new UUID.
func (m *MemoryStore) SaveSummary(ctx context.Context, summary Summary) (Summary, error) {
	if err := ctx.Err(); err != nil {
		return Summary{}, err
	}
	summary.ID = uuid.NewString()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.summaries = append(m.summaries, summary)
	return summary, nil
}

// Posts returns a copy of the stored posts.
func (m *MemoryStore) Posts() []Post {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]Post(nil), m.posts...)
}

// Summaries returns a copy of the stored summaries.
func (m *MemoryStore) Summaries() []Summary {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]Summary(nil), m.summaries...)
}

var (
	_ PostStore    = (*MemoryStore)(nil)
	_ SummaryStore = (*MemoryStore)(nil)
)
