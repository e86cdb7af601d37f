package export

import (
	"context"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/WillSanton/WebSite/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

// unknownAuthor is shown for posts whose author row is missing.
const unknownAuthor = "Unknown"

// newAuthorLoader batches author lookups for one export run.
func newAuthorLoader(repo authorRepo) *dataloader.Loader[int64, string] {
	return dataloader.NewBatchedLoader(
		newAuthorsBatchFn(repo),
		dataloader.WithWait[int64, string](wait),
		dataloader.WithBatchCapacity[int64, string](maxBatch),
	)
}

func newAuthorsBatchFn(repo authorRepo) dataloader.BatchFunc[int64, string] {
	return func(ctx context.Context, keys []int64) []*dataloader.Result[string] {
		results := make([]*dataloader.Result[string], len(keys))

		users, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			for i := range results {
				results[i] = &dataloader.Result[string]{Error: err}
			}
			return results
		}

		names := make(map[int64]string, len(users))
		for _, u := range users {
			names[u.ID] = u.Username
		}

		for i, key := range keys {
			name, ok := names[key]
			if !ok {
				name = unknownAuthor
			}
			results[i] = &dataloader.Result[string]{Data: name}
		}
		return results
	}
}

// resolveAuthors returns author usernames keyed by user id.
func resolveAuthors(ctx context.Context, repo authorRepo, posts []domain.Post) (map[int64]string, error) {
	loader := newAuthorLoader(repo)

	thunks := make(map[int64]dataloader.Thunk[string], len(posts))
	for _, p := range posts {
		if _, ok := thunks[p.AuthorID]; !ok {
			thunks[p.AuthorID] = loader.Load(ctx, p.AuthorID)
		}
	}

	names := make(map[int64]string, len(thunks))
	for id, thunk := range thunks {
		name, err := thunk()
		if err != nil {
			return nil, err
		}
		names[id] = name
	}
	return names, nil
}
