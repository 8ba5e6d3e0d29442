package paging

import (
	"context"
	"fmt"

	"github.com/diwise/insight-client/pkg/insight"
	"github.com/diwise/insight-client/pkg/insight/errors"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

// FetchFunc fetches at most limit items starting at offset
type FetchFunc[T any] func(ctx context.Context, offset, limit int) (insight.Page[T], error)

// Paginate calls fetch until a page holds fewer than pageSize items and returns
// everything fetched. The offset advances by the number of items actually returned,
// so a full page always triggers one more fetch. Any error discards all items.
func Paginate[T any](ctx context.Context, pageSize int, fetch FetchFunc[T]) ([]T, error) {
	if pageSize <= 0 {
		return nil, errors.NewInvalidArgumentError(fmt.Sprintf("page size must be positive, got %d", pageSize))
	}

	logger := logging.GetFromContext(ctx)

	result := []T{}
	offset := 0

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		logger.Debug("fetching page", "offset", offset, "limit", pageSize)

		page, err := fetch(ctx, offset, pageSize)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch page at offset %d: %w", offset, err)
		}

		result = append(result, page.Items...)

		batchSize := len(page.Items)
		offset += batchSize

		if batchSize < pageSize {
			break
		}
	}

	return result, nil
}

// TotalCount performs a single one item fetch to read the total count of the result set.
// A source that does not report a count yields -1.
func TotalCount[T any](ctx context.Context, fetch FetchFunc[T]) (int64, error) {
	page, err := fetch(ctx, 0, 1)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch total count: %w", err)
	}

	return page.TotalCount, nil
}
