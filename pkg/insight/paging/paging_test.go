package paging

import (
	"context"
	"errors"
	"testing"

	"github.com/diwise/insight-client/pkg/insight"
	insighterrors "github.com/diwise/insight-client/pkg/insight/errors"
	"github.com/matryer/is"
)

func TestPaginateStopsOnShortPage(t *testing.T) {
	is := is.New(t)

	fetch, calls := pagesOf([]int{2, 2, 2, 1})

	result, err := Paginate(context.Background(), 2, fetch)

	is.NoErr(err)
	is.Equal(len(result), 7)
	is.Equal(*calls, []int{0, 2, 4, 6}) // offsets should advance by the returned count
	is.Equal(result[6], 6)
}

func TestPaginateExactMultipleNeedsOneMoreFetch(t *testing.T) {
	is := is.New(t)

	fetch, calls := pagesOf([]int{2, 2, 0})

	result, err := Paginate(context.Background(), 2, fetch)

	is.NoErr(err)
	is.Equal(len(result), 4)
	is.Equal(len(*calls), 3)
}

func TestPaginateEmptyResult(t *testing.T) {
	is := is.New(t)

	fetch, calls := pagesOf([]int{0})

	result, err := Paginate(context.Background(), 25, fetch)

	is.NoErr(err)
	is.True(result != nil)
	is.Equal(len(result), 0)
	is.Equal(len(*calls), 1)
}

func TestPaginateDiscardsResultsOnError(t *testing.T) {
	is := is.New(t)

	failure := insighterrors.NewTransportError(502, "bad gateway")
	calls := 0

	fetch := func(ctx context.Context, offset, limit int) (insight.Page[int], error) {
		calls++
		if calls == 2 {
			return insight.Page[int]{}, failure
		}
		return insight.NewPage([]int{1, 2}, -1), nil
	}

	result, err := Paginate(context.Background(), 2, fetch)

	is.True(result == nil)
	is.True(errors.Is(err, insighterrors.ErrTransport))
	is.Equal(calls, 2)
}

func TestPaginateRejectsInvalidPageSize(t *testing.T) {
	is := is.New(t)

	fetch, calls := pagesOf([]int{1})

	_, err := Paginate(context.Background(), 0, fetch)

	is.True(errors.Is(err, insighterrors.ErrInvalidArgument))
	is.Equal(len(*calls), 0)
}

func TestPaginateHonoursCancellation(t *testing.T) {
	is := is.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fetch, calls := pagesOf([]int{2, 1})

	_, err := Paginate(ctx, 2, fetch)

	is.True(errors.Is(err, context.Canceled))
	is.Equal(len(*calls), 0)
}

func TestTotalCount(t *testing.T) {
	is := is.New(t)

	var limits []int
	fetch := func(ctx context.Context, offset, limit int) (insight.Page[int], error) {
		limits = append(limits, limit)
		return insight.NewPage([]int{1}, 123), nil
	}

	count, err := TotalCount(context.Background(), fetch)

	is.NoErr(err)
	is.Equal(count, int64(123))
	is.Equal(limits, []int{1})
}

// pagesOf returns a fetch func serving pages of the given sizes, recording the requested offsets
func pagesOf(sizes []int) (FetchFunc[int], *[]int) {
	offsets := []int{}
	next := 0

	fetch := func(ctx context.Context, offset, limit int) (insight.Page[int], error) {
		offsets = append(offsets, offset)

		items := []int{}
		if len(offsets) <= len(sizes) {
			for range sizes[len(offsets)-1] {
				items = append(items, next)
				next++
			}
		}

		return insight.NewPage(items, -1), nil
	}

	return fetch, &offsets
}
