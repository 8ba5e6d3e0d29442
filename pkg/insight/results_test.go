package insight

import (
	"errors"
	"strconv"
	"testing"

	"github.com/matryer/is"
)

func TestNewPageNeverHoldsNil(t *testing.T) {
	is := is.New(t)

	p := NewPage[int](nil, 0)
	is.True(p.Items != nil)
}

func TestTotalPages(t *testing.T) {
	is := is.New(t)

	is.Equal(NewPage([]int{}, 51).TotalPages(25), int64(3))
	is.Equal(NewPage([]int{}, 50).TotalPages(25), int64(2))
	is.Equal(NewPage([]int{}, -1).TotalPages(25), int64(0))
	is.Equal(NewPage([]int{}, 10).TotalPages(0), int64(0))
}

func TestMapKeepsTotalCount(t *testing.T) {
	is := is.New(t)

	p, err := Map(NewPage([]int{1, 2}, 40), func(i int) (string, error) {
		return strconv.Itoa(i), nil
	})

	is.NoErr(err)
	is.Equal(p.Items, []string{"1", "2"})
	is.Equal(p.TotalCount, int64(40))

	_, err = Map(NewPage([]int{1}, 1), func(i int) (string, error) {
		return "", errors.New("nope")
	})
	is.True(err != nil)
}
