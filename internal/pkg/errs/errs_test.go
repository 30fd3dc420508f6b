//go:build unit

package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"salon-reserve/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errSlotTaken = errs.Classify("slot taken", errs.ErrConflict)

type detailErr struct{ code int }

func (e *detailErr) Error() string { return fmt.Sprintf("detail %d", e.code) }

func TestClassify(t *testing.T) {
	assert.ErrorIs(t, errSlotTaken, errs.ErrConflict)
	assert.True(t, errs.Is(errSlotTaken, errs.ErrConflict))
	assert.Equal(t, errs.ClassConflict, errs.ClassOf(errSlotTaken))
	assert.Equal(t, "slot taken", errSlotTaken.Error())
}

func TestTag(t *testing.T) {
	cause := &detailErr{code: 7}
	err := errs.Tag(errs.Wrap(cause, "book"), errSlotTaken)

	t.Run("matches the sentinel and its class", func(t *testing.T) {
		assert.ErrorIs(t, err, errSlotTaken)
		assert.ErrorIs(t, err, errs.ErrConflict)
		assert.True(t, errs.Is(err, errSlotTaken))
		assert.Equal(t, errs.ClassConflict, errs.ClassOf(err))
	})

	t.Run("keeps the cause reachable", func(t *testing.T) {
		var target *detailErr
		require.True(t, errors.As(err, &target))
		assert.Equal(t, 7, target.code)
		assert.Equal(t, "book: detail 7", err.Error())
	})

	t.Run("does not match unrelated sentinels", func(t *testing.T) {
		assert.NotErrorIs(t, err, errs.ErrNotFound)
		assert.False(t, errs.Is(err, errs.ErrNotFound))
	})

	t.Run("stack survives formatting", func(t *testing.T) {
		lines := errs.ExtractStackLines(err, 0)
		assert.Greater(t, len(lines), 1)
	})
}

func TestClassOf(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want errs.Class
	}{
		{name: "nil", err: nil, want: errs.ClassUnknown},
		{name: "plain", err: errors.New("boom"), want: errs.ClassUnknown},
		{name: "validation", err: errs.Mark(errors.New("bad"), errs.ErrValidation), want: errs.ClassValidation},
		{name: "not found", err: errs.Classify("gone", errs.ErrNotFound), want: errs.ClassNotFound},
		{name: "forbidden", err: errs.Classify("denied", errs.ErrForbidden), want: errs.ClassForbidden},
		{name: "transient", err: errs.Tag(errors.New("timeout"), errs.Classify("db", errs.ErrTransient)), want: errs.ClassTransient},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, errs.ClassOf(tc.err))
		})
	}
}

func TestMark_NilErrReturnsMark(t *testing.T) {
	assert.Equal(t, errs.ErrConflict, errs.Mark(nil, errs.ErrConflict))
}
