package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"fitcourse/internal/database"
	"fitcourse/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

// fakeCoachRow 實作 pgx.Row，模擬 coaches 資料列掃描
type fakeCoachRow struct {
	scanErr error
	coach   *model.Coach
}

func (r *fakeCoachRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	co := r.coach
	switch len(dest) {
	case 7:
		// GetCoachByID
		*dest[0].(*uuid.UUID) = co.ID
		*dest[1].(*uuid.UUID) = co.UserID
		*dest[2].(*int) = co.ExperienceYears
		*dest[3].(*string) = co.Description
		*dest[4].(**string) = co.ProfileImageURL
		*dest[5].(*time.Time) = co.CreatedAt
		*dest[6].(*time.Time) = co.UpdatedAt
	case 3:
		// insert RETURNING id, created_at, updated_at
		*dest[0].(*uuid.UUID) = co.ID
		*dest[1].(*time.Time) = co.CreatedAt
		*dest[2].(*time.Time) = co.UpdatedAt
	default:
		panic("fakeCoachRow.Scan: unexpected number of dest")
	}
	return nil
}

// fakeCoachRows 實作 pgx.Rows，模擬教練列表查詢
type fakeCoachRows struct {
	data []CoachListRow
	idx  int
	err  error
}

func (r *fakeCoachRows) Close()                                       {}
func (r *fakeCoachRows) Err() error                                   { return r.err }
func (r *fakeCoachRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeCoachRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeCoachRows) Next() bool                                   { return r.idx < len(r.data) }
func (r *fakeCoachRows) Scan(dest ...any) error {
	row := r.data[r.idx]
	r.idx++
	*dest[0].(*uuid.UUID) = row.ID
	*dest[1].(*string) = row.Name
	return nil
}
func (r *fakeCoachRows) Values() ([]any, error) { return nil, nil }
func (r *fakeCoachRows) RawValues() [][]byte    { return nil }
func (r *fakeCoachRows) Conn() *pgx.Conn        { return nil }

func TestPromoteUserToCoach(t *testing.T) {
	now := time.Now().UTC()
	sample := model.Coach{
		ID:              uuid.New(),
		UserID:          uuid.New(),
		ExperienceYears: 3,
		Description:     "資深教練",
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	t.Run("success commits both writes", func(t *testing.T) {
		committed := false
		tx := &database.FakeTx{
			ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
				require.Equal(t, model.RoleCoach, args[0])
				require.Equal(t, sample.UserID, args[1])
				require.Equal(t, model.RoleUser, args[2])
				return pgconn.NewCommandTag("UPDATE 1"), nil
			},
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeCoachRow{coach: &sample}
			},
			CommitFn: func(context.Context) error { committed = true; return nil },
		}
		p := &database.FakeDB{BeginFn: func(context.Context) (pgx.Tx, error) { return tx, nil }}

		got, err := PromoteUserToCoach(context.Background(), p, &model.Coach{
			UserID:          sample.UserID,
			ExperienceYears: 3,
			Description:     "資深教練",
		})
		require.NoError(t, err)
		require.True(t, committed)
		require.Equal(t, sample.ID, got.ID)
	})

	t.Run("zero rows on role update aborts", func(t *testing.T) {
		rolledBack := false
		tx := &database.FakeTx{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("UPDATE 0"), nil
			},
			RollbackFn: func(context.Context) error { rolledBack = true; return nil },
		}
		p := &database.FakeDB{BeginFn: func(context.Context) (pgx.Tx, error) { return tx, nil }}

		_, err := PromoteUserToCoach(context.Background(), p, &model.Coach{UserID: sample.UserID})
		require.ErrorIs(t, err, ErrNotFound)
		require.True(t, rolledBack)
	})

	t.Run("duplicate coach row aborts", func(t *testing.T) {
		tx := &database.FakeTx{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("UPDATE 1"), nil
			},
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeCoachRow{scanErr: &pgconn.PgError{Code: "23505"}}
			},
		}
		p := &database.FakeDB{BeginFn: func(context.Context) (pgx.Tx, error) { return tx, nil }}

		_, err := PromoteUserToCoach(context.Background(), p, &model.Coach{UserID: sample.UserID})
		require.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("begin error", func(t *testing.T) {
		p := &database.FakeDB{BeginFn: func(context.Context) (pgx.Tx, error) { return nil, errors.New("begin") }}
		_, err := PromoteUserToCoach(context.Background(), p, &model.Coach{})
		require.Error(t, err)
	})
}

func TestGetCoachByID(t *testing.T) {
	sample := model.Coach{ID: uuid.New(), UserID: uuid.New(), ExperienceYears: 5, Description: "d"}

	t.Run("ok", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeCoachRow{coach: &sample}
			},
		}
		got, err := GetCoachByID(context.Background(), p, sample.ID)
		require.NoError(t, err)
		require.Equal(t, sample.UserID, got.UserID)
	})

	t.Run("not found", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeCoachRow{scanErr: pgx.ErrNoRows}
			},
		}
		_, err := GetCoachByID(context.Background(), p, sample.ID)
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestListCoaches(t *testing.T) {
	data := []CoachListRow{
		{ID: uuid.New(), Name: "Alice"},
		{ID: uuid.New(), Name: "Bob"},
	}

	t.Run("pagination args", func(t *testing.T) {
		p := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, args ...any) (pgx.Rows, error) {
				require.Equal(t, 1, args[0]) // offset = (page-1)*per
				require.Equal(t, 1, args[1]) // limit = per
				return &fakeCoachRows{data: data[1:]}, nil
			},
		}
		got, err := ListCoaches(context.Background(), p, 1, 2)
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, "Bob", got[0].Name)
	})

	t.Run("query error", func(t *testing.T) {
		p := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return nil, errors.New("boom")
			},
		}
		_, err := ListCoaches(context.Background(), p, 10, 1)
		require.Error(t, err)
	})
}
