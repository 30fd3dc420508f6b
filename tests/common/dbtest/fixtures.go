//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt of "password123"
const passwordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

const DefaultPassword = "password123"

var (
	DefaultSalonID    = uuid.MustParse("6f1c2a4e-0000-4000-8000-000000000001")
	DefaultCategoryID = uuid.MustParse("6f1c2a4e-0000-4000-8000-000000000002")
	OtherSalonID      = uuid.MustParse("6f1c2a4e-0000-4000-8000-000000000003")
)

// DBLike is satisfied by both the pool and a transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func CreateTestOperator(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()
	return createTestOperatorIn(t, db, DefaultSalonID, email, role)
}

func CreateTestOperatorInSalon(t *testing.T, db DBLike, salonID uuid.UUID, email, role string) uuid.UUID {
	t.Helper()
	return createTestOperatorIn(t, db, salonID, email, role)
}

func createTestOperatorIn(t *testing.T, db DBLike, salonID uuid.UUID, email, role string) uuid.UUID {
	t.Helper()

	operatorID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `INSERT INTO operators (id, salon_id, name, email, password_hash, role, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, true) ON CONFLICT (email) DO NOTHING`,
		operatorID, salonID, "Operator "+email, email, passwordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM operators WHERE email = $1", email).Scan(&operatorID)
	}

	return operatorID
}

func CreateTestCustomer(t *testing.T, db DBLike, email string) uuid.UUID {
	t.Helper()

	customerID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `INSERT INTO customers (id, salon_id, name, email, password_hash, is_active)
		VALUES ($1, $2, $3, $4, $5, true) ON CONFLICT (email) DO NOTHING`,
		customerID, DefaultSalonID, "Customer "+email, email, passwordHash)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM customers WHERE email = $1", email).Scan(&customerID)
	}

	return customerID
}

func DeactivateCustomer(t *testing.T, db DBLike, email string) {
	t.Helper()
	_, err := db.Exec(context.Background(), "UPDATE customers SET is_active = false WHERE email = $1", email)
	require.NoError(t, err)
}

// CreateTestMenu inserts an active, non-coupon menu in the default salon.
func CreateTestMenu(t *testing.T, db DBLike, name string, price int64, offPrice *int64) uuid.UUID {
	t.Helper()

	menuID := uuid.New()
	_, err := db.Exec(context.Background(), `INSERT INTO menus
		(id, salon_id, category_id, name, price_without_tax, off_price, duration_minutes, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, 90, true)`,
		menuID, DefaultSalonID, DefaultCategoryID, name, price, offPrice)
	require.NoError(t, err)

	return menuID
}

func CreateTestSlots(t *testing.T, db DBLike, operatorID uuid.UUID, date time.Time, times ...string) {
	t.Helper()

	ctx := context.Background()
	for _, tm := range times {
		_, err := db.Exec(ctx, `INSERT INTO slots (operator_id, slot_date, slot_time, salon_id)
			VALUES ($1, $2::date, $3::text::time, $4)`,
			operatorID, date, tm, DefaultSalonID)
		require.NoError(t, err)
	}
}

func SlotIsBooked(t *testing.T, db DBLike, operatorID uuid.UUID, date time.Time, tm string) bool {
	t.Helper()

	var booked bool
	err := db.QueryRow(context.Background(),
		"SELECT is_booked FROM slots WHERE operator_id = $1 AND slot_date = $2::date AND slot_time = $3::text::time",
		operatorID, date, tm).Scan(&booked)
	require.NoError(t, err)
	return booked
}

// SeedReferenceData inserts the salons and the menu category every test relies on.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO salons (id, name, timezone, cancellation_deadline_minutes) VALUES
		    ($1, 'Default Salon', 'Asia/Tokyo', 1440),
		    ($2, 'Other Salon', 'Asia/Tokyo', 1440)
		ON CONFLICT (id) DO NOTHING;
	`, DefaultSalonID, OtherSalonID)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO menu_categories (id, salon_id, name, sort_order) VALUES ($1, $2, 'Nail', 1)
		ON CONFLICT (id) DO NOTHING;
	`, DefaultCategoryID, DefaultSalonID)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations', 'atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
