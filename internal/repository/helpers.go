package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/alexanderramin/teamlens/internal/db"
)

const timeLayout = time.RFC3339Nano

// parseNullableTime parses a nullable column into a *time.Time.
// NULL, empty or unparsable values yield nil.
func parseNullableTime(s sql.NullString) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(timeLayout, s.String)
	if err != nil {
		return nil
	}
	return &t
}

// parseTime is parseNullableTime for non-pointer fields; missing is the zero time.
func parseTime(s sql.NullString) time.Time {
	if t := parseNullableTime(s); t != nil {
		return *t
	}
	return time.Time{}
}

func nullableTimeToString(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(timeLayout)
}

func timeToString(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.UTC().Format(timeLayout)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func intToBool(i int) bool {
	return i != 0
}

// encodeIDs stores an id list as a JSON array; nil becomes "[]".
func encodeIDs(ids []string) (string, error) {
	if ids == nil {
		ids = []string{}
	}
	raw, err := json.Marshal(ids)
	if err != nil {
		return "", fmt.Errorf("encoding id list: %w", err)
	}
	return string(raw), nil
}

// decodeIDs reads a JSON array column. An empty array decodes to nil.
func decodeIDs(raw string) ([]string, error) {
	if raw == "" {
		return nil, nil
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, fmt.Errorf("decoding id list %q: %w", raw, err)
	}
	if len(ids) == 0 {
		return nil, nil
	}
	return ids, nil
}

// execBuilt renders a squirrel builder and runs it on conn.
func execBuilt(ctx context.Context, conn db.DBTX, b sq.Sqlizer) error {
	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("building statement: %w", err)
	}
	_, err = conn.ExecContext(ctx, query, args...)
	return err
}

// queryBuilt renders a squirrel select and runs it on conn.
func queryBuilt(ctx context.Context, conn db.DBTX, b sq.Sqlizer) (*sql.Rows, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}
	return conn.QueryContext(ctx, query, args...)
}
