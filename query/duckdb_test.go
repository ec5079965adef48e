package query

import (
	"database/sql"
	"math"
	"testing"

	_ "github.com/duckdb/duckdb-go/v2"
)

func TestDuckDBEncoder(t *testing.T) {
	enc := NewDuckDBEncoder(nil)

	tests := []struct {
		name  string
		build func(q *Query)
		want  string
	}{
		{
			name:  "empty",
			build: func(q *Query) {},
			want:  "",
		},
		{
			name: "points",
			build: func(q *Query) {
				_ = q.SelectPoint("x", int32(1))
				_ = q.SelectPoint("x", int32(5))
			},
			want: "x IN (1, 5)",
		},
		{
			name: "points and ranges",
			build: func(q *Query) {
				_ = q.SelectRanges("x", []Range{{Lo: int32(10), Hi: int32(20)}})
				_ = q.SelectPoint("x", int32(1))
			},
			want: "x IN (1) OR x BETWEEN 10 AND 20",
		},
		{
			name: "two dimensions",
			build: func(q *Query) {
				_ = q.SelectPoint("x", int32(3))
				_ = q.SelectRanges("y", []Range{{Lo: 0.5, Hi: 1.0}})
			},
			want: "(x IN (3)) AND (y BETWEEN 0.5 AND 1)",
		},
		{
			name: "special floats",
			build: func(q *Query) {
				_ = q.SelectRanges("y", []Range{{Lo: math.Inf(-1), Hi: math.Inf(1)}})
			},
			want: "y BETWEEN '-inf'::DOUBLE AND 'inf'::DOUBLE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := New(testRegistry(t))
			tt.build(q)
			if got := enc.Encode(q); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestDuckDBEncoderQuoting(t *testing.T) {
	enc := NewDuckDBEncoder(&EncoderOptions{
		ColumnMapping: map[string]string{"soma_dim_0": "Cell ID"},
	})

	q := New(nil)
	_ = q.SelectPoint("soma_dim_0", int64(7))
	_ = q.SelectPoint("order", "it's")

	want := `("Cell ID" IN (7)) AND ("order" IN ('it''s'))`
	if got := enc.Encode(q); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestDuckDBEncoderReservedWords(t *testing.T) {
	enc := NewDuckDBEncoder(nil)
	for _, name := range []string{"as", "on", "all", "default", "join", "union", "distinct", "check", "primary", "order", "with"} {
		t.Run(name, func(t *testing.T) {
			q := New(nil)
			_ = q.SelectPoint(name, int32(1))
			want := `"` + name + `" IN (1)`
			if got := enc.Encode(q); got != want {
				t.Errorf("expected %s, got %s", want, got)
			}
		})
	}

	q := New(nil)
	_ = q.SelectPoint("soma_dim_0", int32(1))
	if got := enc.Encode(q); got != "soma_dim_0 IN (1)" {
		t.Errorf("expected plain identifier to stay unquoted, got %s", got)
	}
}

// TestDuckDBEncoderReservedColumnsExecute runs conditions on columns named
// after keywords.
func TestDuckDBEncoderReservedColumnsExecute(t *testing.T) {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		t.Fatalf("failed to open DuckDB: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(`CREATE TABLE t ("as" INTEGER, "on" INTEGER, "all" INTEGER, "default" INTEGER)`); err != nil {
		t.Fatalf("create table: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO t SELECT i, i, i, i FROM range(0, 10) r(i)`); err != nil {
		t.Fatalf("insert: %v", err)
	}

	enc := NewDuckDBEncoder(nil)
	for _, name := range []string{"as", "on", "all", "default"} {
		t.Run(name, func(t *testing.T) {
			q := New(nil)
			_ = q.SelectPoint(name, int32(3))
			_ = q.SelectRanges(name, []Range{{Lo: int32(7), Hi: int32(8)}})

			var n int
			where := enc.Encode(q)
			if err := db.QueryRow("SELECT count(*) FROM t WHERE " + where).Scan(&n); err != nil {
				t.Fatalf("query %q: %v", where, err)
			}
			if n != 3 {
				t.Errorf("%s: expected 3 rows, got %d", where, n)
			}
		})
	}
}

func TestDuckDBEncoderUnrenderable(t *testing.T) {
	q := New(nil)
	_ = q.SelectPoint("x", int32(1))
	_ = q.SelectPoint("y", struct{}{})

	if got := NewDuckDBEncoder(nil).Encode(q); got != "" {
		t.Errorf("expected empty string for unrenderable value, got %q", got)
	}
}

// TestDuckDBEncoderExecutes runs encoded conditions against DuckDB.
func TestDuckDBEncoderExecutes(t *testing.T) {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		t.Fatalf("failed to open DuckDB: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec("CREATE TABLE cells (x INTEGER, y DOUBLE)"); err != nil {
		t.Fatalf("create table: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO cells
		SELECT i::INTEGER, (i % 10) / 10.0 FROM range(0, 101) t(i)`); err != nil {
		t.Fatalf("insert: %v", err)
	}

	tests := []struct {
		name  string
		build func(q *Query)
		want  int
	}{
		{
			name: "points",
			build: func(q *Query) {
				_ = q.SelectPoint("x", int32(5))
				_ = q.SelectPoint("x", int32(50))
			},
			want: 2,
		},
		{
			name: "ranges",
			build: func(q *Query) {
				_ = q.SelectRanges("x", []Range{
					{Lo: int32(0), Hi: int32(9)},
					{Lo: int32(90), Hi: int32(100)},
				})
			},
			want: 21,
		},
		{
			name: "inverted range selects nothing",
			build: func(q *Query) {
				_ = q.SelectRanges("x", []Range{{Lo: int32(50), Hi: int32(40)}})
			},
			want: 0,
		},
		{
			name: "two dimensions",
			build: func(q *Query) {
				_ = q.SelectRanges("x", []Range{{Lo: int32(0), Hi: int32(19)}})
				_ = q.SelectPoint("y", 0.0)
			},
			want: 2,
		},
	}

	enc := NewDuckDBEncoder(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := New(testRegistry(t))
			tt.build(q)
			where := enc.Encode(q)
			if where == "" {
				t.Fatal("expected non-empty condition")
			}

			var n int
			if err := db.QueryRow("SELECT count(*) FROM cells WHERE " + where).Scan(&n); err != nil {
				t.Fatalf("query %q: %v", where, err)
			}
			if n != tt.want {
				t.Errorf("%s: expected %d rows, got %d", where, tt.want, n)
			}
		})
	}
}
