package postgresql

import (
	"reflect"
	"strings"
	"testing"

	"github.com/XDOOPAPP/ocr-service/internal/entity"
)

func TestBuildListQueryBindsPaging(t *testing.T) {
	countQ, q, args := buildListQuery("user-1", nil, 20, 10)

	if !strings.Contains(q, "OFFSET $2 LIMIT $3") {
		t.Fatalf("paging not bound as placeholders: %q", q)
	}
	if strings.Contains(q, "20") || strings.Contains(q, "10") {
		t.Fatalf("paging values leaked into SQL text: %q", q)
	}
	if want := []any{"user-1", 20, 10}; !reflect.DeepEqual(args, want) {
		t.Fatalf("args = %v, want %v", args, want)
	}
	if strings.Contains(countQ, "status") {
		t.Fatalf("count query filters status without one: %q", countQ)
	}
}

func TestBuildListQueryWithStatusFilter(t *testing.T) {
	status := entity.StatusFailed
	countQ, q, args := buildListQuery("user-1", &status, 0, 10)

	if !strings.Contains(q, "AND status = $2") || !strings.Contains(countQ, "AND status = $2") {
		t.Fatalf("status filter missing: q=%q countQ=%q", q, countQ)
	}
	if !strings.Contains(q, "OFFSET $3 LIMIT $4") {
		t.Fatalf("paging placeholders not renumbered after filter: %q", q)
	}
	if want := []any{"user-1", "failed", 0, 10}; !reflect.DeepEqual(args, want) {
		t.Fatalf("args = %v, want %v", args, want)
	}
}

func TestMarkProcessingClearsTerminalColumns(t *testing.T) {
	for _, col := range []string{"result_json=NULL", "error_message=NULL", "completed_at=NULL"} {
		if !strings.Contains(markProcessingQuery, col) {
			t.Errorf("processing update keeps stale %s", strings.TrimSuffix(col, "=NULL"))
		}
	}
	if !strings.Contains(markProcessingQuery, "status='processing'") {
		t.Errorf("processing update missing status transition: %q", markProcessingQuery)
	}
}
