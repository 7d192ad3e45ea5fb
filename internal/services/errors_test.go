package services

import (
	"errors"
	"fmt"
	"testing"

	"gorm.io/gorm"

	"github.com/tbourn/newsroom-api/internal/failure"
)

func TestOrNotFound(t *testing.T) {
	nf := failure.NotFound("article", "7")

	if got := orNotFound(nil, nf); got != nil {
		t.Fatalf("nil error must stay nil, got %v", got)
	}
	if got := orNotFound(fmt.Errorf("wrap: %w", gorm.ErrRecordNotFound), nf); got != nf {
		t.Fatalf("wrapped not found must map to nf, got %v", got)
	}
	boom := errors.New("boom")
	if got := orNotFound(boom, nf); got != boom {
		t.Fatalf("other errors pass through, got %v", got)
	}
}

func TestOrConflict(t *testing.T) {
	dup := failure.Constraint(failure.UniqueViolation, "topics", "slug", "", errors.New("dup"))
	got := orConflict(fmt.Errorf("insert: %w", dup), "topic", "cats")
	f, ok := failure.As(got)
	if !ok || f.Kind != failure.KindConflict || f.Resource != "topic" || f.Key != "cats" {
		t.Fatalf("unique violation must become Conflict, got %#v", got)
	}

	fk := failure.Constraint(failure.ForeignKeyViolation, "articles", "topic", "", errors.New("fk"))
	if got := orConflict(fk, "topic", "cats"); got != error(fk) {
		t.Fatalf("other constraints pass through, got %v", got)
	}
	if got := orConflict(nil, "topic", "cats"); got != nil {
		t.Fatalf("nil must stay nil, got %v", got)
	}
}
