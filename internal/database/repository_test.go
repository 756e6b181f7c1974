package database

import (
	"context"
	"errors"
	"testing"

	"github.com/helixml/xact/domain/repository"
)

type itemModel struct {
	ID    int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Name  string `gorm:"column:name"`
	Score int64  `gorm:"column:score"`
}

func (itemModel) TableName() string { return "items" }

type item struct {
	id    int64
	name  string
	score int64
}

type itemMapper struct{}

func (itemMapper) ToDomain(e itemModel) item { return item{id: e.ID, name: e.Name, score: e.Score} }

func (itemMapper) ToModel(d item) itemModel { return itemModel{ID: d.id, Name: d.name, Score: d.score} }

func seedItems(t *testing.T) Repository[item, itemModel] {
	t.Helper()
	db := openTestDB(t)
	if err := db.GORM().AutoMigrate(&itemModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	rows := []itemModel{
		{Name: "alpha", Score: 10},
		{Name: "beta", Score: 20},
		{Name: "alpine", Score: 30},
	}
	if err := db.Session(context.Background()).Create(&rows).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	return NewRepository[item, itemModel](db, itemMapper{}, "item")
}

func TestRepository_Find(t *testing.T) {
	ctx := context.Background()
	repo := seedItems(t)

	all, err := repo.Find(ctx, repository.WithOrderDesc("score"))
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(all) != 3 || all[0].name != "alpine" {
		t.Errorf("unexpected order: %+v", all)
	}

	like, err := repo.Find(ctx, repository.WithComparison("name", repository.OpLike, "al%"), repository.WithOrderAsc("id"))
	if err != nil {
		t.Fatalf("Find like: %v", err)
	}
	if len(like) != 2 || like[0].name != "alpha" || like[1].name != "alpine" {
		t.Errorf("unexpected LIKE result: %+v", like)
	}

	page, err := repo.Find(ctx, append(repository.WithPagination(1, 1), repository.WithOrderAsc("id"))...)
	if err != nil {
		t.Fatalf("Find page: %v", err)
	}
	if len(page) != 1 || page[0].name != "beta" {
		t.Errorf("unexpected page: %+v", page)
	}
}

func TestRepository_FindOne(t *testing.T) {
	ctx := context.Background()
	repo := seedItems(t)

	got, err := repo.FindOne(ctx, repository.WithCondition("name", "beta"))
	if err != nil {
		t.Fatalf("FindOne: %v", err)
	}
	if got.score != 20 {
		t.Errorf("expected score 20, got %d", got.score)
	}

	_, err = repo.FindOne(ctx, repository.WithID(999))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRepository_CountExists(t *testing.T) {
	ctx := context.Background()
	repo := seedItems(t)

	n, err := repo.Count(ctx, repository.WithComparison("score", repository.OpGreaterThanOrEqual, 20))
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2, got %d", n)
	}

	ok, err := repo.Exists(ctx, repository.WithConditionIn("name", []string{"gamma", "beta"}))
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if !ok {
		t.Error("expected beta to exist")
	}
}

func TestRepository_DeleteBy(t *testing.T) {
	ctx := context.Background()
	repo := seedItems(t)

	if err := repo.DeleteBy(ctx, repository.WithComparison("score", repository.OpLessThanOrEqual, 20)); err != nil {
		t.Fatalf("DeleteBy: %v", err)
	}
	n, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 remaining, got %d", n)
	}

	// Unconditioned deletes are refused and leave the table intact.
	if err := repo.DeleteBy(ctx); err != nil {
		t.Fatalf("DeleteBy without options: %v", err)
	}
	if n, _ := repo.Count(ctx); n != 1 {
		t.Errorf("expected 1 remaining, got %d", n)
	}
}
