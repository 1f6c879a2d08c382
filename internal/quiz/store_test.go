package quiz_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/quizforge/quizforge/internal/db"
	"github.com/quizforge/quizforge/internal/quiz"
)

func sampleQuiz(id string) quiz.Quiz {
	return quiz.Quiz{ID: id, Questions: []quiz.Question{
		{ID: 1, Type: quiz.TypeMC, Prompt: "Capital of France?", Options: []string{"a) Paris", "b) London"}, Answer: "a"},
		{ID: 2, Type: quiz.TypeTF, Prompt: "The sky is blue.", Answer: "true"},
	}}
}

func TestInMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := quiz.NewInMemoryStore()

	if _, err := store.Get(ctx, "missing"); !errors.Is(err, quiz.ErrNotFound) {
		t.Fatalf("Get(missing) = %v, want ErrNotFound", err)
	}

	q := sampleQuiz("q1")
	if err := store.Put(ctx, q); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, err := store.Get(ctx, "q1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !reflect.DeepEqual(got, q) {
		t.Fatalf("roundtrip mismatch:\n got %+v\nwant %+v", got, q)
	}
}

func TestSQLStore(t *testing.T) {
	ctx := context.Background()
	dbh, err := db.Open(ctx, db.DriverSQLite, "file:storetest?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer dbh.Close()

	store := quiz.NewSQLStore(dbh)

	if _, err := store.Get(ctx, "missing"); !errors.Is(err, quiz.ErrNotFound) {
		t.Fatalf("Get(missing) = %v, want ErrNotFound", err)
	}

	q := sampleQuiz("q1")
	if err := store.Put(ctx, q); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, err := store.Get(ctx, "q1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !reflect.DeepEqual(got, q) {
		t.Fatalf("roundtrip mismatch:\n got %+v\nwant %+v", got, q)
	}

	// whole-document replacement
	q2 := sampleQuiz("q1")
	q2.Questions = q2.Questions[:1]
	if err := store.Put(ctx, q2); err != nil {
		t.Fatalf("Put replace: %v", err)
	}
	got, err = store.Get(ctx, "q1")
	if err != nil {
		t.Fatalf("Get after replace: %v", err)
	}
	if len(got.Questions) != 1 {
		t.Fatalf("replace did not take: %+v", got.Questions)
	}
}
