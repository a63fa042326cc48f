package storage

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/evanmoss/dailyq/internal/kv"
	"github.com/evanmoss/dailyq/internal/models"
)

// failingKV errors on every operation, for exercising the read failure model.
type failingKV struct{}

var errBackend = errors.New("backend unavailable")

func (failingKV) Get(ctx context.Context, key string) (string, bool, error) {
	return "", false, errBackend
}
func (failingKV) Set(ctx context.Context, key, value string) error { return errBackend }
func (failingKV) Remove(ctx context.Context, key string) error     { return errBackend }
func (failingKV) Clear(ctx context.Context) error                  { return errBackend }
func (failingKV) Keys(ctx context.Context) ([]string, error)       { return nil, errBackend }

func newService() (*Service, *kv.MemoryStore) {
	backend := kv.NewMemoryStore()
	return New(backend), backend
}

func TestGet_AbsentKey(t *testing.T) {
	svc, _ := newService()
	if _, ok := Get[[]models.Question](context.Background(), svc, KeyQuestions); ok {
		t.Error("Get on empty backend reported ok")
	}
}

func TestGet_CorruptedValueTreatedAsAbsent(t *testing.T) {
	svc, backend := newService()
	ctx := context.Background()
	if err := backend.Set(ctx, KeySettings, "{not json"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, ok := Get[models.Settings](ctx, svc, KeySettings); ok {
		t.Error("Get on corrupted value reported ok")
	}
}

func TestGet_ReadErrorTreatedAsAbsent(t *testing.T) {
	svc := New(failingKV{})
	if _, ok := Get[models.Settings](context.Background(), svc, KeySettings); ok {
		t.Error("Get on failing backend reported ok")
	}
}

func TestSet_WriteErrorPropagates(t *testing.T) {
	svc := New(failingKV{})
	if err := svc.Set(context.Background(), KeySettings, models.DefaultSettings()); err == nil {
		t.Error("Set on failing backend succeeded")
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	want := []models.Question{models.NewQuestion("Mood?", models.QuestionRating, 1, nil)}
	if err := svc.Set(ctx, KeyQuestions, want); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, ok := Get[[]models.Question](ctx, svc, KeyQuestions)
	if !ok {
		t.Fatal("Get reported absent after Set")
	}
	if len(got) != 1 || got[0].ID != want[0].ID || got[0].Text != want[0].Text {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestExistsRemoveAllKeys(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	if svc.Exists(ctx, KeySettings) {
		t.Error("Exists on empty backend")
	}
	if err := svc.Set(ctx, KeySettings, models.DefaultSettings()); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if !svc.Exists(ctx, KeySettings) {
		t.Error("Exists false after Set")
	}

	keys := svc.AllKeys(ctx)
	if !slices.Contains(keys, KeySettings) {
		t.Errorf("AllKeys = %v", keys)
	}

	if err := svc.Remove(ctx, KeySettings); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if svc.Exists(ctx, KeySettings) {
		t.Error("Exists true after Remove")
	}
}

func TestClear(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()
	if err := svc.Set(ctx, KeySettings, models.DefaultSettings()); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := svc.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if len(svc.AllKeys(ctx)) != 0 {
		t.Error("keys remain after Clear")
	}
}

func TestDiaryEntries_EmptyAndUpsert(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	if got := svc.DiaryEntries(ctx); got == nil || len(got) != 0 {
		t.Errorf("DiaryEntries on empty backend = %#v", got)
	}

	entry := models.NewDiaryEntry("2024-03-07")
	if err := svc.SaveDiaryEntry(ctx, entry); err != nil {
		t.Fatalf("SaveDiaryEntry: %v", err)
	}
	if got := svc.DiaryEntries(ctx); len(got) != 1 || got[0].ID != entry.ID {
		t.Fatalf("entries after save = %+v", got)
	}

	// same ID replaces, different ID appends
	entry.Date = "2024-03-08"
	if err := svc.SaveDiaryEntry(ctx, entry); err != nil {
		t.Fatalf("SaveDiaryEntry update: %v", err)
	}
	other := models.NewDiaryEntry("2024-03-09")
	if err := svc.SaveDiaryEntry(ctx, other); err != nil {
		t.Fatalf("SaveDiaryEntry append: %v", err)
	}
	got := svc.DiaryEntries(ctx)
	if len(got) != 2 {
		t.Fatalf("entries = %+v", got)
	}
	if got[0].Date != "2024-03-08" || got[1].ID != other.ID {
		t.Errorf("entries = %+v", got)
	}
}

func TestDeleteDiaryEntry(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	entry := models.NewDiaryEntry("2024-03-07")
	if err := svc.SaveDiaryEntry(ctx, entry); err != nil {
		t.Fatalf("SaveDiaryEntry: %v", err)
	}
	if err := svc.DeleteDiaryEntry(ctx, "no-such-id"); err != nil {
		t.Fatalf("DeleteDiaryEntry unknown ID: %v", err)
	}
	if got := svc.DiaryEntries(ctx); len(got) != 1 {
		t.Fatalf("entries after unknown delete = %+v", got)
	}
	if err := svc.DeleteDiaryEntry(ctx, entry.ID); err != nil {
		t.Fatalf("DeleteDiaryEntry: %v", err)
	}
	if got := svc.DiaryEntries(ctx); len(got) != 0 {
		t.Fatalf("entries after delete = %+v", got)
	}
}

func TestSettings_DefaultsAndNormalization(t *testing.T) {
	svc, backend := newService()
	ctx := context.Background()

	got := svc.Settings(ctx)
	want := models.DefaultSettings()
	if got.IsDarkMode != want.IsDarkMode || got.NotificationsEnabled != want.NotificationsEnabled {
		t.Errorf("defaults = %+v", got)
	}

	// persisted settings with a null reminderTimes come back as an empty slice
	if err := backend.Set(ctx, KeySettings, `{"reminderTimes":null,"isDarkMode":true,"notificationsEnabled":false}`); err != nil {
		t.Fatalf("seed: %v", err)
	}
	got = svc.Settings(ctx)
	if got.ReminderTimes == nil {
		t.Error("ReminderTimes is nil, want empty slice")
	}
	if !got.IsDarkMode || got.NotificationsEnabled {
		t.Errorf("settings = %+v", got)
	}
}

func TestQuestions_SaveAndLoad(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	if got := svc.Questions(ctx); got == nil || len(got) != 0 {
		t.Errorf("Questions on empty backend = %#v", got)
	}
	want := models.DefaultQuestions()
	if err := svc.SaveQuestions(ctx, want); err != nil {
		t.Fatalf("SaveQuestions: %v", err)
	}
	got := svc.Questions(ctx)
	if len(got) != len(want) {
		t.Fatalf("questions = %+v", got)
	}
	for i := range want {
		if got[i].ID != want[i].ID || got[i].Text != want[i].Text {
			t.Errorf("question %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}
