package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/evanmoss/dailyq/internal/models"
)

func sampleEntries() []models.DiaryEntry {
	return []models.DiaryEntry{
		{
			ID:        "e1",
			Date:      "2024-03-07",
			CreatedAt: "2024-03-07T08:00:00Z",
			UpdatedAt: "2024-03-07T08:00:00Z",
			Answers: []models.DiaryAnswer{
				{QuestionID: "q1", QuestionText: "Mood?", Value: models.Rating(4), Type: models.AnswerRating},
				{QuestionID: "q2", QuestionText: "One good thing?", Value: models.Text("Shipped the release"), Type: models.AnswerText},
			},
		},
		{
			ID:        "e2",
			Date:      "2024-03-08",
			CreatedAt: "2024-03-08T08:00:00Z",
			UpdatedAt: "2024-03-08T08:00:00Z",
			Answers: []models.DiaryAnswer{
				{QuestionID: "q2", QuestionText: "One good thing?", Value: models.Text("Lunch, then a walk"), Type: models.AnswerText},
			},
		},
	}
}

func TestToJSON_Empty(t *testing.T) {
	for _, entries := range [][]models.DiaryEntry{nil, {}} {
		got, err := ToJSON(entries)
		if err != nil {
			t.Fatalf("ToJSON: %v", err)
		}
		if got != "[]" {
			t.Errorf("ToJSON(empty) = %q, want \"[]\"", got)
		}
	}
}

func TestToJSON_RoundTrip(t *testing.T) {
	entries := sampleEntries()
	s, err := ToJSON(entries)
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}

	var got []models.DiaryEntry
	if err := json.Unmarshal([]byte(s), &got); err != nil {
		t.Fatalf("unmarshal export: %v", err)
	}
	if len(got) != len(entries) {
		t.Fatalf("round trip length = %d, want %d", len(got), len(entries))
	}
	for i := range entries {
		if got[i].ID != entries[i].ID || got[i].Date != entries[i].Date {
			t.Errorf("entry %d = %+v, want %+v", i, got[i], entries[i])
		}
		for j := range entries[i].Answers {
			if got[i].Answers[j] != entries[i].Answers[j] {
				t.Errorf("entry %d answer %d = %+v, want %+v", i, j, got[i].Answers[j], entries[i].Answers[j])
			}
		}
	}
}

func TestToCSV_Empty(t *testing.T) {
	if got := ToCSV(nil); got != "date,questionText,value,type\n" {
		t.Errorf("ToCSV(nil) = %q", got)
	}
}

func TestToCSV_Rows(t *testing.T) {
	got := ToCSV(sampleEntries())
	want := "date,questionText,value,type\n" +
		"2024-03-07,Mood?,4,rating\n" +
		"2024-03-07,One good thing?,Shipped the release,text\n" +
		"2024-03-08,One good thing?,\"Lunch, then a walk\",text\n"
	if got != want {
		t.Errorf("ToCSV =\n%q\nwant\n%q", got, want)
	}
}

func TestToCSV_Escaping(t *testing.T) {
	entries := []models.DiaryEntry{{
		ID:   "e1",
		Date: "2024-03-07",
		Answers: []models.DiaryAnswer{
			{QuestionText: `He said "hi"`, Value: models.Text("a,b"), Type: models.AnswerText},
			{QuestionText: "Plans?", Value: models.Text("line one\nline two"), Type: models.AnswerText},
			{QuestionText: "Rating", Value: models.Rating(5), Type: models.AnswerRating},
		},
	}}
	got := ToCSV(entries)
	want := "date,questionText,value,type\n" +
		"2024-03-07,\"He said \"\"hi\"\"\",\"a,b\",text\n" +
		"2024-03-07,Plans?,\"line one\nline two\",text\n" +
		"2024-03-07,Rating,5,rating\n"
	if got != want {
		t.Errorf("ToCSV =\n%q\nwant\n%q", got, want)
	}
}

func TestToCSV_SkipsEntriesWithoutAnswers(t *testing.T) {
	entries := []models.DiaryEntry{{ID: "e1", Date: "2024-03-07", Answers: nil}}
	if got := ToCSV(entries); got != "date,questionText,value,type\n" {
		t.Errorf("ToCSV = %q, want header only", got)
	}
}

func TestFilename(t *testing.T) {
	now := time.Date(2024, 3, 7, 23, 59, 0, 0, time.UTC)
	if got := Filename("diary", now); got != "diary_2024-03-07" {
		t.Errorf("Filename = %q", got)
	}
}

func TestExporter_WritesFiles(t *testing.T) {
	dir := t.TempDir()
	e := Exporter{Writer: DirWriter{Dir: filepath.Join(dir, "exports")}}
	now := time.Date(2024, 3, 7, 12, 0, 0, 0, time.UTC)

	uri, err := e.ExportCSV(sampleEntries(), now)
	if err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}
	if filepath.Base(uri) != "diary_2024-03-07.csv" {
		t.Errorf("csv uri = %q", uri)
	}
	data, err := os.ReadFile(uri)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !strings.HasPrefix(string(data), "date,questionText,value,type\n") {
		t.Errorf("csv content = %q", data)
	}

	uri, err = e.ExportJSON(nil, now)
	if err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	data, err = os.ReadFile(uri)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("empty json export = %q", data)
	}
}

func TestExporter_ShareFailureSurfaces(t *testing.T) {
	e := Exporter{Writer: DirWriter{Dir: t.TempDir()}, Sharer: NoSharer{}}
	if _, err := e.ExportJSON(nil, time.Now()); err == nil {
		t.Fatal("expected share failure")
	}
}
