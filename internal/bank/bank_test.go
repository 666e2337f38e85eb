package bank_test

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/saulo-duarte/langassess/internal/bank"
)

func TestDefaultBank(t *testing.T) {
	b, err := bank.Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}

	for _, s := range b.Stats() {
		q := s.Questions
		if q.Easy < 3 || q.Medium < 4 || q.Hard < 3 {
			t.Errorf("%s cannot fill a balanced test of 10: %+v", s.Language, q)
		}
		if q.Total != q.Easy+q.Medium+q.Hard {
			t.Errorf("%s total %d does not add up", s.Language, q.Total)
		}
	}
}

func TestParse(t *testing.T) {
	t.Run("SingleAndMultiAnswer", func(t *testing.T) {
		data := []byte(`
Python:
  - question: "one"
    options: ["a", "b"]
    answer: 1
    difficulty: easy
  - question: "many"
    options: ["a", "b", "c"]
    answer: [0, 2]
    difficulty: hard
`)
		b, err := bank.Parse(data)
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}

		qs := b.Questions(bank.Python)
		if len(qs) != 2 {
			t.Fatalf("got %d questions, want 2", len(qs))
		}
		if len(qs[0].Answer) != 1 || qs[0].Answer[0] != 1 {
			t.Errorf("single answer decoded as %v", qs[0].Answer)
		}
		if len(qs[1].Answer) != 2 || !qs[1].Answer.Contains(0) || !qs[1].Answer.Contains(2) {
			t.Errorf("multi answer decoded as %v", qs[1].Answer)
		}
	})

	t.Run("MissingLanguageIsEmpty", func(t *testing.T) {
		b, err := bank.Parse([]byte(`Java: []`))
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		qs := b.Questions(bank.React)
		if qs == nil || len(qs) != 0 {
			t.Errorf("expected empty non-nil list, got %v", qs)
		}
	})

	t.Run("UnknownLanguage", func(t *testing.T) {
		if _, err := bank.Parse([]byte(`Cobol: []`)); err == nil {
			t.Error("expected error for unknown language")
		}
	})

	t.Run("AnswerOutOfRange", func(t *testing.T) {
		data := []byte(`
Java:
  - question: "q"
    options: ["a", "b"]
    answer: 2
    difficulty: easy
`)
		_, err := bank.Parse(data)
		if !errors.Is(err, bank.ErrInvalidQuestion) {
			t.Errorf("expected ErrInvalidQuestion, got %v", err)
		}
	})

	t.Run("BadDifficulty", func(t *testing.T) {
		data := []byte(`
Java:
  - question: "q"
    options: ["a", "b"]
    answer: 0
    difficulty: extreme
`)
		_, err := bank.Parse(data)
		if !errors.Is(err, bank.ErrInvalidQuestion) {
			t.Errorf("expected ErrInvalidQuestion, got %v", err)
		}
	})

	t.Run("MalformedAnswer", func(t *testing.T) {
		data := []byte(`
Java:
  - question: "q"
    options: ["a", "b"]
    answer: {index: 0}
    difficulty: easy
`)
		if _, err := bank.Parse(data); err == nil {
			t.Error("expected error for mapping answer")
		}
	})
}

func TestQuestionsReturnsCopy(t *testing.T) {
	b, err := bank.Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}

	qs := b.Questions(bank.Python)
	original := qs[0].Text
	qs[0].Text = "mutated"

	if got := b.Questions(bank.Python)[0].Text; got != original {
		t.Errorf("bank was mutated through returned slice: %q", got)
	}
}

func TestCombined(t *testing.T) {
	b, err := bank.Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}

	py := len(b.Questions(bank.Python))
	js := len(b.Questions(bank.JavaScript))
	if got := len(b.Combined(bank.Python, bank.JavaScript)); got != py+js {
		t.Errorf("Combined length = %d, want %d", got, py+js)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.yaml")
	if err := os.WriteFile(path, []byte("React: []\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := bank.LoadFile(path); err != nil {
		t.Errorf("LoadFile failed: %v", err)
	}
	if _, err := bank.LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestParseLanguage(t *testing.T) {
	cases := map[string]bank.Language{
		"python":   bank.Python,
		"C++":      bank.Cpp,
		" node.js": bank.NodeJS,
	}
	for in, want := range cases {
		got, ok := bank.ParseLanguage(in)
		if !ok || got != want {
			t.Errorf("ParseLanguage(%q) = %q, %v; want %q", in, got, ok, want)
		}
	}
	if _, ok := bank.ParseLanguage("Rust"); ok {
		t.Error("ParseLanguage accepted Rust")
	}
}

func TestAnswerSetJSON(t *testing.T) {
	tests := []struct {
		in      string
		want    bank.AnswerSet
		wantErr bool
	}{
		{in: `2`, want: bank.AnswerSet{2}},
		{in: `[0, 3]`, want: bank.AnswerSet{0, 3}},
		{in: `"b"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var got bank.AnswerSet
			err := json.Unmarshal([]byte(tt.in), &got)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Unmarshal(%s) should fail", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal(%s) failed: %v", tt.in, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Unmarshal(%s) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
