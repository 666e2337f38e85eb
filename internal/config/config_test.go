package config_test

import (
	"testing"
	"time"

	"github.com/saulo-duarte/langassess/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "QUESTIONS_PER_TEST", "TIME_PER_QUESTION", "PASS_THRESHOLD", "UPLOAD_DIR", "UPLOAD_REQUIRE_PASS", "ATTEMPT_RETENTION", "APP_ENV"} {
		t.Setenv(key, "")
	}

	s := config.Load()

	if s.Port != "5000" {
		t.Errorf("Port = %q, want 5000", s.Port)
	}
	if s.QuestionsPerTest != 10 {
		t.Errorf("QuestionsPerTest = %d, want 10", s.QuestionsPerTest)
	}
	if s.TimePerQuestion != 30*time.Second {
		t.Errorf("TimePerQuestion = %s, want 30s", s.TimePerQuestion)
	}
	if s.PassThreshold != 6 {
		t.Errorf("PassThreshold = %v, want 6", s.PassThreshold)
	}
	if s.UploadDir != "uploads" {
		t.Errorf("UploadDir = %q, want uploads", s.UploadDir)
	}
	if s.UploadRequirePass {
		t.Error("UploadRequirePass should default to false")
	}
	if s.AttemptRetention != 30*time.Minute {
		t.Errorf("AttemptRetention = %s, want 30m", s.AttemptRetention)
	}
	if s.IsProduction() {
		t.Error("development should be the default environment")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Run("SecondsAsInteger", func(t *testing.T) {
		t.Setenv("TIME_PER_QUESTION", "45")
		if got := config.Load().TimePerQuestion; got != 45*time.Second {
			t.Errorf("TimePerQuestion = %s, want 45s", got)
		}
	})

	t.Run("GoDuration", func(t *testing.T) {
		t.Setenv("NOTICE_DURATION", "1500ms")
		if got := config.Load().NoticeDuration; got != 1500*time.Millisecond {
			t.Errorf("NoticeDuration = %s, want 1.5s", got)
		}
	})

	t.Run("InvalidFallsBack", func(t *testing.T) {
		t.Setenv("QUESTIONS_PER_TEST", "ten")
		t.Setenv("PASS_THRESHOLD", "-1")
		s := config.Load()
		if s.QuestionsPerTest != 10 {
			t.Errorf("QuestionsPerTest = %d, want fallback 10", s.QuestionsPerTest)
		}
		if s.PassThreshold != 6 {
			t.Errorf("PassThreshold = %v, want fallback 6", s.PassThreshold)
		}
	})

	t.Run("Booleans", func(t *testing.T) {
		t.Setenv("UPLOAD_REQUIRE_PASS", "true")
		if !config.Load().UploadRequirePass {
			t.Error("UploadRequirePass should be true")
		}
	})
}
