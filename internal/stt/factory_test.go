package stt

import (
	"strings"
	"testing"
)

func TestCreateProvider_DefaultsToAssemblyAI(t *testing.T) {
	t.Setenv("STT_PROVIDER", "")
	t.Setenv("ASSEMBLYAI_API_KEY", "test-key")
	t.Setenv("ASSEMBLYAI_URL", "")

	p, err := CreateProvider()
	if err != nil {
		t.Fatal(err)
	}
	if p.Name() != "assemblyai" {
		t.Errorf("expected assemblyai, got %s", p.Name())
	}
}

func TestCreateProvider_AssemblyAIRequiresKey(t *testing.T) {
	t.Setenv("STT_PROVIDER", "assemblyai")
	t.Setenv("ASSEMBLYAI_API_KEY", "")

	if _, err := CreateProvider(); err == nil {
		t.Fatal("expected error without ASSEMBLYAI_API_KEY")
	}
}

func TestCreateProvider_GoogleWithAPIKey(t *testing.T) {
	t.Setenv("STT_PROVIDER", "google")
	t.Setenv("GOOGLE_STT_PROJECT_ID", "")
	t.Setenv("GOOGLE_STT_KEY_FILE", "AIzaSy"+strings.Repeat("x", 33))

	p, err := CreateProvider()
	if err != nil {
		t.Fatal(err)
	}
	if p.Name() != "google" {
		t.Errorf("expected google, got %s", p.Name())
	}
}

func TestCreateProvider_GoogleServiceAccountRequiresProject(t *testing.T) {
	t.Setenv("STT_PROVIDER", "google")
	t.Setenv("GOOGLE_STT_PROJECT_ID", "")
	t.Setenv("GOOGLE_STT_KEY_FILE", "./keys/service-account.json")

	if _, err := CreateProvider(); err == nil {
		t.Fatal("expected error without GOOGLE_STT_PROJECT_ID")
	}
}

func TestCreateProvider_Unsupported(t *testing.T) {
	t.Setenv("STT_PROVIDER", "whisper")

	if _, err := CreateProvider(); err == nil {
		t.Fatal("expected error for unsupported provider")
	}
}
