package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("PORT", "")
	t.Setenv("SERVER_URL", "")
	t.Setenv("UPLOAD_DIR", "")
	t.Setenv("CONVERSATION_LOG", "")
	t.Setenv("ASSEMBLYAI_URL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != "5000" {
		t.Errorf("unexpected port: %s", cfg.Port)
	}
	if cfg.PublicBaseURL != "http://localhost:5000" {
		t.Errorf("unexpected base URL: %s", cfg.PublicBaseURL)
	}
	if cfg.UploadDir != "uploads" {
		t.Errorf("unexpected upload dir: %s", cfg.UploadDir)
	}
	if cfg.ConversationLog != "conversations.log" {
		t.Errorf("unexpected log path: %s", cfg.ConversationLog)
	}
	if cfg.AssemblyAIURL != "https://api.assemblyai.com" {
		t.Errorf("unexpected AssemblyAI URL: %s", cfg.AssemblyAIURL)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("PORT", "8081")
	t.Setenv("SERVER_URL", "https://pulse.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != "8081" || cfg.PublicBaseURL != "https://pulse.example.com" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
}

func TestLoad_RequiresOpenAIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error without OPENAI_API_KEY")
	}
}
