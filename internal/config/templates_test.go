package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadTemplates_MissingFileUsesDefaults(t *testing.T) {
	set, err := LoadTemplates(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadTemplates: %v", err)
	}
	if len(set.Invitations) == 0 || len(set.Reminders) == 0 {
		t.Fatal("дефолтные шаблоны не подставились")
	}
	if _, ok := set.FindInvitation("classic"); !ok {
		t.Error("дефолтный шаблон classic не найден")
	}
}

func TestLoadTemplates_FileOverridesInvitations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.toml")
	content := `
[[invitation]]
code = "custom"
subject = "Приглашение на {{.EventName}}"
body = "<p>{{.GuestName}}, ждем вас!</p>"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	set, err := LoadTemplates(path)
	if err != nil {
		t.Fatalf("LoadTemplates: %v", err)
	}

	if len(set.Invitations) != 1 || set.Invitations[0].Code != "custom" {
		t.Errorf("invitations = %+v, want только custom", set.Invitations)
	}
	//секция reminder в файле не задана - берется дефолт
	if len(set.Reminders) == 0 {
		t.Error("reminders должны взяться из дефолтов")
	}
}

func TestLoadTemplates_BrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	if err := os.WriteFile(path, []byte("[[invitation\ncode="), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadTemplates(path); err == nil {
		t.Error("битый toml должен возвращать ошибку, а не дефолты")
	}
}

func TestFindInvitation_EmptyCodeReturnsFirst(t *testing.T) {
	set := &TemplateSet{Invitations: []MessageTemplate{
		{Code: "a"}, {Code: "b"},
	}}

	tpl, ok := set.FindInvitation("")
	if !ok || tpl.Code != "a" {
		t.Errorf("got %q ok=%v, want первый шаблон", tpl.Code, ok)
	}

	if _, ok := set.FindInvitation("missing"); ok {
		t.Error("неизвестный код не должен находиться")
	}
}
