package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// MessageTemplate шаблон письма, плейсхолдеры text/template:
// {{.GuestName}} {{.EventName}} {{.EventDate}} {{.Venue}} {{.RSVPLink}}
type MessageTemplate struct {
	Code    string `toml:"code"`
	Subject string `toml:"subject"`
	Body    string `toml:"body"`
}

// TemplateSet иммутабельный набор шаблонов, грузится один раз на старте
// и передается сервисам явно, а не через глобальную переменную
type TemplateSet struct {
	Invitations []MessageTemplate `toml:"invitation"`
	Reminders   []MessageTemplate `toml:"reminder"`
}

// дефолтные шаблоны на случай отсутствия файла
var defaultTemplates = TemplateSet{
	Invitations: []MessageTemplate{
		{
			Code:    "classic",
			Subject: "Приглашение: {{.EventName}}",
			Body: "<p>Дорогой(ая) {{.GuestName}}!</p>" +
				"<p>Приглашаем вас на {{.EventName}} {{.EventDate}}, {{.Venue}}.</p>" +
				"<p>Пожалуйста, подтвердите участие: <a href=\"{{.RSVPLink}}\">ответить</a></p>",
		},
		{
			Code:    "short",
			Subject: "{{.EventName}} — вы приглашены",
			Body: "<p>{{.GuestName}}, ждем вас {{.EventDate}}!</p>" +
				"<p><a href=\"{{.RSVPLink}}\">Подтвердить участие</a></p>",
		},
	},
	Reminders: []MessageTemplate{
		{
			Code:    "rsvp-reminder",
			Subject: "Напоминание: ждем ваш ответ на {{.EventName}}",
			Body: "<p>{{.GuestName}}, вы еще не ответили на приглашение.</p>" +
				"<p>{{.EventName}} уже {{.EventDate}}. <a href=\"{{.RSVPLink}}\">Ответить</a></p>",
		},
	},
}

// LoadTemplates читает набор шаблонов из toml-файла.
// Файла нет - работаем на встроенных дефолтах, битый файл - ошибка.
func LoadTemplates(path string) (*TemplateSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			set := defaultTemplates
			return &set, nil
		}
		return nil, fmt.Errorf("read templates file: %w", err)
	}

	var set TemplateSet
	if err := toml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("parse templates file: %w", err)
	}

	//файл может задать только часть секций
	if len(set.Invitations) == 0 {
		set.Invitations = defaultTemplates.Invitations
	}
	if len(set.Reminders) == 0 {
		set.Reminders = defaultTemplates.Reminders
	}

	return &set, nil
}

// FindInvitation ищет шаблон приглашения по коду, пустой код = первый шаблон
func (s *TemplateSet) FindInvitation(code string) (MessageTemplate, bool) {
	if code == "" && len(s.Invitations) > 0 {
		return s.Invitations[0], true
	}
	for _, t := range s.Invitations {
		if t.Code == code {
			return t, true
		}
	}
	return MessageTemplate{}, false
}

// FindReminder то же для напоминаний
func (s *TemplateSet) FindReminder(code string) (MessageTemplate, bool) {
	if code == "" && len(s.Reminders) > 0 {
		return s.Reminders[0], true
	}
	for _, t := range s.Reminders {
		if t.Code == code {
			return t, true
		}
	}
	return MessageTemplate{}, false
}
