package config

import "time"

// SMTPConfig содержит настройки отправки уведомлений по почте.
type SMTPConfig struct {
	Host        string        `yaml:"host" env:"NOTESAPI_SMTP_HOST" env-default:"localhost"`
	Port        int           `yaml:"port" env:"NOTESAPI_SMTP_PORT" env-default:"587"`
	Username    string        `yaml:"username" env:"NOTESAPI_SMTP_USERNAME" env-default:""`
	Password    string        `yaml:"password" env:"NOTESAPI_SMTP_PASSWORD" env-default:""`
	From        string        `yaml:"from" env:"NOTESAPI_SMTP_FROM" env-default:"no-reply@notesapi.local"`
	SendTimeout time.Duration `yaml:"send_timeout" env:"NOTESAPI_SMTP_SEND_TIMEOUT" env-default:"10s"`
}
