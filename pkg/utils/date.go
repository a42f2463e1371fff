package utils

import (
	"strings"
	"time"
)

// ParseDate interpreta uma data no formato YYYY-MM-DD. String vazia retorna nil.
func ParseDate(dateStr string) (*time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// ParseOptionalDate é o ParseDate para campos opcionais de requisições JSON
func ParseOptionalDate(dateStr *string) (*time.Time, error) {
	if dateStr == nil {
		return nil, nil
	}
	return ParseDate(*dateStr)
}

// ParseInstant aceita RFC3339 ou YYYY-MM-DD (meia-noite UTC)
func ParseInstant(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	if instant, err := time.Parse(time.RFC3339, value); err == nil {
		return &instant, nil
	}

	return ParseDate(value)
}

func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
