// Package config содержит функции для работы с локальной конфигурацией CLI-клиента.
//
// Конфигурация хранит access токен и адрес сервера, на котором он получен,
// и размещается в домашней директории пользователя в файле:
//
//	~/.bookmarks/credentials.json
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Credentials содержит учётные данные, используемые CLI-клиентом.
type Credentials struct {
	// AccessToken применяется для авторизации запросов к серверу.
	AccessToken string `json:"access_token"`
	// ServerURL: сервер, выдавший токен. С другим сервером токен не сработает.
	ServerURL string `json:"server_url,omitempty"`
}

// DefaultPath возвращает путь к файлу учётных данных в домашней директории пользователя.
//
// Формат пути:
//
//	<home>/.bookmarks/credentials.json
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".bookmarks", "credentials.json"), nil
}

// Load загружает учётные данные из указанного файла.
//
// Если файл не существует, возвращает пустые Credentials без ошибки.
// Если файл существует, но содержит некорректный JSON, возвращает ошибку.
func Load(path string) (*Credentials, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Credentials{}, nil
		}
		return nil, err
	}
	var c Credentials
	if err := json.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Save сохраняет учётные данные в JSON.
//
// Директория создаётся с правами 0700, файл записывается с правами 0600.
func Save(path string, c *Credentials) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o600)
}

// Clear удаляет файл учётных данных. Отсутствие файла не ошибка.
func Clear(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
