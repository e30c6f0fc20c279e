package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Переменные окружения, перекрывающие профиль routectl.
const (
	EnvCLIBaseURL = "ROUTECTL_BASE_URL"
	EnvCLIToken   = "ROUTECTL_TOKEN"
	EnvCLITimeout = "ROUTECTL_TIMEOUT"
)

// Profile — профиль CLI: куда ходить и с каким токеном.
type Profile struct {
	BaseURL string   `toml:"base_url"`
	Token   string   `toml:"token"`
	Timeout Duration `toml:"timeout"`
}

// Duration — time.Duration, которая читается из TOML строкой вида "15s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// DefaultProfile — локальный сервер без токена.
func DefaultProfile() Profile {
	return Profile{
		BaseURL: "http://localhost:8080/api",
		Timeout: Duration{10 * time.Second},
	}
}

// DefaultProfilePath — ~/.config/routectl.toml.
func DefaultProfilePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "routectl.toml"
	}
	return filepath.Join(dir, "routectl.toml")
}

// LoadProfile — дефолты, затем файл (если есть), затем окружение.
// Отсутствие файла ошибкой не считается, если путь не задан явно.
func LoadProfile(path string) (Profile, error) {
	p := DefaultProfile()

	explicit := path != ""
	if !explicit {
		path = DefaultProfilePath()
	}

	if _, err := toml.DecodeFile(path, &p); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return applyProfileEnv(p)
		}
		return Profile{}, fmt.Errorf("read profile %s: %w", path, err)
	}
	return applyProfileEnv(p)
}

func applyProfileEnv(p Profile) (Profile, error) {
	if v := os.Getenv(EnvCLIBaseURL); v != "" {
		p.BaseURL = v
	}
	if v := os.Getenv(EnvCLIToken); v != "" {
		p.Token = v
	}
	if v := os.Getenv(EnvCLITimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Profile{}, fmt.Errorf("%s: %w", EnvCLITimeout, err)
		}
		p.Timeout = Duration{d}
	}
	return p, nil
}
