package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// PathEnv names the environment variable holding a config file path.
const PathEnv = "RESERVATION_CONFIG"

const fileName = "reservation.yml"

// FileConfig is the on-disk layout.
//
//	server:
//	  host: 0.0.0.0
//	  port: 8080
//	db:
//	  host: localhost
//	  port: 5432
//	  user: postgres
//	  password: postgres
//	  dbname: reservation
//	  max_connections: 5
type FileConfig struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	} `yaml:"server"`
	DB struct {
		Host           string `yaml:"host"`
		Port           int    `yaml:"port"`
		User           string `yaml:"user"`
		Password       string `yaml:"password"`
		DBName         string `yaml:"dbname"`
		SSLMode        string `yaml:"sslmode"`
		MaxConnections int32  `yaml:"max_connections"`
	} `yaml:"db"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// FindConfigFile returns the first existing candidate: explicit, then
// $RESERVATION_CONFIG, ./reservation.yml, ~/.config/reservation.yml and
// /etc/reservation.yml. It returns "" when none exists.
func FindConfigFile(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file %s: %w", explicit, err)
		}
		return explicit, nil
	}

	for _, candidate := range candidates() {
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, nil
		}
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("config file %s: %w", candidate, err)
		}
	}
	return "", nil
}

func candidates() []string {
	var paths []string
	if p := os.Getenv(PathEnv); p != "" {
		paths = append(paths, p)
	}
	paths = append(paths, fileName)
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", fileName))
	}
	return append(paths, filepath.Join("/etc", fileName))
}

func ReadFile(path string) (FileConfig, error) {
	var fc FileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return fc, nil
}

// Env flattens the file into envconfig variable names. Unset fields are omitted.
func (fc FileConfig) Env() map[string]string {
	env := map[string]string{}
	set := func(key, value string) {
		if value != "" {
			env[key] = value
		}
	}
	setInt := func(key string, value int64) {
		if value > 0 {
			env[key] = strconv.FormatInt(value, 10)
		}
	}

	set("SERVER_HOST", fc.Server.Host)
	setInt("PORT", int64(fc.Server.Port))
	set("DB_HOST", fc.DB.Host)
	setInt("DB_PORT", int64(fc.DB.Port))
	set("DB_USER", fc.DB.User)
	set("DB_PASSWORD", fc.DB.Password)
	set("DB_NAME", fc.DB.DBName)
	set("DB_SSL_MODE", fc.DB.SSLMode)
	setInt("DB_MAX_CONNS", int64(fc.DB.MaxConnections))
	set("LOG_LEVEL", fc.Log.Level)
	return env
}

// applyFile exports file values for variables the environment leaves unset.
func applyFile(path string) error {
	fc, err := ReadFile(path)
	if err != nil {
		return err
	}
	for key, value := range fc.Env() {
		if _, ok := os.LookupEnv(key); ok {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("failed to apply %s from config file: %w", key, err)
		}
	}
	return nil
}
