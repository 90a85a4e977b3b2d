package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// NewSQLiteDB открывает (и при необходимости создает) локальную базу кэша
func NewSQLiteDB(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("не удалось создать каталог для базы кэша: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("не удалось открыть базу кэша: %w", err)
	}

	// Проверяем, что файл действительно открывается
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("не удалось выполнить ping к sqlite: %w", err)
	}

	return db, nil
}
