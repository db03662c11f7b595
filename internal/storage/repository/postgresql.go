// Package repository реализует хранилище данных на основе PostgreSQL
// для пользователей, проектов, задач и подписок. Каждая мутация выполняется
// атомарно: одиночные запросы атомарны на уровне стейтмента, каскадные
// удаления выполняются в одной транзакции.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/magabrotheeeer/workfolio/internal/lib/apperr"
)

// Storage инкапсулирует соединение с базой данных PostgreSQL.
type Storage struct {
	DB *sql.DB
}

// New создаёт подключение к PostgreSQL и проверяет его доступность.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// CheckDatabaseReady проверяет готовность базы данных.
func (s *Storage) CheckDatabaseReady(ctx context.Context) error {
	var exists bool
	err := s.DB.QueryRowContext(ctx, `SELECT EXISTS (
        SELECT FROM information_schema.tables
        WHERE table_name = 'users'
    )`).Scan(&exists)
	if err != nil || !exists {
		return fmt.Errorf("required table users missing or query error: %w", err)
	}
	return nil
}

// uniqueConstraints сопоставляет имена уникальных ограничений БД полю запроса
// и сообщению для клиента. Ограничение БД остаётся авторитетной защитой от гонок
// параллельных вставок, предварительная проверка в сервисах — только быстрый путь.
var uniqueConstraints = map[string]struct {
	field string
	msg   string
}{
	"users_username_key": {field: "username", msg: "Username already in use"},
	"users_email_key":    {field: "email", msg: "Email already in use"},
	"projects_name_key":  {field: "name", msg: "Project name already in use"},
}

// translateError переводит ошибки уровня БД в доменные:
// нарушение уникальности в Duplicate, отсутствие строк в NotFound.
func translateError(err error, notFound *apperr.Error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if c, ok := uniqueConstraints[pgErr.ConstraintName]; ok {
			return apperr.Duplicate(c.field, c.msg)
		}
	}
	if errors.Is(err, sql.ErrNoRows) && notFound != nil {
		return notFound
	}
	return err
}
