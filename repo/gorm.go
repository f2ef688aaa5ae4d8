package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"MakeupBot/model"

	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// userRow is the users table. New columns must carry a default so that
// AutoMigrate can backfill rows written by older versions.
type userRow struct {
	UserID         int64          `gorm:"column:user_id;primaryKey;autoIncrement:false"`
	Subscribed     bool           `gorm:"column:subscribed;not null;default:false;index"`
	RotationCursor int            `gorm:"column:rotation_cursor;not null;default:0"`
	LastResult     *string        `gorm:"column:last_result"`
	LastAnswers    datatypes.JSON `gorm:"column:last_answers"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (userRow) TableName() string {
	return "users"
}

// GormStore implements UserStore on top of a SQL database.
type GormStore struct {
	db *gorm.DB
}

// OpenSQLite opens (creating if needed) the SQLite database at path.
func OpenSQLite(path string) (*GormStore, error) {
	s, err := open(sqlite.Open(path))
	if err != nil {
		return nil, err
	}

	sqlDB, err := s.db.DB()
	if err != nil {
		return nil, fmt.Errorf("error getting sqlite handle: %w", err)
	}
	// SQLite allows a single writer.
	sqlDB.SetMaxOpenConns(1)

	for _, pragma := range []string{"PRAGMA journal_mode = WAL", "PRAGMA busy_timeout = 5000"} {
		if err := s.db.Exec(pragma).Error; err != nil {
			s.Close()
			return nil, fmt.Errorf("error executing %q: %w", pragma, err)
		}
	}
	return s, nil
}

// OpenPostgres connects to the Postgres database at dsn.
func OpenPostgres(dsn string) (*GormStore, error) {
	return open(postgres.Open(dsn))
}

func open(dialector gorm.Dialector) (*GormStore, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	s := &GormStore{db: db}
	if err := s.migrate(); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func (s *GormStore) migrate() error {
	if err := s.migrateLegacy(); err != nil {
		return fmt.Errorf("error migrating legacy users table: %w", err)
	}
	if err := s.db.AutoMigrate(&userRow{}); err != nil {
		return fmt.Errorf("error migrating users table: %w", err)
	}
	return nil
}

// migrateLegacy moves rows from the first version of the bot, which keyed
// users by chat_id and named the rotation fields tips_enabled/tips_index.
func (s *GormStore) migrateLegacy() error {
	m := s.db.Migrator()
	if !m.HasTable("users") || !m.HasColumn("users", "chat_id") {
		return nil
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		tm := tx.Migrator()
		if err := tm.RenameTable("users", "users_legacy"); err != nil {
			return err
		}
		if err := tm.AutoMigrate(&userRow{}); err != nil {
			return err
		}

		answers := "NULL"
		if tm.HasColumn("users_legacy", "last_answers") {
			answers = "last_answers"
		}
		now := time.Now()
		err := tx.Exec(`INSERT INTO users (user_id, subscribed, rotation_cursor, last_result, last_answers, created_at, updated_at)
			SELECT chat_id, tips_enabled <> 0, tips_index, last_result, `+answers+`, ?, ? FROM users_legacy`, now, now).Error
		if err != nil {
			return err
		}
		return tm.DropTable("users_legacy")
	})
}

// Close closes the underlying connection pool.
func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *GormStore) Ensure(ctx context.Context, userID int64) error {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&userRow{UserID: userID}).Error
	if err != nil {
		return fmt.Errorf("error ensuring user %d: %w", userID, err)
	}
	return nil
}

// find loads the requested columns of a user. ok is false when the user is absent.
func (s *GormStore) find(ctx context.Context, userID int64, columns ...string) (row userRow, ok bool, err error) {
	res := s.db.WithContext(ctx).
		Select(columns).
		Where("user_id = ?", userID).
		Limit(1).
		Find(&row)
	if res.Error != nil {
		return row, false, res.Error
	}
	return row, res.RowsAffected > 0, nil
}

func (s *GormStore) update(ctx context.Context, userID int64, column string, value any) error {
	err := s.db.WithContext(ctx).
		Model(&userRow{}).
		Where("user_id = ?", userID).
		Update(column, value).Error
	if err != nil {
		return fmt.Errorf("error updating %s for user %d: %w", column, userID, err)
	}
	return nil
}

func (s *GormStore) Subscribed(ctx context.Context, userID int64) (bool, error) {
	row, _, err := s.find(ctx, userID, "subscribed")
	if err != nil {
		return false, fmt.Errorf("error reading subscription for user %d: %w", userID, err)
	}
	return row.Subscribed, nil
}

func (s *GormStore) SetSubscribed(ctx context.Context, userID int64, subscribed bool) error {
	return s.update(ctx, userID, "subscribed", subscribed)
}

func (s *GormStore) ListSubscribed(ctx context.Context) ([]model.Subscriber, error) {
	var rows []userRow
	err := s.db.WithContext(ctx).
		Select("user_id", "rotation_cursor").
		Where("subscribed = ?", true).
		Order("user_id").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("error listing subscribers: %w", err)
	}

	subs := make([]model.Subscriber, 0, len(rows))
	for _, r := range rows {
		subs = append(subs, model.Subscriber{UserID: r.UserID, Cursor: r.RotationCursor})
	}
	return subs, nil
}

func (s *GormStore) AdvanceCursor(ctx context.Context, userID int64, cursor int) error {
	return s.update(ctx, userID, "rotation_cursor", cursor)
}

func (s *GormStore) LastResult(ctx context.Context, userID int64) (string, bool, error) {
	row, ok, err := s.find(ctx, userID, "last_result")
	if err != nil {
		return "", false, fmt.Errorf("error reading last result for user %d: %w", userID, err)
	}
	if !ok || row.LastResult == nil {
		return "", false, nil
	}
	return *row.LastResult, true, nil
}

func (s *GormStore) SetLastResult(ctx context.Context, userID int64, text string) error {
	return s.update(ctx, userID, "last_result", text)
}

func (s *GormStore) LastAnswers(ctx context.Context, userID int64) (model.Answers, bool, error) {
	row, ok, err := s.find(ctx, userID, "last_answers")
	if err != nil {
		return model.Answers{}, false, fmt.Errorf("error reading last answers for user %d: %w", userID, err)
	}
	if !ok || len(row.LastAnswers) == 0 {
		return model.Answers{}, false, nil
	}

	answers, err := model.ParseSnapshot(row.LastAnswers)
	if errors.Is(err, model.ErrInvalidSnapshot) {
		return model.Answers{}, false, nil
	}
	return answers, err == nil, err
}

func (s *GormStore) SetLastAnswers(ctx context.Context, userID int64, answers model.Answers) error {
	data, err := answers.MarshalSnapshot()
	if err != nil {
		return fmt.Errorf("error encoding answers for user %d: %w", userID, err)
	}
	return s.update(ctx, userID, "last_answers", datatypes.JSON(data))
}
