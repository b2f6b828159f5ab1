package repository

import (
	"hr_console/internal/model"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestOperatorRepository_FindByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOperatorRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "email", "password", "role", "disabled"}).
		AddRow(3, "Ops", "ops@acme.com", "hash", "admin", false)
	mock.ExpectQuery("SELECT \\* FROM `console_operators` WHERE email = \\?").
		WillReturnRows(rows)

	op, err := repo.FindByEmail("ops@acme.com")
	require.NoError(t, err)
	assert.Equal(t, uint(3), op.ID)
	assert.Equal(t, model.RoleAdmin, op.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOperatorRepository_FindByEmailMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOperatorRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `console_operators`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByEmail("nobody@acme.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestOperatorRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOperatorRepository(db)

	mock.ExpectExec("INSERT INTO `console_operators`").
		WillReturnResult(sqlmock.NewResult(9, 1))

	op := &model.Operator{Name: "Ops", Email: "ops@acme.com", Password: "hash", Role: model.RoleAdmin}
	require.NoError(t, repo.Create(op))
	assert.Equal(t, uint(9), op.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOperatorRepository_UpdateLastLogin(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOperatorRepository(db)

	mock.ExpectExec("UPDATE `console_operators` SET `last_login`=\\?").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateLastLogin(9, time.Now()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPreferenceRepository_Load(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPreferenceRepository(db)

	rows := sqlmock.NewRows([]string{"id", "operator_id", "module_id", "visible"}).
		AddRow(1, 4, model.ModuleBenchmark, false).
		AddRow(2, 4, model.ModuleTraining, true)
	mock.ExpectQuery("SELECT \\* FROM `console_module_preferences` WHERE operator_id = \\?").
		WillReturnRows(rows)

	got, err := repo.Load(4)
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{model.ModuleBenchmark: false, model.ModuleTraining: true}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPreferenceRepository_SaveUpserts(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPreferenceRepository(db)

	mock.ExpectExec("INSERT INTO `console_module_preferences` .* ON DUPLICATE KEY UPDATE `visible`").
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Save(4, model.ModuleBenchmark, false))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAuditRepository(db)

	mock.ExpectExec("INSERT INTO `console_audit_entries`").
		WillReturnResult(sqlmock.NewResult(0, 1))

	entry := &model.AuditEntry{OperatorID: 1, Action: "business.create", Target: "business:5", Outcome: model.OutcomeSuccess}
	require.NoError(t, repo.Create(entry))
	assert.Len(t, entry.ID, 36)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAuditRepository(db)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `console_audit_entries` WHERE operator_id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery("SELECT \\* FROM `console_audit_entries` WHERE operator_id = \\? ORDER BY created_at DESC LIMIT").
		WillReturnRows(sqlmock.NewRows([]string{"id", "operator_id", "action", "outcome"}).
			AddRow("a", 1, "business.create", "success").
			AddRow("b", 1, "business.delete", "failure"))

	entries, total, err := repo.List(1, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, entries, 2)
	assert.Equal(t, model.OutcomeFailure, entries[1].Outcome)
	assert.NoError(t, mock.ExpectationsWereMet())
}
