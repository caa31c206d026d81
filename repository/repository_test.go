package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"expense-api/models"
	"expense-api/validation"

	"github.com/DATA-DOG/go-sqlmock"
	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type RepositorySuite struct {
	suite.Suite
	sqlDB *sql.DB
	mock  sqlmock.Sqlmock
	db    *gorm.DB
	ctx   context.Context

	userID     string
	categoryID string
}

func TestRepositorySuite(t *testing.T) {
	suite.Run(t, new(RepositorySuite))
}

func (s *RepositorySuite) SetupTest() {
	sqlDB, mock, err := sqlmock.New()
	s.Require().NoError(err)

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{TranslateError: true})
	s.Require().NoError(err)

	s.sqlDB, s.mock, s.db = sqlDB, mock, db
	s.ctx = context.Background()
	s.userID = models.NewID()
	s.categoryID = models.NewID()
}

func (s *RepositorySuite) TearDownTest() {
	s.Require().NoError(s.mock.ExpectationsWereMet())
	s.sqlDB.Close()
}

func (s *RepositorySuite) userRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "username", "email", "password", "role", "created_at", "updated_at"}).
		AddRow(s.userID, "alice", "alice@example.com", "hashed", "user", time.Now(), time.Now())
}

func (s *RepositorySuite) categoryRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "user_id", "name", "description", "type", "color_code", "created_at", "updated_at"}).
		AddRow(s.categoryID, s.userID, "food", "", "expense", "#000000", time.Now(), time.Now())
}

func (s *RepositorySuite) TestUser_FindByEmail() {
	s.mock.ExpectQuery("SELECT \\* FROM `users` WHERE email = \\?").
		WithArgs("alice@example.com").
		WillReturnRows(s.userRows())

	user, err := NewUserRepository(s.db).FindByEmail(s.ctx, "alice@example.com")
	s.Require().NoError(err)
	s.Equal(s.userID, user.ID)
	s.Equal("hashed", user.Password)
}

func (s *RepositorySuite) TestUser_FindByID_NotFound() {
	s.mock.ExpectQuery("SELECT \\* FROM `users` WHERE id = \\?").
		WithArgs(s.userID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := NewUserRepository(s.db).FindByID(s.ctx, s.userID)
	s.ErrorIs(err, ErrNotFound)
}

func (s *RepositorySuite) TestUser_Create_Duplicate() {
	s.mock.ExpectBegin()
	s.mock.ExpectExec("INSERT INTO `users`").
		WillReturnError(&mysqldriver.MySQLError{Number: 1062, Message: "Duplicate entry"})
	s.mock.ExpectRollback()

	err := NewUserRepository(s.db).Create(s.ctx, &models.User{Username: "alice", Email: "alice@example.com", Password: "x", Role: "user"})
	s.ErrorIs(err, ErrDuplicate)
}

func (s *RepositorySuite) TestCategory_List_ExpandsOwner() {
	s.mock.ExpectQuery("SELECT \\* FROM `categories` WHERE user_id = \\? ORDER BY created_at DESC").
		WithArgs(s.userID).
		WillReturnRows(s.categoryRows())
	s.mock.ExpectQuery("SELECT \\* FROM `users`").
		WithArgs(s.userID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "role"}).
			AddRow(s.userID, "alice", "alice@example.com", "user"))

	categories, err := NewCategoryRepository(s.db).List(s.ctx, s.userID)
	s.Require().NoError(err)
	s.Require().Len(categories, 1)
	s.Equal("food", categories[0].Name)
	s.Require().NotNil(categories[0].User)
	s.Equal("alice", categories[0].User.Username)
}

func (s *RepositorySuite) TestCategory_FindOwned_OtherUser() {
	other := models.NewID()
	s.mock.ExpectQuery("SELECT \\* FROM `categories` WHERE user_id = \\? AND id = \\?").
		WithArgs(other, s.categoryID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := NewCategoryRepository(s.db).FindOwned(s.ctx, s.categoryID, other)
	s.ErrorIs(err, ErrNotFound)
}

func (s *RepositorySuite) TestCategory_Create_StampsOwner() {
	s.mock.ExpectBegin()
	s.mock.ExpectExec("INSERT INTO `categories`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	s.mock.ExpectCommit()

	category := &models.Category{Name: "food", Type: models.CategoryTypeExpense}
	err := NewCategoryRepository(s.db).Create(s.ctx, s.userID, category)
	s.Require().NoError(err)
	s.Equal(s.userID, category.UserID)
	s.Len(category.ID, models.IDLength)
	s.Equal(models.DefaultColorCode, category.ColorCode)
}

func (s *RepositorySuite) TestCategory_Update() {
	s.mock.ExpectBegin()
	s.mock.ExpectExec("UPDATE `categories` SET .* WHERE id = \\? AND user_id = \\?").
		WillReturnResult(sqlmock.NewResult(0, 1))
	s.mock.ExpectCommit()

	err := NewCategoryRepository(s.db).Update(s.ctx, s.categoryID, s.userID, map[string]interface{}{"name": "groceries"})
	s.NoError(err)

	// 没有字段时不访问数据库
	s.NoError(NewCategoryRepository(s.db).Update(s.ctx, s.categoryID, s.userID, nil))
}

func (s *RepositorySuite) TestCategory_Delete_Missing() {
	s.mock.ExpectBegin()
	s.mock.ExpectExec("DELETE FROM `categories` WHERE id = \\? AND user_id = \\?").
		WithArgs(s.categoryID, s.userID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	s.mock.ExpectCommit()

	err := NewCategoryRepository(s.db).Delete(s.ctx, s.categoryID, s.userID)
	s.ErrorIs(err, ErrNotFound)
}

func (s *RepositorySuite) TestExpense_ExistsForCategory() {
	s.mock.ExpectQuery("SELECT count\\(\\*\\) FROM `expenses` WHERE user_id = \\? AND category_id = \\?").
		WithArgs(s.userID, s.categoryID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := NewExpenseRepository(s.db).ExistsForCategory(s.ctx, s.userID, s.categoryID)
	s.Require().NoError(err)
	s.True(exists)
}

func (s *RepositorySuite) TestExpense_Create_DefaultsDate() {
	s.mock.ExpectBegin()
	s.mock.ExpectExec("INSERT INTO `expenses`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	s.mock.ExpectCommit()

	expense := &models.Expense{CategoryID: s.categoryID, Amount: 50}
	s.Require().NoError(NewExpenseRepository(s.db).Create(s.ctx, s.userID, expense))
	s.Equal(s.userID, expense.UserID)
	s.WithinDuration(time.Now(), expense.Date, 5*time.Second)
}

func (s *RepositorySuite) TestExpense_Delete() {
	id := models.NewID()
	s.mock.ExpectBegin()
	s.mock.ExpectExec("DELETE FROM `expenses` WHERE id = \\? AND user_id = \\?").
		WithArgs(id, s.userID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	s.mock.ExpectCommit()

	s.NoError(NewExpenseRepository(s.db).Delete(s.ctx, id, s.userID))
}

func (s *RepositorySuite) TestExpense_Filter() {
	min, max := 10.0, 100.0
	filter := validation.ExpenseFilter{
		UserID:    s.userID,
		MinAmount: &min,
		MaxAmount: &max,
		SortBy:    "amount",
		Limit:     2,
		Page:      1,
	}

	s.mock.ExpectQuery("SELECT count\\(\\*\\) FROM `expenses` WHERE expenses.user_id = \\? AND expenses.amount >= \\? AND expenses.amount <= \\?").
		WithArgs(s.userID, min, max).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	s.mock.ExpectQuery("SELECT \\* FROM `expenses` WHERE expenses.user_id = \\? .* ORDER BY `expenses`.`amount` DESC LIMIT").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "category_id", "amount", "date"}).
			AddRow(models.NewID(), s.userID, s.categoryID, 80.0, time.Now()).
			AddRow(models.NewID(), s.userID, s.categoryID, 20.0, time.Now()))
	s.mock.ExpectQuery("SELECT \\* FROM `categories`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "type", "name", "color_code", "description"}).
			AddRow(s.categoryID, "expense", "food", "#000000", ""))
	s.mock.ExpectQuery("SELECT \\* FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "role"}).
			AddRow(s.userID, "alice", "alice@example.com", "user"))

	expenses, total, err := NewExpenseRepository(s.db).Filter(s.ctx, filter)
	s.Require().NoError(err)
	s.Equal(int64(3), total)
	s.Require().Len(expenses, 2)
	for _, e := range expenses {
		s.GreaterOrEqual(e.Amount, min)
		s.LessOrEqual(e.Amount, max)
		s.Require().NotNil(e.Category)
		s.Equal("food", e.Category.Name)
	}
}

func (s *RepositorySuite) TestExpense_Filter_Empty() {
	s.mock.ExpectQuery("SELECT count\\(\\*\\) FROM `expenses`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	expenses, total, err := NewExpenseRepository(s.db).Filter(s.ctx, validation.ExpenseFilter{UserID: s.userID, Limit: 10, Page: 1})
	s.Require().NoError(err)
	s.Zero(total)
	s.Empty(expenses)
}

func (s *RepositorySuite) TestExpense_TotalsByCategory() {
	s.mock.ExpectQuery("SELECT expenses.category_id AS category_id.* LEFT JOIN categories .* GROUP BY").
		WithArgs(s.userID).
		WillReturnRows(sqlmock.NewRows([]string{"category_id", "name", "type", "color_code", "total", "count"}).
			AddRow(s.categoryID, "food", "expense", "#000000", 120.5, 3))

	rows, err := NewExpenseRepository(s.db).TotalsByCategory(s.ctx, validation.ExpenseFilter{UserID: s.userID})
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Equal("food", rows[0].Name)
	s.Equal(120.5, rows[0].Total)
	s.Equal(int64(3), rows[0].Count)
}
