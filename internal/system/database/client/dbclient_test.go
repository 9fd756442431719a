/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package client

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/reenboog/touchid/internal/system/database/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type DBClientTestSuite struct {
	suite.Suite
	mockDB   *sql.DB
	mock     sqlmock.Sqlmock
	dbClient DBClientInterface
}

func TestDBClientSuite(t *testing.T) {
	suite.Run(t, new(DBClientTestSuite))
}

func (suite *DBClientTestSuite) SetupTest() {
	var err error
	suite.mockDB, suite.mock, err = sqlmock.New(
		sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual),
		sqlmock.MonitorPingsOption(true),
	)
	if err != nil {
		suite.T().Fatalf("Failed to create mock database: %v", err)
	}

	suite.dbClient = NewDBClient(model.NewDB(suite.mockDB), model.DBTypeSQLite)
}

func (suite *DBClientTestSuite) TearDownTest() {
	if err := suite.mock.ExpectationsWereMet(); err != nil {
		suite.T().Fatalf("There were unfulfilled expectations: %v", err)
	}
}

func (suite *DBClientTestSuite) TestQuerySuccess() {
	testQuery := model.DBQuery{
		ID:            "test_query_success",
		Query:         "SELECT LOCK_ID, TOKEN FROM TOUCHID_LOCK",
		PostgresQuery: "SELECT LOCK_ID, TOKEN FROM TOUCHID_LOCK WHERE LOCK_ID = $1",
		SQLiteQuery:   "SELECT LOCK_ID, TOKEN FROM TOUCHID_LOCK WHERE LOCK_ID = ?",
	}

	rows := sqlmock.NewRows([]string{"LOCK_ID", "TOKEN"}).
		AddRow("a", "token-a").
		AddRow("b", "token-b")
	suite.mock.ExpectQuery("SELECT LOCK_ID, TOKEN FROM TOUCHID_LOCK WHERE LOCK_ID = ?").
		WithArgs("a").
		WillReturnRows(rows)

	results, err := suite.dbClient.Query(context.Background(), testQuery, "a")

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), results, 2)
	assert.Equal(suite.T(), "a", results[0]["lock_id"])
	assert.Equal(suite.T(), "token-a", results[0]["token"])
	assert.Equal(suite.T(), "b", results[1]["lock_id"])
	assert.Equal(suite.T(), "token-b", results[1]["token"])
}

func (suite *DBClientTestSuite) TestQueryEmptyResults() {
	testQuery := model.DBQuery{ID: "test_query_empty", Query: "SELECT TOKEN FROM TOUCHID_LOCK"}

	suite.mock.ExpectQuery("SELECT TOKEN FROM TOUCHID_LOCK").
		WillReturnRows(sqlmock.NewRows([]string{"TOKEN"}))

	results, err := suite.dbClient.Query(context.Background(), testQuery)

	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), results)
}

func (suite *DBClientTestSuite) TestQueryDatabaseError() {
	testQuery := model.DBQuery{ID: "test_query_error", Query: "SELECT TOKEN FROM MISSING_TABLE"}

	expectedErr := errors.New("table not found")
	suite.mock.ExpectQuery("SELECT TOKEN FROM MISSING_TABLE").WillReturnError(expectedErr)

	results, err := suite.dbClient.Query(context.Background(), testQuery)

	assert.Equal(suite.T(), expectedErr, err)
	assert.Nil(suite.T(), results)
}

func (suite *DBClientTestSuite) TestQueryRowError() {
	testQuery := model.DBQuery{ID: "test_query_row_error", Query: "SELECT TOKEN FROM TOUCHID_LOCK"}

	rows := sqlmock.NewRows([]string{"TOKEN"}).
		AddRow("token-a").
		RowError(0, errors.New("row error"))
	suite.mock.ExpectQuery("SELECT TOKEN FROM TOUCHID_LOCK").WillReturnRows(rows)

	results, err := suite.dbClient.Query(context.Background(), testQuery)

	assert.EqualError(suite.T(), err, "row error")
	assert.Nil(suite.T(), results)
}

func (suite *DBClientTestSuite) TestExecuteSuccess() {
	testQuery := model.DBQuery{
		ID:    "test_execute_success",
		Query: "DELETE FROM TOUCHID_LOCK WHERE EXPIRES_AT > 0 AND EXPIRES_AT <= ?",
	}

	suite.mock.ExpectExec("DELETE FROM TOUCHID_LOCK WHERE EXPIRES_AT > 0 AND EXPIRES_AT <= ?").
		WithArgs(int64(100)).
		WillReturnResult(sqlmock.NewResult(0, 5))

	rowsAffected, err := suite.dbClient.Execute(context.Background(), testQuery, int64(100))

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(5), rowsAffected)
}

func (suite *DBClientTestSuite) TestExecuteDatabaseError() {
	testQuery := model.DBQuery{ID: "test_execute_db_error", Query: "DELETE FROM MISSING_TABLE"}

	expectedErr := errors.New("table not found")
	suite.mock.ExpectExec("DELETE FROM MISSING_TABLE").WillReturnError(expectedErr)

	rowsAffected, err := suite.dbClient.Execute(context.Background(), testQuery)

	assert.Equal(suite.T(), expectedErr, err)
	assert.Equal(suite.T(), int64(0), rowsAffected)
}

func (suite *DBClientTestSuite) TestExecuteRowsAffectedError() {
	testQuery := model.DBQuery{ID: "test_execute_rows_error", Query: "DELETE FROM TOUCHID_LOCK"}

	suite.mock.ExpectExec("DELETE FROM TOUCHID_LOCK").
		WillReturnResult(sqlmock.NewErrorResult(errors.New("rows affected error")))

	rowsAffected, err := suite.dbClient.Execute(context.Background(), testQuery)

	assert.ErrorContains(suite.T(), err, "rows affected error")
	assert.Equal(suite.T(), int64(0), rowsAffected)
}

func (suite *DBClientTestSuite) TestPing() {
	suite.mock.ExpectPing()
	assert.NoError(suite.T(), suite.dbClient.Ping(context.Background()))

	suite.mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	assert.EqualError(suite.T(), suite.dbClient.Ping(context.Background()), "connection refused")
}

func (suite *DBClientTestSuite) TestCloseSuccess() {
	suite.mock.ExpectClose()

	assert.NoError(suite.T(), suite.dbClient.Close())
}
