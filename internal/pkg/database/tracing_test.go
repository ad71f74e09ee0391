package database

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type Submission struct {
	Id     int64
	Status string
}

func TestGormTracingPlugin(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	db, err := gorm.Open(gormMysql.New(gormMysql.Config{
		Conn:                      mockDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	require.NoError(t, db.Use(NewGormTracingPluginWithProvider(tp)))

	mock.ExpectQuery("SELECT .* FROM `submissions`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).AddRow(1, "SUBMITTED"))
	mock.ExpectExec("INSERT INTO `submissions`").
		WillReturnError(errors.New("mock db error"))
	mock.ExpectQuery("SELECT .* FROM `submissions`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "status"}))

	ctx := context.Background()
	var s Submission
	require.NoError(t, db.WithContext(ctx).First(&s).Error)
	assert.Error(t, db.WithContext(ctx).Create(&Submission{Status: "SUBMITTED"}).Error)
	assert.ErrorIs(t, db.WithContext(ctx).Where("id = ?", 2).First(&s).Error, gorm.ErrRecordNotFound)

	spans := recorder.Ended()
	require.Len(t, spans, 3)
	assert.Equal(t, "submissions SELECT", spans[0].Name())
	assert.Equal(t, codes.Ok, spans[0].Status().Code)
	assert.Equal(t, "submissions INSERT", spans[1].Name())
	assert.Equal(t, codes.Error, spans[1].Status().Code)
	// 没有数据不算错误
	assert.Equal(t, codes.Ok, spans[2].Status().Code)
}
