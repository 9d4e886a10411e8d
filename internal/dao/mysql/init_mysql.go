// Package mysql initialises the relational store.
// Opens the MySQL connection, migrates the schema and hands back the
// repository layer.
package mysql

import (
	"fmt"

	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/config"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/dao/mysql/repository"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/model"

	"go.uber.org/zap"
	mysqldriver "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Init opens the database connection and returns the repository layer.
// Steps:
//  1. build the DSN from configuration
//  2. open the GORM connection with duplicate-key translation enabled
//  3. AutoMigrate the schema (creates tables, never drops columns)
//  4. seed demo data on a completely empty registry
func Init() *repository.Repositories {
	conf := config.GetConfig()

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		conf.MysqlConfig.User,
		conf.MysqlConfig.Password,
		conf.MysqlConfig.Host,
		conf.MysqlConfig.Port,
		conf.MysqlConfig.DatabaseName,
	)

	db, err := gorm.Open(mysqldriver.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		zap.L().Fatal(err.Error())
	}

	err = db.AutoMigrate(
		&model.Member{},
		&model.Contribution{},
		&model.Announcement{},
		&model.ChatMessage{},
	)
	if err != nil {
		zap.L().Fatal(err.Error())
	}

	repos := repository.NewRepositories(db)

	if err := SeedDemoData(repos); err != nil {
		zap.L().Error("seeding demo data failed", zap.Error(err))
	}

	return repos
}
