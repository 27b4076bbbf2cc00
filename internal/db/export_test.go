package db

var MigrationFiles = migrationFiles
