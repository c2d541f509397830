package repo

import "errors"

// Общие ошибки репозитория.
var (
	// ErrNotFound — документ не найден в БД.
	//
	// Возвращается, когда драйвер не нашёл документ (ErrNoDocuments)
	// либо отчитался нулевым MatchedCount/DeletedCount.
	ErrNotFound = errors.New("not found")
)
