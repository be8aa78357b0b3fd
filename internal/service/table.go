package service

import (
	"fmt"

	"github.com/aliskhannn/wordbook/internal/domain/entities"
)

// BuildTable reshapes documents into a header row plus one row per document.
//
// Column names come from the first document, without the store identifier. Later
// documents are projected onto those columns: missing keys give an empty cell and
// extra keys are dropped. No documents means no header either.
func BuildTable(docs []entities.Document) entities.Table {
	if len(docs) == 0 {
		return entities.Table{}
	}

	header := docs[0].Without(entities.IDField).Keys()

	rows := make([][]string, 0, len(docs))
	for _, doc := range docs {
		row := make([]string, len(header))
		for i, col := range header {
			if v, ok := doc.Get(col); ok {
				row[i] = cell(v)
			}
		}
		rows = append(rows, row)
	}

	return entities.Table{Header: header, Rows: rows}
}

func cell(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
