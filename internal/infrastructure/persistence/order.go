package persistence

import "gorm.io/gorm/clause"

// byColumn quotes the column name, which matters for "order".
func byColumn(name string, desc bool) clause.OrderByColumn {
	return clause.OrderByColumn{Column: clause.Column{Name: name}, Desc: desc}
}
