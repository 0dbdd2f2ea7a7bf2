package entity

import "time"

// Article represents an article entity in the system.
// UserID references the owning user; ownership is a plain foreign key,
// not an object reference, so the entity graph stays acyclic.
type Article struct {
	ID        int64
	Titulo    string
	Descricao string
	URLFonte  string
	UserID    int64
	CreatedAt time.Time
}
